package checks

import (
	"fmt"

	"dq-health-check/feature/healthcheck/model"
)

// CompareRuleCounts checks that every other source has the same rule count as
// main. It stops at the first source whose count differs and reports only that
// one; remaining sources are not inspected.
func CompareRuleCounts(main *model.Source, others []*model.Source) (bool, string) {
	m := main.Table.RowCount()

	for _, s := range others {
		if n := s.Table.RowCount(); n != m {
			return false, fmt.Sprintf("%s '%s' has %d rules; '%s' has %d rules.",
				model.MarkerFail, main.Name, m, s.Name, n)
		}
	}

	return true, fmt.Sprintf("%s All sources have the same number of rules as '%s'.",
		model.MarkerOK, main.Name)
}
