package checks

import (
	"sort"

	"dq-health-check/feature/healthcheck/model"
)

// ExclusiveRules reports, per other source, the normalized rule names present
// there but absent from main. Non-empty results are sorted for deterministic
// output; sources with no exclusives are omitted.
func ExclusiveRules(main *model.Source, others []*model.Source) map[string][]string {
	exclusives := make(map[string][]string)
	mainNames := main.RuleNames()

	for _, s := range others {
		var onlyThere []string
		for name := range s.RuleNames() {
			if _, ok := mainNames[name]; !ok {
				onlyThere = append(onlyThere, name)
			}
		}
		if len(onlyThere) > 0 {
			sort.Strings(onlyThere)
			exclusives[s.Name] = onlyThere
		}
	}

	return exclusives
}
