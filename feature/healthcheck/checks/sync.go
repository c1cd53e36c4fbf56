package checks

import (
	"maps"

	"dq-health-check/feature/healthcheck/model"
)

// SyncMismatches reports, per other source, the display names of rules that
// exist in main under the same normalized name but declare a different header
// set. Rules absent from main are skipped here; ExclusiveRules covers those.
// Names are appended in the other source's row order.
func SyncMismatches(main *model.Source, others []*model.Source) map[string][]string {
	mismatches := make(map[string][]string)
	mainIndex := main.RuleByName()

	for _, s := range others {
		for _, r := range s.Rules {
			mr, ok := mainIndex[r.NormalizedName()]
			if !ok {
				continue
			}
			if !maps.Equal(r.HeaderSet(), mr.HeaderSet()) {
				mismatches[s.Name] = append(mismatches[s.Name], r.Name)
			}
		}
	}

	return mismatches
}
