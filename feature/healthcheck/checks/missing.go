package checks

import "dq-health-check/feature/healthcheck/model"

// MissingHeaders reports, per source, the declared fields whose expected header
// is empty or not an exact column name of that source's table. Sources with no
// missing fields are omitted. Field order within a source is preserved so
// results are stable.
func MissingHeaders(sources []*model.Source) map[string][]string {
	result := make(map[string][]string)

	for _, src := range sources {
		var missing []string
		for _, f := range src.Fields {
			if f.ExpectedHeader == "" || !src.Table.HasColumn(f.ExpectedHeader) {
				missing = append(missing, f.Name)
			}
		}
		if len(missing) > 0 {
			result[src.Name] = missing
		}
	}

	return result
}
