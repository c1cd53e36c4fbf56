package model

import "dq-health-check/core/sheet"

// Field declares that a source expects a given header to be present in its table.
type Field struct {
	// Name is the declared field name.
	Name string `json:"name"`
	// ExpectedHeader is the column the field maps to. Empty means undeclared.
	ExpectedHeader string `json:"expected_header"`
}

// Source is one uploaded table interpreted as a list of rules plus declared
// field-to-header expectations. Rules are derived once from Table at
// construction time and not mutated afterward.
type Source struct {
	// Name is the display identifier, typically the original filename.
	Name string `json:"name"`
	// Table is the parsed sheet backing this source.
	Table *sheet.Table `json:"-"`
	// Rules holds one rule per table row, in row order.
	Rules []Rule `json:"rules"`
	// Fields lists the declared field expectations in insertion order.
	Fields []Field `json:"fields"`
}

// RuleNames returns the set of normalized rule names.
func (s *Source) RuleNames() map[string]struct{} {
	names := make(map[string]struct{}, len(s.Rules))
	for _, r := range s.Rules {
		names[r.NormalizedName()] = struct{}{}
	}
	return names
}

// RuleByName returns a normalized-name index of the source's rules.
// When duplicate names occur within one source, the last row wins.
func (s *Source) RuleByName() map[string]Rule {
	index := make(map[string]Rule, len(s.Rules))
	for _, r := range s.Rules {
		index[r.NormalizedName()] = r
	}
	return index
}

// FieldsFromColumns derives a field declaration per table column, each column
// expecting itself as header. This mirrors how uploads declare their fields.
func FieldsFromColumns(columns []string) []Field {
	fields := make([]Field, 0, len(columns))
	for _, c := range columns {
		fields = append(fields, Field{Name: c, ExpectedHeader: c})
	}
	return fields
}
