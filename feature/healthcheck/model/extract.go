package model

import (
	"fmt"
	"sort"
	"strings"

	"dq-health-check/core/sheet"
	"dq-health-check/core/utils"
)

// Required rule sheet columns, matched exactly (case-sensitive).
const (
	ColumnRuleName = "data_quality_control_name"
	ColumnHeader   = "header"
)

var requiredColumns = []string{ColumnRuleName, ColumnHeader}

// SchemaError reports required columns missing from a rules sheet.
// Extraction aborts entirely; there is no partial rule list.
type SchemaError struct {
	// Missing holds the absent column names, sorted.
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("rules sheet missing columns: [%s], expected: [%s]",
		strings.Join(e.Missing, " "), strings.Join(requiredColumns, " "))
}

// ExtractRules converts a parsed table into one Rule per row, in row order.
// A nil or absent header cell yields an empty header. Rows are not deduplicated.
func ExtractRules(t *sheet.Table) ([]Rule, error) {
	var missing []string
	for _, col := range requiredColumns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Missing: missing}
	}

	rules := make([]Rule, 0, t.RowCount())
	for _, row := range t.Rows {
		rules = append(rules, Rule{
			Name:   utils.ToString(row[ColumnRuleName]),
			Header: utils.ToString(row[ColumnHeader]),
		})
	}

	return rules, nil
}
