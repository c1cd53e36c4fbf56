package sheet

// Row maps a column name to a cell value. Missing cells have no entry.
type Row map[string]any

// Table is a parsed spreadsheet: ordered named columns and their rows.
type Table struct {
	// Columns lists the column names in sheet order.
	Columns []string
	// Rows holds one entry per data row, keyed by column name.
	Rows []Row
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HasColumn reports whether the table declares the given column.
// The match is exact; no trimming or case folding is applied.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
