package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedType is returned by Parse for file extensions it cannot handle.
var ErrUnsupportedType = errors.New("unsupported file type")

// Parse dispatches to the format-specific parser based on the file extension.
func Parse(filename string, data []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return ParseXLSX(data)
	case ".csv":
		return ParseCSV(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, filename)
	}
}

// ParseXLSX parses the first worksheet of an xlsx workbook.
// The first row is the header; empty cells are treated as missing values.
func ParseXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no worksheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", sheets[0], err)
	}

	return fromRecords(rows), nil
}

// ParseCSV parses CSV data. The first record is the header.
func ParseCSV(data []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	// Rows may have trailing empty cells trimmed by exporters.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return fromRecords(records), nil
}

// fromRecords builds a Table from raw records: first record is the header,
// the rest are data rows. Cells beyond the header width are dropped; empty
// cells are omitted so they read as missing.
func fromRecords(records [][]string) *Table {
	t := &Table{}
	if len(records) == 0 {
		return t
	}

	t.Columns = records[0]
	for _, rec := range records[1:] {
		row := make(Row, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(rec) && rec[i] != "" {
				row[col] = rec[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}
