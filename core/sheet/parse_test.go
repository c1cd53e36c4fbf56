package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildXLSX creates an in-memory workbook from raw records.
func buildXLSX(t *testing.T, records [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cell, &rec))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	data := buildXLSX(t, [][]any{
		{"data_quality_control_name", "header"},
		{"Check A", "col1,col2"},
		{"Check B", nil},
	})

	table, err := ParseXLSX(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"data_quality_control_name", "header"}, table.Columns)
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Check A", table.Rows[0]["data_quality_control_name"])
	assert.Equal(t, "col1,col2", table.Rows[0]["header"])

	// Empty cell reads as missing
	_, ok := table.Rows[1]["header"]
	assert.False(t, ok)
}

func TestParseCSV(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		data := []byte("data_quality_control_name,header\nCheck A,\"col1,col2\"\nCheck B,\n")

		table, err := ParseCSV(data)
		require.NoError(t, err)

		assert.Equal(t, []string{"data_quality_control_name", "header"}, table.Columns)
		assert.Equal(t, 2, table.RowCount())
		assert.Equal(t, "col1,col2", table.Rows[0]["header"])

		_, ok := table.Rows[1]["header"]
		assert.False(t, ok)
	})

	t.Run("Ragged Rows", func(t *testing.T) {
		data := []byte("a,b,c\n1\n1,2,3,4\n")

		table, err := ParseCSV(data)
		require.NoError(t, err)
		require.Equal(t, 2, table.RowCount())

		assert.Equal(t, "1", table.Rows[0]["a"])
		_, ok := table.Rows[0]["b"]
		assert.False(t, ok)
		assert.Equal(t, "3", table.Rows[1]["c"])
	})

	t.Run("Empty", func(t *testing.T) {
		table, err := ParseCSV(nil)
		require.NoError(t, err)
		assert.Empty(t, table.Columns)
		assert.Equal(t, 0, table.RowCount())
	})
}

func TestParse_Dispatch(t *testing.T) {
	t.Run("CSV", func(t *testing.T) {
		table, err := Parse("rules.csv", []byte("a,b\n1,2\n"))
		require.NoError(t, err)
		assert.Equal(t, 1, table.RowCount())
	})

	t.Run("XLSX Case Insensitive Extension", func(t *testing.T) {
		data := buildXLSX(t, [][]any{{"a"}, {"1"}})
		table, err := Parse("RULES.XLSX", data)
		require.NoError(t, err)
		assert.Equal(t, 1, table.RowCount())
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := Parse("rules.xls", nil)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

func TestTable_HasColumn(t *testing.T) {
	table := &Table{Columns: []string{"header", "name"}}

	assert.True(t, table.HasColumn("header"))
	assert.False(t, table.HasColumn("Header"))
	assert.False(t, table.HasColumn(" header"))
	assert.False(t, table.HasColumn("missing"))
}
