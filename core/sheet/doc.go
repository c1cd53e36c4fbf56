// Package sheet provides the parsed tabular representation of an uploaded
// spreadsheet and the parsers that produce it.
//
// A Table is an ordered set of named columns plus rows of cells. Cells that are
// absent or empty in the source file are simply missing from their Row map, which
// is how downstream consumers detect missing values.
//
// # Supported Formats
//
//   - .xlsx via excelize (first worksheet, first row is the header)
//   - .csv via encoding/csv (first record is the header)
//
// Legacy .xls workbooks are not supported; callers should ask users to re-export
// as .xlsx.
package sheet
