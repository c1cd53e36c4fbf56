package healthcheck

import (
	"path/filepath"
	"strings"

	"dq-health-check/core/sheet"
	"dq-health-check/feature/healthcheck/model"
)

// NewSourceFromFile parses raw spreadsheet bytes into a Source named after the
// file. Every table column declares itself as an expected field header, so the
// missing-header check can verify the sheet against its own declarations.
func NewSourceFromFile(filename string, data []byte) (*model.Source, error) {
	table, err := sheet.Parse(filename, data)
	if err != nil {
		return nil, err
	}

	rules, err := model.ExtractRules(table)
	if err != nil {
		return nil, err
	}

	return &model.Source{
		Name:   filename,
		Table:  table,
		Rules:  rules,
		Fields: model.FieldsFromColumns(table.Columns),
	}, nil
}

// sanitizeFilename reduces an uploaded filename to a safe display name.
// Path components and separators are stripped; fallback is used when nothing
// usable remains.
func sanitizeFilename(name, fallback string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == "/" {
		return fallback
	}
	return name
}
