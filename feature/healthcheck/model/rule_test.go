package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRule_NormalizedName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Lowercased", "Check A", "check a"},
		{"Trimmed", "  Check A  ", "check a"},
		{"Already Normalized", "check a", "check a"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rule{Name: tt.in}
			assert.Equal(t, tt.want, r.NormalizedName())
		})
	}
}

func TestRule_NormalizedName_Idempotent(t *testing.T) {
	r := Rule{Name: "  Completeness Check  "}
	once := r.NormalizedName()
	again := Rule{Name: once}.NormalizedName()
	assert.Equal(t, once, again)
}

func TestRule_HeaderSet(t *testing.T) {
	t.Run("Permutation And Case Invariant", func(t *testing.T) {
		a := Rule{Header: "A, b,C"}
		b := Rule{Header: "c , A , B"}
		assert.Equal(t, a.HeaderSet(), b.HeaderSet())
	})

	t.Run("Tokens", func(t *testing.T) {
		r := Rule{Header: " Col1 ,COL2"}
		assert.Equal(t, map[string]struct{}{"col1": {}, "col2": {}}, r.HeaderSet())
	})

	t.Run("Empty Header", func(t *testing.T) {
		assert.Empty(t, Rule{}.HeaderSet())
	})

	t.Run("Blank Tokens Dropped", func(t *testing.T) {
		r := Rule{Header: "a,, ,b"}
		assert.Equal(t, map[string]struct{}{"a": {}, "b": {}}, r.HeaderSet())
	})
}

func TestSource_RuleNames(t *testing.T) {
	s := &Source{Rules: []Rule{
		{Name: "Check A"},
		{Name: "  check a "},
		{Name: "Check B"},
	}}

	assert.Equal(t, map[string]struct{}{"check a": {}, "check b": {}}, s.RuleNames())
}

func TestSource_RuleByName_LastWins(t *testing.T) {
	s := &Source{Rules: []Rule{
		{Name: "Check A", Header: "col1"},
		{Name: "check a", Header: "col2"},
	}}

	index := s.RuleByName()
	assert.Len(t, index, 1)
	assert.Equal(t, "col2", index["check a"].Header)
}

func TestFieldsFromColumns(t *testing.T) {
	fields := FieldsFromColumns([]string{"b", "a"})

	assert.Equal(t, []Field{
		{Name: "b", ExpectedHeader: "b"},
		{Name: "a", ExpectedHeader: "a"},
	}, fields)
}
