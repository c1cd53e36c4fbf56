package model

import "strings"

// Rule is a single declared data quality rule: a name plus the comma-separated
// list of headers it governs. Values are immutable once extracted.
type Rule struct {
	// Name is the rule name exactly as it appears in the sheet.
	Name string `json:"name"`
	// Header is the raw comma-separated header list, possibly empty.
	Header string `json:"header"`
}

// NormalizedName returns the trimmed, lower-cased rule name. It is the identity
// key for matching rules across sources: two rules are the same rule iff their
// normalized names are equal.
func (r Rule) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(r.Name))
}

// HeaderSet returns the set of trimmed, lower-cased header tokens.
// An empty header yields an empty set; blank tokens are dropped.
func (r Rule) HeaderSet() map[string]struct{} {
	set := make(map[string]struct{})
	if r.Header == "" {
		return set
	}
	for _, h := range strings.Split(r.Header, ",") {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			set[h] = struct{}{}
		}
	}
	return set
}
