package model

// Status markers emitted with every report. Renderers display them uninterpreted.
const (
	MarkerOK   = "✅"
	MarkerFail = "🛑"
	MarkerInfo = "📝"
)

// Markers bundles the status glyphs so renderers don't hardcode them.
type Markers struct {
	OK   string `json:"OK"`
	Fail string `json:"FAIL"`
	Info string `json:"INFO"`
}

// DefaultMarkers returns the standard status glyphs.
func DefaultMarkers() Markers {
	return Markers{OK: MarkerOK, Fail: MarkerFail, Info: MarkerInfo}
}

// Report is the terminal output of a health check run. It is a plain
// serializable value with no hidden state; all maps are keyed by source
// display name.
type Report struct {
	// OK is true when every check passed.
	OK bool `json:"ok"`

	// MainSource is the display name of the source all others were compared against.
	MainSource string `json:"main_source"`

	// MissingHeaders lists, per source, declared fields whose expected header
	// is absent from that source's table. Sources with no missing fields are omitted.
	MissingHeaders map[string][]string `json:"missing_headers"`

	// RuleCountOK reports whether every source has the same rule count as main.
	RuleCountOK bool `json:"rule_count_ok"`

	// RuleCountMsg is the human-readable row-count comparison message.
	RuleCountMsg string `json:"rule_count_msg"`

	// Exclusives lists, per source, normalized rule names present only in that
	// source and not in main, sorted. Empty when rule counts diverged.
	Exclusives map[string][]string `json:"exclusives"`

	// Mismatches lists, per source, display names of rules whose header sets
	// differ from main's rule of the same normalized name, in that source's
	// row order. Empty when rule counts diverged.
	Mismatches map[string][]string `json:"mismatches"`

	// Markers carries the status glyphs for renderers.
	Markers Markers `json:"markers"`
}
