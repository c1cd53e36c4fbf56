package healthcheck

import (
	"errors"

	"dq-health-check/feature/healthcheck/checks"
	"dq-health-check/feature/healthcheck/model"
)

// ErrNoSources is returned by Run when no sources are supplied.
var ErrNoSources = errors.New("no sources uploaded")

// Run executes the full health check pipeline over an ordered list of sources.
//
// The source at mainIndex is the reference all others are compared against; an
// out-of-range index selects the first source, so "first uploaded becomes main
// unless told otherwise". Missing-header detection runs over every source
// including main. Exclusive and sync checks only run when rule counts match:
// count divergence is a blocking precondition for the finer-grained checks, and
// their maps stay empty in that case.
func Run(sources []*model.Source, mainIndex int) (*model.Report, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if mainIndex < 0 || mainIndex >= len(sources) {
		mainIndex = 0
	}

	missing := checks.MissingHeaders(sources)

	main := sources[mainIndex]
	others := make([]*model.Source, 0, len(sources)-1)
	for i, s := range sources {
		if i != mainIndex {
			others = append(others, s)
		}
	}

	countOK, countMsg := checks.CompareRuleCounts(main, others)

	exclusives := map[string][]string{}
	mismatches := map[string][]string{}
	if countOK {
		exclusives = checks.ExclusiveRules(main, others)
		mismatches = checks.SyncMismatches(main, others)
	}

	return &model.Report{
		OK:             len(missing) == 0 && countOK && len(exclusives) == 0 && len(mismatches) == 0,
		MainSource:     main.Name,
		MissingHeaders: missing,
		RuleCountOK:    countOK,
		RuleCountMsg:   countMsg,
		Exclusives:     exclusives,
		Mismatches:     mismatches,
		Markers:        model.DefaultMarkers(),
	}, nil
}
