// Package checks contains the individual health check computations.
//
// Every check is a pure function over already-constructed sources: no I/O, no
// logging, no shared state. Findings are returned as plain maps keyed by source
// display name; they are never errors.
//
// # Checks Provided
//
//   - MissingHeaders: declared fields whose expected header is absent from the table.
//   - CompareRuleCounts: row-count equality against the main source (first
//     mismatch short-circuits).
//   - ExclusiveRules: rules present only in a non-main source (set difference by
//     normalized name).
//   - SyncMismatches: rules present in both but with differing header sets.
//
// The orchestrator in the parent package gates ExclusiveRules and SyncMismatches
// on rule counts matching.
package checks
