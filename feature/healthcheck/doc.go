// Package healthcheck reconciles uploaded data quality rule sheets against a
// designated main source.
//
// Several spreadsheets are uploaded, each interpreted as a table of rule
// declarations. One source (first uploaded unless selected otherwise) is the
// main source; all others are compared against it. The result is a single
// Report flagging:
//
//   - Missing headers: fields a source declares but whose header is absent
//     from its own sheet.
//   - Rule count divergence: a source with a different number of rules than main.
//   - Exclusive rules: rules present in a source but not in main.
//   - Sync mismatches: rules present in both whose header sets differ.
//
// Rule count divergence blocks the exclusive and sync checks; those only run
// when every source has the same number of rules as main.
//
// # HTTP Endpoints
//
//   - GET  /healthcheck          : Usage information.
//   - POST /healthcheck/analyze  : Upload sheets (multipart 'sources') and get the report.
//
// Nothing is persisted: sources live only for the duration of one request, and
// concurrent requests share no state.
package healthcheck
