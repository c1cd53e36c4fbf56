// Package model defines the data quality health check domain types: Rule,
// Source, and the Report produced by a check run, plus rule extraction from
// parsed tables.
//
// Rules are matched across sources by normalized name (trimmed, lower-cased);
// header lists are compared as sets of trimmed, lower-cased tokens. A Report is
// a plain serializable record so renderers consume it through a stable schema.
package model
