// Package model defines the core data structures used throughout macroscan.
//
// This package contains the following main types:
//   - Occurrence: A single macro invocation found in a document
//   - FrequencyTable: Case-insensitive usage counts in first-encounter order
//   - Allowlist: Macro names that are already implemented
//   - Report: The ranked list of unimplemented macros
//   - Scan: The state carried through the scan pipeline
//
// The models live in their own package so the discover, pipeline and report
// packages can share them without import cycles. Report and Entry are
// serializable to JSON for report output.
package model
