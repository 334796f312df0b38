// Package diag defines the diagnostic model shared by the checker, the dump
// loader and the driver.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string ID (DMP, LEX, IO, STY, HST, OBS ranges), a short Message, the Primary
// source.Loc and optional Notes and a Hint. Style violations are always
// SevError; host warnings carried by module dumps become SevWarning
// diagnostics with the HostWarning code and are filtered by a WarningSet.
//
// Producers emit through a Reporter (BagReporter, DedupReporter) or build a
// Diagnostic directly. Package diag performs no formatting or IO; rendering
// lives in internal/diagfmt.
package diag
