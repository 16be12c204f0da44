// Package diag defines the diagnostic model shared by every pipeline phase.
//
// Diagnostic is the central record: a Severity, a stable Code, a primary
// Span, a human message, and optional Notes for secondary context. Producers
// never write directly to stderr; they call Reporter.Report, typically
// backed by a Bag that the driver sorts and renders once the whole pipeline
// has run. Rendering itself lives in internal/diagfmt, which is the only
// package allowed to know about terminal color or width.
package diag
