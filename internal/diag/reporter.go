package diag

import "quastra/internal/source"

// Reporter is the minimal contract a pass needs to surface diagnostics
// without depending on how they are stored or rendered.
type Reporter interface {
	Report(sev Severity, code Code, primary source.Span, msg string, notes ...Note)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(sev Severity, code Code, primary source.Span, msg string, notes ...Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes})
}

// NopReporter discards every diagnostic. Useful when a pass is driven in a
// context (fuzzing, benchmarking) that has no use for the findings.
type NopReporter struct{}

func (NopReporter) Report(Severity, Code, source.Span, string, ...Note) {}

// ReportError is a convenience wrapper for the common SevError case.
func ReportError(r Reporter, code Code, primary source.Span, msg string, notes ...Note) {
	if r == nil {
		return
	}
	r.Report(SevError, code, primary, msg, notes...)
}
