package diag

import "quastra/internal/source"

// Note is a secondary span/message attached to a Diagnostic for extra
// context (e.g. "originally declared here").
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding produced by a pass.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// New builds a Diagnostic directly; prefer the Reporter-based helpers in
// reporter.go when a pass already holds a Reporter.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
