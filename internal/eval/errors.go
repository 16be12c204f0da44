package eval

import "quastra/internal/source"

// RuntimeError is a true evaluation failure (spec.md §4.5/§7): undefined
// variable, arity mismatch, non-callable callee, operand type mismatch,
// division by zero. It is caught at the top level of Interpret and never
// confused with the Return control signal below.
type RuntimeError struct {
	Message string
	Span    source.Span
}

func (e *RuntimeError) Error() string { return e.Message }

func runtimeErr(sp source.Span, msg string) error {
	return &RuntimeError{Message: msg, Span: sp}
}

// returnValue is the non-local control signal a Return statement raises to
// unwind across however many Block frames separate it from the enclosing
// Call (spec.md §9 "Non-local return"). It implements error only so it can
// travel through the same Go error-return plumbing as a RuntimeError; the
// call site type-asserts for it explicitly and never reports it as a
// failure.
type returnValue struct {
	Value Value
}

func (r *returnValue) Error() string { return "return" }

// asReturn extracts a returnValue from err, if that is what it is.
func asReturn(err error) (*returnValue, bool) {
	rv, ok := err.(*returnValue)
	return rv, ok
}
