// Package types holds the static Type lattice and Symbol records shared by
// the resolver and the type checker (spec.md §3).
package types

// Type is the static type assigned to every expression by the type
// checker. Error is an absorbing sentinel: once an expression is typed
// Error, every rule that consumes it is suppressed rather than firing a
// second diagnostic (spec.md §4.4, §9 "Error cascades").
type Type uint8

const (
	Void Type = iota
	Int
	Bool
	String
	Float
	Error
)

func (t Type) String() string {
	switch t {
	case Void:
		return "Void"
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	case String:
		return "String"
	case Float:
		return "Float"
	case Error:
		return "<error>"
	default:
		return "<invalid>"
	}
}

// IsNumeric reports whether t is one of the two arithmetic types (SPEC_FULL
// §3.1 extends the arithmetic rule table uniformly to Float).
func (t Type) IsNumeric() bool {
	return t == Int || t == Float
}

// FromTypeName maps a TYPE_IDENT lexeme (e.g. from a `: Type` or `->
// Type` annotation) to a static Type. Both the capitalized spellings used
// throughout the grammar and the lowercase primitive spellings from spec.md
// §8 scenario 1 (`-> int`) are accepted. ok is false for an unrecognized
// name.
func FromTypeName(name string) (Type, bool) {
	switch name {
	case "Int", "int":
		return Int, true
	case "Bool", "bool":
		return Bool, true
	case "String", "string":
		return String, true
	case "Float", "float":
		return Float, true
	case "Void", "void":
		return Void, true
	default:
		return Error, false
	}
}
