// Package eval implements spec.md §4.5: a tree-walking evaluator over a
// resolved, type-checked AST, plus the runtime Value and Environment
// types spec.md §3 describes.
package eval

import (
	"fmt"

	"quastra/internal/ast"
)

// ValueKind identifies the runtime variant a Value currently holds.
type ValueKind uint8

const (
	VKBool ValueKind = iota
	VKNumber
	VKString
	VKCallable
)

func (k ValueKind) String() string {
	switch k {
	case VKBool:
		return "bool"
	case VKNumber:
		return "number"
	case VKString:
		return "string"
	case VKCallable:
		return "callable"
	default:
		return "invalid"
	}
}

// Value is the runtime sum type of spec.md §3: `{double, bool, string,
// callable}`. Every numeric value, whether the static type was Int or
// Float, is stored as a float64 underneath (SPEC_FULL.md §3.1 keeps that
// distinction purely in the static checker).
type Value struct {
	Kind   ValueKind
	Number float64
	Bool   bool
	Str    string
	Fn     *Callable
}

func NumberValue(n float64) Value { return Value{Kind: VKNumber, Number: n} }
func BoolValue(b bool) Value      { return Value{Kind: VKBool, Bool: b} }
func StringValue(s string) Value  { return Value{Kind: VKString, Str: s} }
func CallableValue(c *Callable) Value { return Value{Kind: VKCallable, Fn: c} }

// False is the Evaluator's default value: spec.md §4.5 has VarDecl default
// to false when an initializer is absent, and a Block with no Return
// surfacing produces false as its call result.
var False = BoolValue(false)

// Truthy implements spec.md §4.5's truthiness rule: Bool values are
// themselves; numbers, strings, and callables are always truthy.
func (v Value) Truthy() bool {
	if v.Kind == VKBool {
		return v.Bool
	}
	return true
}

// Callable carries arity plus either a native implementation or a
// captured declaration reference and closure environment (spec.md §3).
type Callable struct {
	Name  string
	Arity int

	// Native is set for built-ins like println; Decl/Closure are set for
	// user-defined functions.
	Native  func(args []Value) (Value, error)
	Decl    *ast.Function
	Closure *Environment
}

func (c *Callable) String() string {
	return fmt.Sprintf("<fn %s>", c.Name)
}

// String renders v for the println native and for error messages; it does
// not attempt to reproduce source syntax.
func (v Value) String() string {
	switch v.Kind {
	case VKBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case VKNumber:
		return formatNumber(v.Number)
	case VKString:
		return v.Str
	case VKCallable:
		return v.Fn.String()
	default:
		return "<invalid>"
	}
}

func formatNumber(n float64) string {
	return fmt.Sprintf("%g", n)
}
