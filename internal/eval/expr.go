package eval

import (
	"strconv"

	"quastra/internal/ast"
	"quastra/internal/token"
)

func (ev *Evaluator) evalExpr(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return ev.evalLiteral(e)
	case *ast.Variable:
		return ev.evalVariable(e)
	case *ast.Assign:
		return ev.evalAssign(e)
	case *ast.Unary:
		return ev.evalUnary(e)
	case *ast.Binary:
		return ev.evalBinary(e)
	case *ast.Logical:
		return ev.evalLogical(e)
	case *ast.Call:
		return ev.evalCall(e)
	default:
		return False, runtimeErr(expr.Span(), "Unknown expression.")
	}
}

// Literal: IntLiteral/FloatLiteral parsed to double; true/false to bool;
// string literals to string; otherwise false (spec.md §4.5).
func (ev *Evaluator) evalLiteral(e *ast.Literal) (Value, error) {
	switch e.Token.Kind {
	case token.IntLit, token.FloatLit:
		n, err := strconv.ParseFloat(e.Token.Lexeme, 64)
		if err != nil {
			return False, runtimeErr(e.Span(), "Invalid numeric literal '"+e.Token.Lexeme+"'.")
		}
		return NumberValue(n), nil
	case token.KwTrue:
		return BoolValue(true), nil
	case token.KwFalse:
		return BoolValue(false), nil
	case token.StringLit:
		return StringValue(stringLitValue(e.Token.Lexeme)), nil
	default:
		return False, nil
	}
}

// stringLitValue strips the surrounding quotes the lexer kept in the
// lexeme; it performs no escape processing (the grammar defines none).
func stringLitValue(lexeme string) string {
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

func (ev *Evaluator) evalVariable(e *ast.Variable) (Value, error) {
	v, ok := ev.env.Get(e.Name.Lexeme)
	if !ok {
		return False, runtimeErr(e.Span(), "Undefined variable '"+e.Name.Lexeme+"'.")
	}
	return v, nil
}

func (ev *Evaluator) evalAssign(e *ast.Assign) (Value, error) {
	value, err := ev.evalExpr(e.Value)
	if err != nil {
		return False, err
	}
	if !ev.env.Assign(e.Name.Lexeme, value) {
		return False, runtimeErr(e.Span(), "Undefined variable '"+e.Name.Lexeme+"'.")
	}
	return value, nil
}

// Unary `-`: numeric negation, operand must be a number. Unary `!`:
// logical negation of truthiness, valid on any operand.
func (ev *Evaluator) evalUnary(e *ast.Unary) (Value, error) {
	right, err := ev.evalExpr(e.Right)
	if err != nil {
		return False, err
	}
	switch e.Op.Kind {
	case token.Minus:
		if right.Kind != VKNumber {
			return False, runtimeErr(e.Span(), "Operand must be a number.")
		}
		return NumberValue(-right.Number), nil
	case token.Bang:
		return BoolValue(!right.Truthy()), nil
	default:
		return False, runtimeErr(e.Span(), "Unknown unary operator.")
	}
}

// Logical `&&`/`||` short-circuit: the right operand is only evaluated
// when the left one does not already determine the result (SPEC_FULL.md
// §3.4).
func (ev *Evaluator) evalLogical(e *ast.Logical) (Value, error) {
	left, err := ev.evalExpr(e.Left)
	if err != nil {
		return False, err
	}
	if e.Op.Kind == token.OrOr {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return ev.evalExpr(e.Right)
}

// Binary: arithmetic/comparison for numbers only; division by zero is a
// runtime failure; `==`/`!=` compare across the value's variant shape.
func (ev *Evaluator) evalBinary(e *ast.Binary) (Value, error) {
	left, err := ev.evalExpr(e.Left)
	if err != nil {
		return False, err
	}
	right, err := ev.evalExpr(e.Right)
	if err != nil {
		return False, err
	}

	switch e.Op.Kind {
	case token.EqEq:
		return BoolValue(valuesEqual(left, right)), nil
	case token.BangEq:
		return BoolValue(!valuesEqual(left, right)), nil
	}

	if left.Kind != VKNumber || right.Kind != VKNumber {
		return False, runtimeErr(e.Span(), "Operands must be numbers.")
	}

	switch e.Op.Kind {
	case token.Plus:
		return NumberValue(left.Number + right.Number), nil
	case token.Minus:
		return NumberValue(left.Number - right.Number), nil
	case token.Star:
		return NumberValue(left.Number * right.Number), nil
	case token.Slash:
		if right.Number == 0 {
			return False, runtimeErr(e.Span(), "Division by zero.")
		}
		return NumberValue(left.Number / right.Number), nil
	case token.Lt:
		return BoolValue(left.Number < right.Number), nil
	case token.LtEq:
		return BoolValue(left.Number <= right.Number), nil
	case token.Gt:
		return BoolValue(left.Number > right.Number), nil
	case token.GtEq:
		return BoolValue(left.Number >= right.Number), nil
	default:
		return False, runtimeErr(e.Span(), "Unknown binary operator.")
	}
}

func valuesEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case VKBool:
		return a.Bool == b.Bool
	case VKNumber:
		return a.Number == b.Number
	case VKString:
		return a.Str == b.Str
	case VKCallable:
		return a.Fn == b.Fn
	default:
		return false
	}
}

// Call: evaluate callee; callee must be a callable; arity must match;
// evaluate arguments left-to-right; invoke.
func (ev *Evaluator) evalCall(e *ast.Call) (Value, error) {
	callee, err := ev.evalExpr(e.Callee)
	if err != nil {
		return False, err
	}
	if callee.Kind != VKCallable {
		return False, runtimeErr(e.Span(), "Can only call functions.")
	}

	args := make([]Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		v, err := ev.evalExpr(argExpr)
		if err != nil {
			return False, err
		}
		args = append(args, v)
	}

	fn := callee.Fn
	if fn.Arity != len(args) {
		return False, runtimeErr(e.Span(), "Expected "+strconv.Itoa(fn.Arity)+" arguments but got "+strconv.Itoa(len(args))+".")
	}
	return ev.Call(fn, args)
}
