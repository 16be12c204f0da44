package typecheck

import (
	"quastra/internal/ast"
	"quastra/internal/diag"
	"quastra/internal/token"
	"quastra/internal/types"
)

// checkLiteral: int literal -> Int; float literal -> Float (SPEC_FULL §3.1
// keeps these distinct even though both evaluate through the same float64
// runtime representation); true/false -> Bool; string literal -> String.
func (c *Checker) checkLiteral(e *ast.Literal) types.Type {
	switch e.Token.Kind {
	case token.IntLit:
		return types.Int
	case token.FloatLit:
		return types.Float
	case token.KwTrue, token.KwFalse:
		return types.Bool
	case token.StringLit:
		return types.String
	default:
		return types.Error
	}
}

func (c *Checker) checkVariable(e *ast.Variable) types.Type {
	sym, _, ok := c.scopes.Resolve(e.Name.Lexeme)
	if !ok {
		c.error(diag.TypeUndefinedSymbol, e.Span(), "Undefined variable '"+e.Name.Lexeme+"'.")
		return types.Error
	}
	return sym.Type
}

// Assign `x = e`: Symbol x must exist and be mutable; type of e must equal
// type of x; result type = type of x.
func (c *Checker) checkAssign(e *ast.Assign) types.Type {
	valueType := c.checkExpr(e.Value)

	sym, _, ok := c.scopes.Resolve(e.Name.Lexeme)
	if !ok {
		c.error(diag.TypeUndefinedSymbol, e.Span(), "Undefined variable '"+e.Name.Lexeme+"'.")
		return types.Error
	}
	if !sym.Mutable() {
		c.error(diag.TypeAssignImmutable, e.Span(), "Cannot assign to immutable variable '"+e.Name.Lexeme+"'.")
		return types.Error
	}
	if valueType != types.Error && sym.Type != types.Error && valueType != sym.Type {
		c.error(diag.TypeMismatch, e.Value.Span(),
			"Cannot assign "+valueType.String()+" to a variable of type "+sym.Type.String()+".")
		return types.Error
	}
	return sym.Type
}

// Unary `-e`: e:Int or Float; result matches operand. Unary `!e`: e:Bool;
// result Bool.
func (c *Checker) checkUnary(e *ast.Unary) types.Type {
	operand := c.checkExpr(e.Right)
	if operand == types.Error {
		return types.Error
	}
	switch e.Op.Kind {
	case token.Minus:
		if !operand.IsNumeric() {
			c.error(diag.TypeMismatch, e.Span(), "Unary '-' requires a numeric operand.")
			return types.Error
		}
		return operand
	case token.Bang:
		if operand != types.Bool {
			c.error(diag.TypeMismatch, e.Span(), "Unary '!' requires a Bool operand.")
			return types.Error
		}
		return types.Bool
	default:
		return types.Error
	}
}

// Binary `+ - * /`: both sides numeric and equal; result matches the
// shared numeric type (SPEC_FULL §3.1 extends Int-only to Float too).
// Binary `< <= > >=`: both sides numeric and equal; result Bool.
// Binary `== !=`: both sides same type; result Bool.
func (c *Checker) checkBinary(e *ast.Binary) types.Type {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)
	if left == types.Error || right == types.Error {
		return types.Error
	}

	switch e.Op.Kind {
	case token.Plus, token.Minus, token.Star, token.Slash:
		if !left.IsNumeric() || left != right {
			c.error(diag.TypeMismatch, e.Span(), "Arithmetic operands must be the same numeric type.")
			return types.Error
		}
		return left

	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		if !left.IsNumeric() || left != right {
			c.error(diag.TypeMismatch, e.Span(), "Comparison operands must be the same numeric type.")
			return types.Error
		}
		return types.Bool

	case token.EqEq, token.BangEq:
		if left != right {
			c.error(diag.TypeMismatch, e.Span(), "Cannot compare "+left.String()+" with "+right.String()+".")
			return types.Error
		}
		return types.Bool

	default:
		return types.Error
	}
}

// Logical `&& ||` (SPEC_FULL §3.4): both operands and the result are Bool.
func (c *Checker) checkLogical(e *ast.Logical) types.Type {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)
	if left == types.Error || right == types.Error {
		return types.Error
	}
	if left != types.Bool || right != types.Bool {
		c.error(diag.TypeMismatch, e.Span(), "'"+e.Op.Lexeme+"' requires Bool operands.")
		return types.Error
	}
	return types.Bool
}

// Call `f(args)`: callee must be a callable symbol; arity and per-argument
// types are checked against its declared signature; result type is the
// callable's declared return type.
func (c *Checker) checkCall(e *ast.Call) types.Type {
	variable, isVar := e.Callee.(*ast.Variable)
	if !isVar {
		c.error(diag.TypeNotCallable, e.Span(), "Expression is not callable.")
		for _, arg := range e.Arguments {
			c.checkExpr(arg)
		}
		return types.Error
	}

	sym, _, ok := c.scopes.Resolve(variable.Name.Lexeme)
	if !ok {
		c.error(diag.TypeUndefinedSymbol, e.Span(), "Undefined variable '"+variable.Name.Lexeme+"'.")
		for _, arg := range e.Arguments {
			c.checkExpr(arg)
		}
		return types.Error
	}
	if !sym.Callable() {
		c.error(diag.TypeNotCallable, e.Span(), "'"+variable.Name.Lexeme+"' is not callable.")
		for _, arg := range e.Arguments {
			c.checkExpr(arg)
		}
		return types.Error
	}

	if len(e.Arguments) != len(sym.Params) {
		c.error(diag.TypeArityMismatch, e.Span(), "Expected arguments to match the function's arity.")
	}
	for i, arg := range e.Arguments {
		argType := c.checkExpr(arg)
		if i >= len(sym.Params) {
			continue
		}
		want := sym.Params[i]
		// Void marks a native's wildcard parameter (println accepts any
		// single value) rather than the declared-without-initializer
		// placeholder it means elsewhere.
		if want == types.Void || want == types.Error || argType == types.Error {
			continue
		}
		if argType != want {
			c.error(diag.TypeMismatch, arg.Span(), "Argument type does not match the parameter's declared type.")
		}
	}
	return sym.ReturnType
}
