// Package typecheck implements spec.md §4.4: assigns a static types.Type
// to every expression, rejects ill-typed programs, and tracks mutability
// and return-type context. It mirrors the resolver's scope discipline but
// keyed by types.Symbol instead of a plain declared/initialized flag.
package typecheck

import (
	"quastra/internal/ast"
	"quastra/internal/diag"
	"quastra/internal/source"
	"quastra/internal/types"
)

// Checker walks a statement list once, assigning types and reporting
// mismatches. On any mismatch the offending expression's type is recorded
// as types.Error so later rules that consume it are suppressed rather than
// compounding the diagnostic (spec.md §9 "Error cascades").
type Checker struct {
	scopes *types.Stack
	rep    diag.Reporter
	hadErr bool

	// returnStack tracks the declared return type of each function body
	// currently being checked — spec.md §4.4's "return-type context",
	// generalized by SPEC_FULL.md §3.2 to the function's own declared
	// type instead of a hard-coded Int.
	returnStack []types.Type
}

func New(rep diag.Reporter) *Checker {
	return &Checker{scopes: types.NewStack(), rep: rep}
}

// Check runs the type checker over a top-level statement list, returning
// whether the whole program type-checked cleanly.
func Check(stmts []ast.Stmt, rep diag.Reporter) bool {
	c := New(rep)
	global := c.scopes.Push()
	seedNatives(global)
	c.checkStmts(stmts)
	c.scopes.Pop()
	return !c.hadErr
}

// seedNatives declares the native functions the evaluator provides in the
// root Environment (spec.md §4.5) so calls to them type-check.
func seedNatives(global *types.Scope) {
	global.Declare("println", types.Symbol{
		Name:       "println",
		Flags:      types.FlagCallable | types.FlagInitialized,
		Params:     []types.Type{types.Void}, // wildcard: accepts any single value
		ReturnType: types.Void,
	})
}

func (c *Checker) error(code diag.Code, sp source.Span, msg string) {
	c.hadErr = true
	diag.ReportError(c.rep, code, sp, msg)
}

func (c *Checker) inFunction() bool {
	return len(c.returnStack) > 0
}

func (c *Checker) currentReturnType() types.Type {
	if !c.inFunction() {
		return types.Void
	}
	return c.returnStack[len(c.returnStack)-1]
}

func (c *Checker) checkStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		c.checkStmt(s)
	}
}

func (c *Checker) checkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		c.checkExpr(s.Expr)

	case *ast.VarDecl:
		c.checkVarDecl(s)

	case *ast.Block:
		c.scopes.Push()
		c.checkStmts(s.Statements)
		c.scopes.Pop()

	case *ast.If:
		if condType := c.checkExpr(s.Cond); condType != types.Bool && condType != types.Error {
			c.error(diag.TypeConditionNotBool, s.Cond.Span(), "Condition must be a Bool.")
		}
		c.checkStmt(s.Then)
		if s.Else != nil {
			c.checkStmt(s.Else)
		}

	case *ast.While:
		if condType := c.checkExpr(s.Cond); condType != types.Bool && condType != types.Error {
			c.error(diag.TypeConditionNotBool, s.Cond.Span(), "Condition must be a Bool.")
		}
		c.checkStmt(s.Body)

	case *ast.Function:
		c.checkFunction(s)

	case *ast.Return:
		c.checkReturn(s)
	}
}

// VarDecl with initializer: Symbol type = type of initializer, mutability
// from `mut`. VarDecl without initializer: Symbol type = Void placeholder
// (spec.md §4.4). A `: Type` annotation (SPEC_FULL.md §3.2) is checked
// against the initializer's type when both are present.
func (c *Checker) checkVarDecl(s *ast.VarDecl) {
	declType := types.Void
	if s.TypeName != "" {
		t, ok := types.FromTypeName(s.TypeName)
		if !ok {
			c.error(diag.TypeMismatch, s.Span(), "Unknown type '"+s.TypeName+"'.")
			t = types.Error
		}
		declType = t
	}

	symType := declType
	if s.Initializer != nil {
		initType := c.checkExpr(s.Initializer)
		switch {
		case s.TypeName == "":
			symType = initType
		case declType != types.Error && initType != types.Error && declType != initType:
			c.error(diag.TypeMismatch, s.Initializer.Span(),
				"Cannot assign "+initType.String()+" to a variable of type "+declType.String()+".")
			symType = types.Error
		}
	}

	c.scopes.Current().Declare(s.Name.Lexeme, types.NewVarSymbol(s.Name.Lexeme, symType, s.Mutable, true))
}

func (c *Checker) checkFunction(s *ast.Function) {
	paramTypes := make([]types.Type, len(s.Params))
	for i, p := range s.Params {
		if p.TypeName == "" {
			paramTypes[i] = types.Int // MVP convention when unannotated
			continue
		}
		t, ok := types.FromTypeName(p.TypeName)
		if !ok {
			c.error(diag.TypeMismatch, s.Span(), "Unknown parameter type '"+p.TypeName+"'.")
			t = types.Error
		}
		paramTypes[i] = t
	}

	returnType := types.Int // spec.md §4.4's MVP convention
	if s.ReturnType != "" {
		t, ok := types.FromTypeName(s.ReturnType)
		if !ok {
			c.error(diag.TypeMismatch, s.Span(), "Unknown return type '"+s.ReturnType+"'.")
			t = types.Error
		}
		returnType = t
	}

	c.scopes.Current().Declare(s.Name.Lexeme, types.NewFunctionSymbol(s.Name.Lexeme, paramTypes, returnType))

	c.scopes.Push()
	for i, p := range s.Params {
		c.scopes.Current().Declare(p.Name.Lexeme, types.NewVarSymbol(p.Name.Lexeme, paramTypes[i], false, true))
	}
	c.returnStack = append(c.returnStack, returnType)
	c.checkStmts(s.Body.Statements)
	c.returnStack = c.returnStack[:len(c.returnStack)-1]
	c.scopes.Pop()
}

func (c *Checker) checkReturn(s *ast.Return) {
	if !c.inFunction() {
		c.error(diag.TypeReturnOutsideFn, s.Span(), "Cannot return from top-level code.")
		if s.Value != nil {
			c.checkExpr(s.Value)
		}
		return
	}

	want := c.currentReturnType()
	got := types.Void
	if s.Value != nil {
		got = c.checkExpr(s.Value)
	}
	if got != types.Error && want != types.Error && got != want {
		c.error(diag.TypeReturnMismatch, s.Span(),
			"Expected return type "+want.String()+", got "+got.String()+".")
	}
}

func (c *Checker) checkExpr(expr ast.Expr) types.Type {
	switch e := expr.(type) {
	case *ast.Literal:
		return c.checkLiteral(e)
	case *ast.Variable:
		return c.checkVariable(e)
	case *ast.Assign:
		return c.checkAssign(e)
	case *ast.Unary:
		return c.checkUnary(e)
	case *ast.Binary:
		return c.checkBinary(e)
	case *ast.Logical:
		return c.checkLogical(e)
	case *ast.Call:
		return c.checkCall(e)
	default:
		return types.Error
	}
}
