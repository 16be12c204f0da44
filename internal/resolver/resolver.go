// Package resolver implements spec.md §4.3: a pre-evaluation pass that
// binds every Variable/Assign reference to a declaring scope depth and
// rejects scope errors before the type checker or evaluator ever runs.
package resolver

import (
	"quastra/internal/ast"
	"quastra/internal/diag"
	"quastra/internal/source"
	"quastra/internal/types"
)

// Resolver walks a statement list once, pushing a types.Stack scope at
// program entry, at each Block, and at each Function body (with parameters
// inserted first), exactly as the algorithm in spec.md §4.3 describes.
type Resolver struct {
	scopes  *types.Stack
	rep     diag.Reporter
	hadErr  bool
	inFnCnt int
}

// New creates a Resolver reporting diagnostics to rep.
func New(rep diag.Reporter) *Resolver {
	return &Resolver{scopes: types.NewStack(), rep: rep}
}

// Resolve runs the resolver over a top-level statement list, returning
// whether every reference bound successfully.
func Resolve(stmts []ast.Stmt, rep diag.Reporter) bool {
	r := New(rep)
	global := r.scopes.Push()
	global.Declare("println", types.NewFunctionSymbol("println", []types.Type{types.Void}, types.Void))
	r.resolveStmts(stmts)
	r.scopes.Pop()
	return !r.hadErr
}

func (r *Resolver) error(code diag.Code, stmt ast.Stmt, expr ast.Expr, msg string) {
	r.hadErr = true
	var sp source.Span
	switch {
	case stmt != nil:
		sp = stmt.Span()
	case expr != nil:
		sp = expr.Span()
	}
	diag.ReportError(r.rep, code, sp, msg)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)
	case *ast.VarDecl:
		r.declareVar(s)
	case *ast.Block:
		r.scopes.Push()
		r.resolveStmts(s.Statements)
		r.scopes.Pop()
	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.While:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.Function:
		r.declareFunction(s)
	case *ast.Return:
		if r.inFnCnt == 0 {
			r.error(diag.ResReturnOutsideFn, s, nil, "Cannot return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	}
}

// VarDecl: if the current scope already declares name, report
// "already declared in this scope". Otherwise the name is marked
// declared-but-not-initialized, the initializer is resolved (so `let a =
// a;` cannot silently bind to an outer `a`), then it is marked initialized.
func (r *Resolver) declareVar(s *ast.VarDecl) {
	scope := r.scopes.Current()
	if _, exists := scope.Lookup(s.Name.Lexeme); exists {
		r.error(diag.ResAlreadyDeclared, s, nil, "'"+s.Name.Lexeme+"' already declared in this scope")
	}
	scope.Declare(s.Name.Lexeme, types.NewVarSymbol(s.Name.Lexeme, types.Void, s.Mutable, false))

	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}

	scope.Declare(s.Name.Lexeme, types.NewVarSymbol(s.Name.Lexeme, types.Void, s.Mutable, true))
}

func (r *Resolver) declareFunction(s *ast.Function) {
	// The function name itself is visible in the enclosing scope before
	// its body is resolved, so recursive calls bind correctly.
	r.scopes.Current().Declare(s.Name.Lexeme, types.NewFunctionSymbol(s.Name.Lexeme, nil, types.Void))

	r.scopes.Push()
	for _, p := range s.Params {
		r.scopes.Current().Declare(p.Name.Lexeme, types.NewVarSymbol(p.Name.Lexeme, types.Void, false, true))
	}
	r.inFnCnt++
	r.resolveStmts(s.Body.Statements)
	r.inFnCnt--
	r.scopes.Pop()
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no identifiers to bind
	case *ast.Variable:
		r.resolveLocal(e.Name.Lexeme, func(depth int) { e.Depth = depth }, e)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.Name.Lexeme, func(depth int) { e.Depth = depth }, e)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	}
}

// resolveLocal walks scopes innermost-to-outermost looking for name. On a
// miss it reports the kind-specific diagnostic; on a hit it calls setDepth
// with the scope distance from the innermost scope. A symbol found but
// still declared-but-not-initialized means the reference sits inside its
// own initializer (`let a = a;`) — that must not silently resolve to an
// outer `a`, so it is rejected the same way an undefined name is.
func (r *Resolver) resolveLocal(name string, setDepth func(int), e ast.Expr) {
	sym, depth, ok := r.scopes.Resolve(name)
	if ok && !sym.Initialized() {
		ok = false
	}
	if !ok {
		switch e.(type) {
		case *ast.Assign:
			r.error(diag.ResUndeclaredAssign, nil, e, "Assignment to undeclared variable '"+name+"'.")
		default:
			r.error(diag.ResUndefined, nil, e, "Undefined variable '"+name+"'.")
		}
		return
	}
	setDepth(depth)
}
