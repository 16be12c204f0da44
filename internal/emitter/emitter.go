// Package emitter implements spec.md §4.6: a syntactic lowering of the AST
// to a C-family host language. It never inspects static types; its output
// is total on any well-formed AST.
package emitter

import (
	"strconv"
	"strings"

	"quastra/internal/ast"
	"quastra/internal/token"
)

const indentUnit = "    " // four spaces per level, per spec.md §4.6

// Emitter renders a statement list to C++ source text.
type Emitter struct {
	b      strings.Builder
	indent int
}

// Emit produces the target-language program text for stmts: the two-include
// prelude followed by each top-level statement in source order.
func Emit(stmts []ast.Stmt) string {
	e := &Emitter{}
	e.b.WriteString("#include <iostream>\n#include <vector>\n\n")
	for _, s := range stmts {
		e.stmt(s)
	}
	return e.b.String()
}

func (e *Emitter) writeIndent() {
	e.b.WriteString(strings.Repeat(indentUnit, e.indent))
}

func (e *Emitter) stmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Function:
		e.function(s)
	case *ast.VarDecl:
		e.varDecl(s)
	case *ast.Block:
		e.block(s)
	case *ast.If:
		e.ifStmt(s)
	case *ast.While:
		e.whileStmt(s)
	case *ast.Return:
		e.returnStmt(s)
	case *ast.ExprStmt:
		e.exprStmt(s)
	}
}

// Each Function emits `int name(` if its name is `main`, else `auto
// name(`, with parameters typed `auto`, separated by `, `.
func (e *Emitter) function(s *ast.Function) {
	e.writeIndent()
	if s.Name.Lexeme == "main" {
		e.b.WriteString("int ")
	} else {
		e.b.WriteString("auto ")
	}
	e.b.WriteString(s.Name.Lexeme)
	e.b.WriteString("(")
	for i, p := range s.Params {
		if i > 0 {
			e.b.WriteString(", ")
		}
		e.b.WriteString("auto ")
		e.b.WriteString(p.Name.Lexeme)
	}
	e.b.WriteString(") ")
	e.block(s.Body)
	e.b.WriteString("\n\n")
}

// VarDecl emits `auto NAME = EXPR;` at current indentation; a missing
// initializer yields `0`.
func (e *Emitter) varDecl(s *ast.VarDecl) {
	e.writeIndent()
	e.b.WriteString("auto ")
	e.b.WriteString(s.Name.Lexeme)
	e.b.WriteString(" = ")
	if s.Initializer != nil {
		e.expr(s.Initializer)
	} else {
		e.b.WriteString("0")
	}
	e.b.WriteString(";\n")
}

// Block emits `{`, increments indent, recurses, decrements indent, emits
// `}`; an empty body emits `{}`.
func (e *Emitter) block(s *ast.Block) {
	if len(s.Statements) == 0 {
		e.b.WriteString("{}")
		return
	}
	e.b.WriteString("{\n")
	e.indent++
	for _, inner := range s.Statements {
		e.stmt(inner)
	}
	e.indent--
	e.writeIndent()
	e.b.WriteString("}")
}

func (e *Emitter) ifStmt(s *ast.If) {
	e.writeIndent()
	e.b.WriteString("if (")
	e.expr(s.Cond)
	e.b.WriteString(") ")
	e.bodyOf(s.Then)
	if s.Else != nil {
		e.b.WriteString(" else ")
		e.bodyOf(s.Else)
	}
	e.b.WriteString("\n")
}

func (e *Emitter) whileStmt(s *ast.While) {
	e.writeIndent()
	e.b.WriteString("while (")
	e.expr(s.Cond)
	e.b.WriteString(") ")
	e.bodyOf(s.Body)
	e.b.WriteString("\n")
}

// bodyOf emits a statement in the position a block normally occupies
// (after `if (...) `, `while (...) `, `else `). A bare, non-Block statement
// keeps its own indentation/terminator since the grammar allows a single
// statement there without braces.
func (e *Emitter) bodyOf(s ast.Stmt) {
	if block, ok := s.(*ast.Block); ok {
		e.block(block)
		return
	}
	e.b.WriteString("\n")
	e.indent++
	e.stmt(s)
	e.indent--
}

func (e *Emitter) returnStmt(s *ast.Return) {
	e.writeIndent()
	e.b.WriteString("return")
	if s.Value != nil {
		e.b.WriteString(" ")
		e.expr(s.Value)
	}
	e.b.WriteString(";\n")
}

func (e *Emitter) exprStmt(s *ast.ExprStmt) {
	e.writeIndent()
	e.expr(s.Expr)
	e.b.WriteString(";\n")
}

// Binary, Unary, and Assign expressions are always emitted parenthesized
// to preserve precedence without tracking it.
func (e *Emitter) expr(expr ast.Expr) {
	switch x := expr.(type) {
	case *ast.Literal:
		e.literal(x)
	case *ast.Variable:
		e.b.WriteString(x.Name.Lexeme)
	case *ast.Assign:
		e.b.WriteString("(")
		e.b.WriteString(x.Name.Lexeme)
		e.b.WriteString(" = ")
		e.expr(x.Value)
		e.b.WriteString(")")
	case *ast.Unary:
		e.b.WriteString("(")
		e.b.WriteString(x.Op.Lexeme)
		e.expr(x.Right)
		e.b.WriteString(")")
	case *ast.Binary:
		e.b.WriteString("(")
		e.expr(x.Left)
		e.b.WriteString(" ")
		e.b.WriteString(x.Op.Lexeme)
		e.b.WriteString(" ")
		e.expr(x.Right)
		e.b.WriteString(")")
	case *ast.Logical:
		e.b.WriteString("(")
		e.expr(x.Left)
		e.b.WriteString(" ")
		e.b.WriteString(x.Op.Lexeme)
		e.b.WriteString(" ")
		e.expr(x.Right)
		e.b.WriteString(")")
	case *ast.Call:
		e.expr(x.Callee)
		e.b.WriteString("(")
		for i, arg := range x.Arguments {
			if i > 0 {
				e.b.WriteString(", ")
			}
			e.expr(arg)
		}
		e.b.WriteString(")")
	}
}

func (e *Emitter) literal(lit *ast.Literal) {
	switch lit.Token.Kind {
	case token.StringLit:
		e.b.WriteString(strconv.Quote(stringLitBody(lit.Token.Lexeme)))
	default:
		e.b.WriteString(lit.Token.Lexeme)
	}
}

func stringLitBody(lexeme string) string {
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
