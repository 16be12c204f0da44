package parser

import (
	"quastra/internal/ast"
	"quastra/internal/diag"
	"quastra/internal/token"
)

// statement := if | while | return | block | expr_stmt
func (p *Parser) statement() (ast.Stmt, bool) {
	switch {
	case p.check(token.KwIf):
		return p.ifStmt()
	case p.check(token.KwWhile):
		return p.whileStmt()
	case p.check(token.KwReturn):
		return p.returnStmt()
	case p.check(token.LBrace):
		return p.block()
	case p.check(token.KwFor), p.check(token.KwIn):
		// SPEC_FULL.md §3.5: `for`/`in` are reserved but have no grammar
		// production; reject with a dedicated diagnostic instead of
		// falling through to a confusing "unexpected token" error.
		p.advance()
		p.error(diag.SynForNotImplemented, "for-loops are not implemented.")
		return nil, false
	default:
		return p.exprStmt()
	}
}

// if := 'if' '(' expr ')' statement ('else' statement)?
func (p *Parser) ifStmt() (ast.Stmt, bool) {
	kw := p.advance() // 'if'
	if _, ok := p.expect(token.LParen, diag.SynExpectParen, "Expect '(' after 'if'."); !ok {
		return nil, false
	}
	cond, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectParen, "Expect ')' after if condition."); !ok {
		return nil, false
	}
	thenBranch, ok := p.statement()
	if !ok {
		return nil, false
	}

	var elseBranch ast.Stmt
	end := thenBranch.Span()
	if _, ok := p.match(token.KwElse); ok {
		elseBranch, ok = p.statement()
		if !ok {
			return nil, false
		}
		end = elseBranch.Span()
	}

	return &ast.If{Cond: cond, Then: thenBranch, Else: elseBranch, Sp: spanFromTo(kw.Span, end)}, true
}

// while := 'while' '(' expr ')' statement
func (p *Parser) whileStmt() (ast.Stmt, bool) {
	kw := p.advance() // 'while'
	if _, ok := p.expect(token.LParen, diag.SynExpectParen, "Expect '(' after 'while'."); !ok {
		return nil, false
	}
	cond, ok := p.expression()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectParen, "Expect ')' after while condition."); !ok {
		return nil, false
	}
	body, ok := p.statement()
	if !ok {
		return nil, false
	}
	return &ast.While{Cond: cond, Body: body, Sp: spanFromTo(kw.Span, body.Span())}, true
}

// return := 'return' expr? ';'
func (p *Parser) returnStmt() (ast.Stmt, bool) {
	kw := p.advance() // 'return'
	var value ast.Expr
	if !p.check(token.Semicolon) {
		var ok bool
		value, ok = p.expression()
		if !ok {
			return nil, false
		}
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "Expect ';' after return value.")
	if !ok {
		return nil, false
	}
	return &ast.Return{Keyword: kw, Value: value, Sp: spanFromTo(kw.Span, semi.Span)}, true
}

// block := '{' declaration* '}'
func (p *Parser) block() (ast.Stmt, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectBrace, "Expect '{'.")
	if !ok {
		return nil, false
	}
	var stmts []ast.Stmt
	for !p.check(token.RBrace) && !p.atEnd() {
		stmt, ok := p.declaration()
		if ok {
			stmts = append(stmts, stmt)
		} else {
			p.synchronize()
		}
	}
	closeBrace, ok := p.expect(token.RBrace, diag.SynExpectBrace, "Expect '}' after block.")
	if !ok {
		return nil, false
	}
	return &ast.Block{Statements: stmts, Sp: spanFromTo(open.Span, closeBrace.Span)}, true
}

// expr_stmt := expr ';'
func (p *Parser) exprStmt() (ast.Stmt, bool) {
	expr, ok := p.expression()
	if !ok {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "Expect ';' after expression.")
	if !ok {
		return nil, false
	}
	return &ast.ExprStmt{Expr: expr, Sp: spanFromTo(expr.Span(), semi.Span)}, true
}
