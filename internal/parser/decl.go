package parser

import (
	"quastra/internal/ast"
	"quastra/internal/diag"
	"quastra/internal/token"
)

// declaration := function | var_decl | statement
func (p *Parser) declaration() (ast.Stmt, bool) {
	switch {
	case p.check(token.KwFn):
		return p.functionDecl()
	case p.check(token.KwLet):
		return p.varDecl()
	default:
		return p.statement()
	}
}

// function := 'fn' IDENT '(' params? ')' ('->' TYPE_IDENT)? block
// params   := (IDENT ':' TYPE_IDENT) (',' IDENT ':' TYPE_IDENT)*
//
// The return-type annotation and the per-parameter type annotations are
// SPEC_FULL.md §3.2's generalization of the MVP grammar; both are optional
// so `fn f() { ... }` still parses under the original convention.
func (p *Parser) functionDecl() (ast.Stmt, bool) {
	kw := p.advance() // 'fn'
	name, ok := p.expect(token.Ident, diag.SynExpectIdent, "Expect function name.")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynExpectParen, "Expect '(' after function name."); !ok {
		return nil, false
	}

	var params []ast.Param
	if !p.check(token.RParen) {
		for {
			paramName, ok := p.expect(token.Ident, diag.SynExpectIdent, "Expect parameter name.")
			if !ok {
				return nil, false
			}
			typeName := ""
			if _, ok := p.match(token.Colon); ok {
				typ, ok := p.expect(token.TypeIdent, diag.SynExpectTypeIdent, "Expect type after ':'.")
				if !ok {
					return nil, false
				}
				typeName = typ.Lexeme
			}
			params = append(params, ast.Param{Name: paramName, TypeName: typeName})
			if _, ok := p.match(token.Comma); !ok {
				break
			}
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectParen, "Expect ')' after parameters."); !ok {
		return nil, false
	}

	returnType := ""
	if _, ok := p.match(token.Arrow); ok {
		typ, ok := p.expect(token.TypeIdent, diag.SynExpectTypeIdent, "Expect return type after '->'.")
		if !ok {
			return nil, false
		}
		returnType = typ.Lexeme
	}

	bodyStmt, ok := p.block()
	if !ok {
		return nil, false
	}
	body := bodyStmt.(*ast.Block)

	return &ast.Function{
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
		Sp:         spanFromTo(kw.Span, body.Sp),
	}, true
}

// var_decl := 'let' 'mut'? IDENT (':' TYPE_IDENT)? ('=' expr)? ';'
func (p *Parser) varDecl() (ast.Stmt, bool) {
	kw := p.advance() // 'let'
	mutable := false
	if _, ok := p.match(token.KwMut); ok {
		mutable = true
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdent, "Expect variable name.")
	if !ok {
		return nil, false
	}

	typeName := ""
	if _, ok := p.match(token.Colon); ok {
		typ, ok := p.expect(token.TypeIdent, diag.SynExpectTypeIdent, "Expect type after ':'.")
		if !ok {
			return nil, false
		}
		typeName = typ.Lexeme
	}

	var initializer ast.Expr
	if _, ok := p.match(token.Assign); ok {
		initializer, ok = p.expression()
		if !ok {
			return nil, false
		}
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "Expect ';' after variable declaration.")
	if !ok {
		return nil, false
	}
	return &ast.VarDecl{
		Name:        name,
		Mutable:     mutable,
		TypeName:    typeName,
		Initializer: initializer,
		Sp:          spanFromTo(kw.Span, semi.Span),
	}, true
}
