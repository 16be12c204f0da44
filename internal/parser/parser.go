// Package parser turns a token sequence into the statement list of
// spec.md §4.2: a recursive-descent parser with one function per grammar
// level, synchronizing at declaration boundaries so a single run can
// surface more than one syntax error.
package parser

import (
	"quastra/internal/ast"
	"quastra/internal/diag"
	"quastra/internal/source"
	"quastra/internal/token"
)

// Parser holds the whole token stream for one file plus a cursor into it.
// Unlike the lexer, the parser needs unbounded lookahead-by-index for
// synchronization, so it works over a materialized slice rather than a
// pull-based stream.
type Parser struct {
	tokens   []token.Token
	pos      int
	rep      diag.Reporter
	fileID   source.FileID
	hadError bool
}

// New builds a Parser over a complete token stream (normally the output of
// (*lexer.Lexer).Tokens). tokens must end in exactly one EOF token.
func New(fileID source.FileID, tokens []token.Token, rep diag.Reporter) *Parser {
	return &Parser{tokens: tokens, fileID: fileID, rep: rep}
}

// Parse runs the parser to completion, returning the top-level statement
// list and whether parsing completed without error. Statements that failed
// to parse are omitted rather than represented with a sentinel node — the
// synchronize step already resumes at the next declaration boundary, so
// the remaining list is simply shorter by the broken entries.
func Parse(fileID source.FileID, tokens []token.Token, rep diag.Reporter) ([]ast.Stmt, bool) {
	p := New(fileID, tokens, rep)
	var stmts []ast.Stmt
	for !p.atEnd() {
		stmt, ok := p.declaration()
		if ok {
			stmts = append(stmts, stmt)
		} else {
			p.synchronize()
		}
	}
	return stmts, !p.hadError
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) check(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.tokens[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// match consumes and returns the current token if it is one of kinds.
func (p *Parser) match(kinds ...token.Kind) (token.Token, bool) {
	for _, k := range kinds {
		if p.check(k) {
			return p.advance(), true
		}
	}
	return token.Token{}, false
}

// expect consumes the current token if it has kind k, otherwise reports
// code/msg at the current position and returns ok=false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	p.error(code, msg)
	return token.Token{}, false
}

func (p *Parser) error(code diag.Code, msg string) {
	p.hadError = true
	sp := source.Span{File: p.fileID, Start: p.peek().Span.Start, End: p.peek().Span.End}
	diag.ReportError(p.rep, code, sp, msg)
}

// synchronize discards tokens until it reaches a plausible declaration
// boundary: just past a `;`, or just before a keyword that starts a new
// declaration/statement (spec.md §4.2's error policy).
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.peek().Kind == token.Semicolon {
			p.advance()
			return
		}
		switch p.peekAt(0).Kind {
		case token.KwFn, token.KwLet, token.KwIf, token.KwWhile, token.KwReturn, token.LBrace:
			return
		}
		p.advance()
	}
}

func spanFromTo(from, to source.Span) source.Span {
	return from.Cover(to)
}
