package token

import "quastra/internal/source"

// Token is a single lexeme produced by the lexer: its kind, the exact
// source-string slice it matched, the source span, and the 1-based source
// line it started on (kept alongside Span for diagnostics that predate a
// FileSet lookup, e.g. REPL echo).
type Token struct {
	Kind    Kind
	Lexeme  string
	Span    source.Span
	Line    uint32
	Message string // set only on Kind == Error
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LParen, RParen, LBrace, RBrace, LBracket, RBracket, Semicolon, Comma, Colon, Dot,
		Plus, Minus, Star, Slash, Assign, EqEq, Bang, BangEq, Lt, LtEq, Gt, GtEq,
		Amp, Pipe, Caret, AndAnd, OrOr, PlusAssign, MinusAssign, StarAssign, SlashAssign, Arrow:
		return true
	default:
		return false
	}
}
