package lexer

import (
	"testing"

	"quastra/internal/source"
	"quastra/internal/token"
)

func scan(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.q", []byte(src))
	lx := New(fs.Get(id), nil)
	return lx.Tokens()
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexFnMainDeclaration(t *testing.T) {
	toks := scan(t, "fn main() -> int { return 0 }")

	want := []token.Kind{
		token.KwFn, token.Ident, token.LParen, token.RParen, token.Arrow,
		token.TypeIdent, token.LBrace, token.KwReturn, token.IntLit, token.RBrace,
		token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d kind = %s, want %s", i, got[i], want[i])
		}
	}
	if toks[1].Lexeme != "main" {
		t.Fatalf("expected identifier lexeme 'main', got %q", toks[1].Lexeme)
	}
	if toks[5].Lexeme != "int" {
		t.Fatalf("expected type identifier lexeme 'int', got %q", toks[5].Lexeme)
	}
}

func TestLexAlwaysEndsInOneEOF(t *testing.T) {
	toks := scan(t, "let x = 1;")
	last := toks[len(toks)-1]
	if last.Kind != token.EOF {
		t.Fatalf("expected final token to be EOF, got %s", last.Kind)
	}
	for _, tok := range toks[:len(toks)-1] {
		if tok.Kind == token.EOF {
			t.Fatal("EOF appeared before the end of the token stream")
		}
	}
}

func TestLexFloatVsIntLiteral(t *testing.T) {
	toks := scan(t, "1 1.5 1.")
	if toks[0].Kind != token.IntLit || toks[0].Lexeme != "1" {
		t.Fatalf("unexpected token 0: %+v", toks[0])
	}
	if toks[1].Kind != token.FloatLit || toks[1].Lexeme != "1.5" {
		t.Fatalf("unexpected token 1: %+v", toks[1])
	}
	// "1." with no following digit is an int literal followed by a dot.
	if toks[2].Kind != token.IntLit || toks[2].Lexeme != "1" {
		t.Fatalf("unexpected token 2: %+v", toks[2])
	}
	if toks[3].Kind != token.Dot {
		t.Fatalf("expected a trailing Dot token, got %+v", toks[3])
	}
}

func TestLexUnterminatedString(t *testing.T) {
	toks := scan(t, `"hello`)
	if toks[0].Kind != token.Error || toks[0].Message != "Unterminated string." {
		t.Fatalf("expected unterminated string error, got %+v", toks[0])
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	toks := scan(t, "@")
	if toks[0].Kind != token.Error || toks[0].Message != "Unexpected character." {
		t.Fatalf("expected unexpected character error, got %+v", toks[0])
	}
}

func TestLexMultiCharOperators(t *testing.T) {
	toks := scan(t, "== != <= >= && || -> += -= *= /=")
	want := []token.Kind{
		token.EqEq, token.BangEq, token.LtEq, token.GtEq, token.AndAnd, token.OrOr,
		token.Arrow, token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
		token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexSkipsLineComments(t *testing.T) {
	toks := scan(t, "let x = 1; // a comment\nlet y = 2;")
	count := 0
	for _, tok := range toks {
		if tok.Kind != token.EOF {
			count++
		}
	}
	if count != 10 {
		t.Fatalf("expected 10 non-EOF tokens, got %d: %v", count, kinds(toks))
	}
}

func TestLexReconstructsSourceFromLexemes(t *testing.T) {
	// Every non-whitespace, non-comment byte of the source must show up in
	// some lexeme, in order — the round-trip invariant of spec.md §8.
	src := "let mut x: Int = 3 + 4 * (5 - 1);"
	toks := scan(t, src)
	var rebuilt string
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		rebuilt += tok.Lexeme
	}
	if rebuilt != "letmutx:Int=3+4*(5-1);" {
		t.Fatalf("unexpected concatenation: %q", rebuilt)
	}
}
