package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Kind
	}{
		{"fn", KwFn},
		{"let", KwLet},
		{"mut", KwMut},
		{"return", KwReturn},
		{"true", KwTrue},
		{"false", KwFalse},
		{"for", KwFor},
		{"in", KwIn},
		{"main", Ident},
		{"Fn", Ident}, // keywords are case-sensitive
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.lexeme); got != tt.want {
			t.Errorf("LookupIdent(%q) = %s, want %s", tt.lexeme, got, tt.want)
		}
	}
}

func TestKindIsKeyword(t *testing.T) {
	if !KwWhile.IsKeyword() {
		t.Error("KwWhile should be a keyword")
	}
	if Ident.IsKeyword() {
		t.Error("Ident should not be a keyword")
	}
}

func TestKindIsLiteral(t *testing.T) {
	for _, k := range []Kind{IntLit, FloatLit, StringLit, KwTrue, KwFalse} {
		if !k.IsLiteral() {
			t.Errorf("%s should be a literal kind", k)
		}
	}
	if Ident.IsLiteral() {
		t.Error("Ident should not be a literal kind")
	}
}
