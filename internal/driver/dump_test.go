package driver

import (
	"bytes"
	"testing"

	"quastra/internal/diag"
	"quastra/internal/lexer"
	"quastra/internal/source"
)

func TestDumpTokensTextAndMsgpackRoundTripLength(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.q", []byte("let x = 1;"))
	lx := lexer.New(fs.Get(id), nil)
	toks := lx.Tokens()

	var text bytes.Buffer
	if err := DumpTokens(&text, toks, DumpText); err != nil {
		t.Fatalf("DumpTokens text: %v", err)
	}
	if text.Len() == 0 {
		t.Fatal("expected non-empty text dump")
	}

	var packed bytes.Buffer
	if err := DumpTokens(&packed, toks, DumpMsgpack); err != nil {
		t.Fatalf("DumpTokens msgpack: %v", err)
	}
	if packed.Len() == 0 {
		t.Fatal("expected non-empty msgpack dump")
	}
}

func TestDumpDiagnosticsText(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.q", []byte("let x = y;"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.ResUndefined, source.Span{File: id, Start: 8, End: 9}, "Undefined variable 'y'."))

	var out bytes.Buffer
	if err := DumpDiagnostics(&out, bag, fs, DumpText); err != nil {
		t.Fatalf("DumpDiagnostics: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected non-empty diagnostics dump")
	}
}
