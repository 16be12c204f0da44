package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"quastra/internal/diag"
	"quastra/internal/source"
)

func TestPrettyRendersLocationSeverityAndCode(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/home/user/project")
	fileID := fs.AddVirtual("/home/user/project/src/test.q", []byte("let x = y;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.ResUndefined, source.Span{File: fileID, Start: 8, End: 9}, "Undefined variable 'y'."))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{PathMode: "relative"})

	out := buf.String()
	if !strings.Contains(out, "src/test.q:1:9: error RES3002: Undefined variable 'y'.") {
		t.Fatalf("missing header line, got:\n%s", out)
	}
	if !strings.Contains(out, "let x = y;") {
		t.Fatalf("missing source snippet, got:\n%s", out)
	}
}

func TestPrettyCaretUnderlinesSpanWidth(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.q", []byte("let total = 1;\n"))
	bag := diag.NewBag(10)
	// "total" spans columns 5-9 (1-based, 5 chars wide).
	bag.Add(diag.NewError(diag.ResAlreadyDeclared, source.Span{File: fileID, Start: 4, End: 9}, "Symbol 'total' already declared."))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + snippet + caret lines, got %d lines:\n%q", len(lines), lines)
	}
	caretLine := lines[2]
	if got := strings.Count(caretLine, "^"); got != 5 {
		t.Fatalf("expected 5 carets for a 5-byte span, got %d in %q", got, caretLine)
	}
	if !strings.HasPrefix(caretLine, "      ") {
		t.Fatalf("expected caret line indented past 'let ', got %q", caretLine)
	}
}

func TestPrettyRendersNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.q", []byte("let a = 1; let a = 2;\n"))
	bag := diag.NewBag(10)
	d := diag.NewError(diag.ResAlreadyDeclared, source.Span{File: fileID, Start: 15, End: 16}, "Symbol 'a' already declared.").
		WithNote(source.Span{File: fileID, Start: 4, End: 5}, "first declared here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{})
	if !strings.Contains(buf.String(), "note:") || !strings.Contains(buf.String(), "first declared here") {
		t.Fatalf("expected a rendered note, got:\n%s", buf.String())
	}
}

func TestPrettySeparatesMultipleDiagnosticsWithBlankLine(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.q", []byte("let a = b; let c = d;\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.ResUndefined, source.Span{File: fileID, Start: 8, End: 9}, "Undefined variable 'b'."))
	bag.Add(diag.NewError(diag.ResUndefined, source.Span{File: fileID, Start: 19, End: 20}, "Undefined variable 'd'."))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{})
	if !strings.Contains(buf.String(), "\n\n") {
		t.Fatal("expected a blank line separating the two diagnostics")
	}
}

func TestDetectColorOnNonTerminal(t *testing.T) {
	// An invalid file descriptor must never be reported as color-capable.
	if DetectColor(^uintptr(0)) {
		t.Fatal("expected an invalid fd to report no color support")
	}
}
