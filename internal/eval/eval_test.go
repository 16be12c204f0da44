package eval

import (
	"bytes"
	"testing"

	"quastra/internal/ast"
	"quastra/internal/diag"
	"quastra/internal/lexer"
	"quastra/internal/parser"
	"quastra/internal/source"
)

func parseForEval(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.q", []byte(src))
	lx := lexer.New(fs.Get(id), nil)
	bag := diag.NewBag(100)
	stmts, ok := parser.Parse(id, lx.Tokens(), diag.BagReporter{Bag: bag})
	if !ok {
		t.Fatalf("unexpected parse failure: %+v", bag.Items())
	}
	return stmts
}

func TestEvalWhileLoopMutatesBinding(t *testing.T) {
	stmts := parseForEval(t, "let mut x = 0; while (x < 3) { x = x + 1; }")
	ev := New(&bytes.Buffer{})
	if err := ev.Interpret(stmts); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	v, ok := ev.Globals.Get("x")
	if !ok || v.Kind != VKNumber || v.Number != 3 {
		t.Fatalf("expected x == 3.0, got %+v (ok=%v)", v, ok)
	}
}

func TestEvalBlockScopingDoesNotLeakOut(t *testing.T) {
	stmts := parseForEval(t, "let a = 1; { let a = 2; }")
	ev := New(&bytes.Buffer{})
	if err := ev.Interpret(stmts); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	v, ok := ev.Globals.Get("a")
	if !ok || v.Number != 1 {
		t.Fatalf("expected outer a to remain 1, got %+v", v)
	}
}

func TestEvalPrintlnWritesLine(t *testing.T) {
	stmts := parseForEval(t, "println(123);")
	var buf bytes.Buffer
	ev := New(&buf)
	if err := ev.Interpret(stmts); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if buf.String() != "123\n" {
		t.Fatalf("expected %q, got %q", "123\n", buf.String())
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	stmts := parseForEval(t, "let x = 1 / 0;")
	ev := New(&bytes.Buffer{})
	err := ev.Interpret(stmts)
	if err == nil {
		t.Fatal("expected a division-by-zero runtime error")
	}
	rtErr, ok := err.(*RuntimeError)
	if !ok || rtErr.Message != "Division by zero." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEvalFunctionCallAndReturn(t *testing.T) {
	stmts := parseForEval(t, "fn add(a, b) { return a + b; } let result = add(2, 3);")
	ev := New(&bytes.Buffer{})
	if err := ev.Interpret(stmts); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	v, ok := ev.Globals.Get("result")
	if !ok || v.Number != 5 {
		t.Fatalf("expected result == 5, got %+v", v)
	}
}

func TestEvalClosureCapturesDefiningEnvironment(t *testing.T) {
	src := `
	fn makeCounter() {
		let mut count = 0;
		fn increment() {
			count = count + 1;
			return count;
		}
		return increment;
	}
	`
	// makeCounter returns its inner closure; the wrapper stores it in a
	// local and calls it once, so the captured count goes from 0 to 1.
	stmts := parseForEval(t, src+"fn incrementOnce() { let counter = makeCounter(); println(counter()); return 0; }")
	var buf bytes.Buffer
	ev := New(&buf)
	if err := ev.Interpret(stmts); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	callStmts := parseForEval(t, "incrementOnce();")
	if err := ev.Interpret(callStmts); err != nil {
		t.Fatalf("unexpected runtime error calling incrementOnce: %v", err)
	}
	if buf.String() != "1\n" {
		t.Fatalf("expected closure to start its counter at 1, got %q", buf.String())
	}
}

func TestEvalShortCircuitSkipsRightOperand(t *testing.T) {
	// If `&&` evaluated its right side, calling the undefined `boom()`
	// would raise a runtime error; short-circuiting must prevent that.
	stmts := parseForEval(t, "false && boom();")
	ev := New(&bytes.Buffer{})
	if err := ev.Interpret(stmts); err != nil {
		t.Fatalf("expected short-circuit to skip the right operand, got error: %v", err)
	}
}

func TestEvalNonCallableCallee(t *testing.T) {
	stmts := parseForEval(t, "let x = 1; x();")
	ev := New(&bytes.Buffer{})
	err := ev.Interpret(stmts)
	if err == nil {
		t.Fatal("expected a runtime error calling a non-callable value")
	}
}
