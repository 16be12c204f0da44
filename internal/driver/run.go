package driver

import (
	"io"

	"quastra/internal/ast"
	"quastra/internal/emitter"
	"quastra/internal/eval"
)

// Interpret runs stmts through the Evaluator in-process — the "Interpreter
// harness" of spec.md §6 exercised by `quastrac run`. After the top-level
// statements have run, a zero-argument `main` function, if one was
// defined, is called, mirroring the `int main()` the Emitter produces.
func Interpret(stmts []ast.Stmt, out io.Writer) error {
	ev := eval.New(out)
	if err := ev.Interpret(stmts); err != nil {
		return err
	}
	if v, ok := ev.Globals.Get("main"); ok && v.Kind == eval.VKCallable && v.Fn.Arity == 0 {
		_, err := ev.Call(v.Fn, nil)
		return err
	}
	return nil
}

// Emit lowers stmts to C++ host-language text via the Emitter, for
// `quastrac build`.
func Emit(stmts []ast.Stmt) string {
	return emitter.Emit(stmts)
}
