package eval

import (
	"fmt"
	"io"
)

// seedNatives installs the evaluator's built-in functions into the root
// Environment (spec.md §4.5): a `println` native of arity 1 that prints
// its argument followed by a line terminator and returns false.
func seedNatives(out io.Writer, global *Environment) {
	println := &Callable{
		Name:  "println",
		Arity: 1,
		Native: func(args []Value) (Value, error) {
			fmt.Fprintln(out, args[0].String())
			return False, nil
		},
	}
	global.Define("println", CallableValue(println))
}
