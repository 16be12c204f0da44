package main

import (
	"errors"

	"quastra/internal/driver"
)

// exitError carries a spec.md §6 exit code alongside the error cobra
// reports, so main can set os.Exit's status without cobra's own error
// printing baking in a single fixed code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func exitCodeFor(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if err != nil {
		return driver.ExitRuntimeFail
	}
	return driver.ExitOK
}
