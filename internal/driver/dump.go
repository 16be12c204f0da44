package driver

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"quastra/internal/diag"
	"quastra/internal/source"
	"quastra/internal/token"
)

// DumpFormat selects how `quastrac dump` renders its subject.
type DumpFormat string

const (
	DumpText    DumpFormat = "text"
	DumpMsgpack DumpFormat = "msgpack"
)

// DumpTokens writes toks to w as either one `KIND "lexeme"` line per token
// or a single msgpack-encoded array, for external tooling to consume. This
// is a one-shot inspection surface, never read back by a later build to
// skip a pass (SPEC_FULL.md §2.5).
func DumpTokens(w io.Writer, toks []token.Token, format DumpFormat) error {
	if format == DumpMsgpack {
		return msgpack.NewEncoder(w).Encode(toks)
	}
	for _, t := range toks {
		if _, err := fmt.Fprintf(w, "%-12s %q\n", t.Kind, t.Lexeme); err != nil {
			return err
		}
	}
	return nil
}

// DumpDiagnostics writes bag to w as either the deterministic golden text
// form shared with the test suite, or msgpack.
func DumpDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, format DumpFormat) error {
	if format == DumpMsgpack {
		return msgpack.NewEncoder(w).Encode(bag.Items())
	}
	_, err := io.WriteString(w, diag.FormatGoldenDiagnostics(bag.Items(), fs)+"\n")
	return err
}
