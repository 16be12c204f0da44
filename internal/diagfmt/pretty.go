// Package diagfmt renders a diag.Bag for a terminal. Per internal/diag's
// doc comment, this is the only package allowed to know about terminal
// color or width.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"quastra/internal/diag"
	"quastra/internal/source"
)

// Options configures Pretty's rendering.
type Options struct {
	Color bool
	// PathMode selects how file paths are displayed: "auto" (default),
	// "relative", "absolute", or "basename" — passed through to
	// source.File.FormatPath.
	PathMode string
}

// DetectColor reports whether fd is a terminal that supports ANSI color,
// the check the CLI applies to stderr to decide Options.Color unless
// --color=on or --color=off overrides it.
func DetectColor(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

var (
	errorColor    = color.New(color.FgRed, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
	infoColor     = color.New(color.FgCyan, color.Bold)
	codeColor     = color.New(color.FgHiBlack)
	caretColor    = color.New(color.FgRed, color.Bold)
	noteColor     = color.New(color.FgHiBlack)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Pretty renders bag's diagnostics to w in deterministic order (bag.Sort):
// one header line per diagnostic in `path:line:col: severity CODE: message`
// form, a source snippet, and a caret underline beneath the offending span.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts Options) {
	bag.Sort()
	items := bag.Items()
	for i, d := range items {
		writeDiagnostic(w, d, fs, opts)
		if i < len(items)-1 {
			fmt.Fprintln(w)
		}
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts Options) {
	loc, _ := fs.Resolve(d.Primary)
	path := fs.Get(d.Primary.File).FormatPath(pathMode(opts), fs.BaseDir())

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, loc.Line, loc.Col,
		severityText(d.Severity, opts), codeText(d.Code, opts), d.Message)
	writeSnippet(w, fs, d.Primary, opts)

	for _, n := range d.Notes {
		nloc, _ := fs.Resolve(n.Span)
		note := fmt.Sprintf("  note: %s:%d:%d: %s", path, nloc.Line, nloc.Col, n.Msg)
		if opts.Color {
			note = noteColor.Sprint(note)
		}
		fmt.Fprintln(w, note)
	}
}

func pathMode(opts Options) string {
	if opts.PathMode == "" {
		return "auto"
	}
	return opts.PathMode
}

func severityText(sev diag.Severity, opts Options) string {
	if !opts.Color {
		return sev.String()
	}
	return severityColor(sev).Sprint(sev.String())
}

func codeText(code diag.Code, opts Options) string {
	if !opts.Color {
		return code.ID()
	}
	return codeColor.Sprint(code.ID())
}

// writeSnippet prints the source line containing span's start and a caret
// underline spanning its width. Prefix and caret widths are measured with
// runewidth rather than byte length, so multi-byte identifiers before or
// inside the span still line the carets up under the right columns.
func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, opts Options) {
	start, end := fs.Resolve(span)
	line := fs.Get(span.File).GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	prefix := clampSlice(line, int(start.Col)-1)
	prefixWidth := runewidth.StringWidth(prefix)

	caretLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		body := clampSlice(line[min(len(prefix), len(line)):], int(end.Col-start.Col))
		if w := runewidth.StringWidth(body); w > 0 {
			caretLen = w
		}
	}

	caret := strings.Repeat("^", caretLen)
	if opts.Color {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", prefixWidth), caret)
}

// clampSlice returns the first n bytes of s, clamped to len(s).
func clampSlice(s string, n int) string {
	if n < 0 {
		return ""
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
