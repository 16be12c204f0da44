package diag

import (
	"fmt"
	"strings"

	"quastra/internal/source"
)

// FormatGoldenDiagnostics renders diagnostics into a stable, one-line-per-
// entry representation suitable for golden test files: sorted by position,
// messages flattened to a single line, no color.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	if len(fs.BaseDir()) == 0 {
		// fall through; FormatPath handles an empty base directory itself.
		_ = 0
	}

	sorted := make([]Diagnostic, len(diags))
	copy(sorted, diags)
	bag := &Bag{items: sorted, max: len(sorted)}
	bag.Sort()

	var b strings.Builder
	for i, d := range bag.Items() {
		loc, _ := fs.Resolve(d.Primary)
		path := fs.Get(d.Primary.File).FormatPath("relative", fs.BaseDir())
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code.ID(), path, loc.Line, loc.Col, sanitize(d.Message))
		if i < len(bag.Items())-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func sanitize(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", " ")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
