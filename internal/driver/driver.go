// Package driver orchestrates the core pipeline described in spec.md §6: it
// is explicitly an external collaborator, not part of the tested core.
// cmd/quastrac is its only caller.
package driver

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"quastra/internal/ast"
	"quastra/internal/diag"
	"quastra/internal/lexer"
	"quastra/internal/parser"
	"quastra/internal/resolver"
	"quastra/internal/source"
	"quastra/internal/typecheck"
)

// Process exit codes, per spec.md §6.
const (
	ExitOK          = 0
	ExitUsage       = 64 // bad command-line usage
	ExitDataErr     = 65 // the source itself could not be read/compiled
	ExitIOErr       = 74 // an I/O error opening the file
	ExitRuntimeFail = 1  // a downstream run/compile step failed
)

// DefaultMaxDiagnostics bounds how many findings a single run accumulates
// across all four static passes before later ones are silently dropped.
const DefaultMaxDiagnostics = 200

// LoadResult pairs a source path with the FileID it was registered under.
type LoadResult struct {
	Path   string
	FileID source.FileID
}

// LoadSources reads every path concurrently (SPEC_FULL.md §2.4) and
// registers each one into fs in paths' original order, regardless of which
// read finishes first. Only the disk reads race; fs.Add itself runs on the
// calling goroutine once every read has completed.
func LoadSources(ctx context.Context, fs *source.FileSet, paths []string) ([]LoadResult, error) {
	contents := make([][]byte, len(paths))
	g, _ := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]LoadResult, len(paths))
	for i, p := range paths {
		results[i] = LoadResult{Path: p, FileID: fs.Add(p, contents[i], 0)}
	}
	return results, nil
}

// Result is the outcome of running the static portion of the pipeline
// (Lexer -> Parser -> Resolver -> TypeChecker) over one combined program.
type Result struct {
	Stmts []ast.Stmt
	Bag   *diag.Bag
	OK    bool
}

// RunSingle lexes, parses, resolves, and type-checks the one file id names.
func RunSingle(id source.FileID, fs *source.FileSet, maxDiagnostics int) Result {
	return RunCombined([]source.FileID{id}, fs, maxDiagnostics)
}

// RunCombined implements SPEC_FULL.md §3.3's multi-file semantics: every
// file in ids is lexed and parsed independently, and their statement lists
// are concatenated in order before a single Resolver/TypeChecker pass sees
// the combined program as one global scope.
func RunCombined(ids []source.FileID, fs *source.FileSet, maxDiagnostics int) Result {
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}

	var combined []ast.Stmt
	for _, id := range ids {
		lx := lexer.New(fs.Get(id), rep)
		fileStmts, _ := parser.Parse(id, lx.Tokens(), rep)
		combined = append(combined, fileStmts...)
	}

	resolveOK := resolver.Resolve(combined, rep)
	checkOK := typecheck.Check(combined, rep)

	return Result{
		Stmts: combined,
		Bag:   bag,
		OK:    resolveOK && checkOK && !bag.HasErrors(),
	}
}
