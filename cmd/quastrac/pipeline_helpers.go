package main

import (
	"context"
	"fmt"
	"strings"

	"quastra/internal/driver"
	"quastra/internal/project"
	"quastra/internal/source"
)

// resolveInput loads either a single `<file>.q` positional argument or, when
// arg names a directory (or is empty, meaning the working directory), a
// quastra.toml manifest found by walking up from it — the fallback
// SPEC_FULL.md §2.2 describes. It returns the FileSet holding every loaded
// file, the FileIDs in source order, and the output path a `build` should
// write to.
func resolveInput(arg string) (fs *source.FileSet, ids []source.FileID, outputPath string, err error) {
	if strings.HasSuffix(arg, ".q") {
		fs = source.NewFileSet()
		id, loadErr := fs.Load(arg)
		if loadErr != nil {
			return nil, nil, "", withExitCode(driver.ExitIOErr, fmt.Errorf("opening %s: %w", arg, loadErr))
		}
		return fs, []source.FileID{id}, strings.TrimSuffix(arg, ".q") + ".cpp", nil
	}

	dir := arg
	if dir == "" {
		dir = "."
	}
	manifestPath, ok, findErr := project.FindManifest(dir)
	if findErr != nil {
		return nil, nil, "", withExitCode(driver.ExitIOErr, findErr)
	}
	if !ok {
		return nil, nil, "", withExitCode(driver.ExitUsage, fmt.Errorf("no %s found under %q and no <file>.q argument given", project.ManifestName, dir))
	}
	m, loadErr := project.Load(manifestPath)
	if loadErr != nil {
		return nil, nil, "", withExitCode(driver.ExitDataErr, loadErr)
	}

	fs = source.NewFileSet()
	results, loadErr := driver.LoadSources(context.Background(), fs, m.SourcePaths())
	if loadErr != nil {
		return nil, nil, "", withExitCode(driver.ExitIOErr, loadErr)
	}
	ids = make([]source.FileID, len(results))
	for i, r := range results {
		ids[i] = r.FileID
	}
	return fs, ids, m.OutputPath(), nil
}
