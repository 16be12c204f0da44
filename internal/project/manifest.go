package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Backend names a target the emitter lowers to. Only Cpp exists today;
// the field is still validated against a known set so a typo in
// quastra.toml fails fast instead of silently falling back.
type Backend string

const (
	BackendCpp Backend = "cpp"
)

// FileEntry is one `[[file]]` table: an additional source file lexed and
// parsed independently of the entry file, per SPEC_FULL.md §3.3.
type FileEntry struct {
	Path string `toml:"path"`
}

// Manifest is a parsed, validated quastra.toml.
type Manifest struct {
	Dir     string
	Entry   string
	Output  string
	Backend Backend
	Files   []FileEntry
}

type rawManifest struct {
	Package struct {
		Entry   string `toml:"entry"`
		Output  string `toml:"output"`
		Backend string `toml:"backend"`
	} `toml:"package"`
	File []FileEntry `toml:"file"`
}

// Load parses and validates the quastra.toml at path.
func Load(path string) (*Manifest, error) {
	var raw rawManifest
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	entry := strings.TrimSpace(raw.Package.Entry)
	if entry == "" {
		return nil, fmt.Errorf("%s: [package].entry is required", path)
	}

	backend := Backend(strings.TrimSpace(raw.Package.Backend))
	if backend == "" {
		backend = BackendCpp
	}
	if backend != BackendCpp {
		return nil, fmt.Errorf("%s: unsupported [package].backend %q", path, backend)
	}

	output := strings.TrimSpace(raw.Package.Output)
	if output == "" {
		output = strings.TrimSuffix(entry, filepath.Ext(entry)) + ".cpp"
	}

	return &Manifest{
		Dir:     filepath.Dir(path),
		Entry:   entry,
		Output:  output,
		Backend: backend,
		Files:   raw.File,
	}, nil
}

// SourcePaths returns the entry file followed by every [[file]] entry,
// each resolved to an absolute path rooted at the manifest's directory, in
// manifest order (SPEC_FULL.md §3.3: files are concatenated in this order
// before resolution).
func (m *Manifest) SourcePaths() []string {
	paths := make([]string, 0, len(m.Files)+1)
	paths = append(paths, m.resolve(m.Entry))
	for _, f := range m.Files {
		paths = append(paths, m.resolve(f.Path))
	}
	return paths
}

// OutputPath returns the manifest's output path resolved relative to its
// directory.
func (m *Manifest) OutputPath() string {
	return m.resolve(m.Output)
}

func (m *Manifest) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(m.Dir, p)
}
