package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestLoadManifestDefaultsOutputAndBackend(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nentry = \"main.q\"\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Backend != BackendCpp {
		t.Fatalf("expected default backend cpp, got %q", m.Backend)
	}
	if m.Output != "main.cpp" {
		t.Fatalf("expected default output main.cpp, got %q", m.Output)
	}
}

func TestLoadManifestRejectsMissingEntry(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\noutput = \"out.cpp\"\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a missing entry")
	}
}

func TestLoadManifestRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nentry = \"main.q\"\nbackend = \"llvm\"\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unsupported backend")
	}
}

func TestManifestSourcePathsIncludesEntryThenFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `[package]
entry = "main.q"

[[file]]
path = "util.q"

[[file]]
path = "shapes.q"
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	paths := m.SourcePaths()
	want := []string{
		filepath.Join(dir, "main.q"),
		filepath.Join(dir, "util.q"),
		filepath.Join(dir, "shapes.q"),
	}
	if len(paths) != len(want) {
		t.Fatalf("expected %d source paths, got %d: %v", len(want), len(paths), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("path %d: want %q, got %q", i, want[i], paths[i])
		}
	}
}

func TestFindManifestWalksUpToAncestor(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nentry = \"main.q\"\n")
	nested := filepath.Join(root, "src", "inner")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(found) != root {
		t.Fatalf("expected manifest directory %q, got %q", root, filepath.Dir(found))
	}
}

func TestFindManifestReturnsNotFoundWithoutError(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindManifest(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected no manifest to be found")
	}
}
