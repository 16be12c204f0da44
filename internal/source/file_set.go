// Package source holds loaded program text and maps byte offsets back to
// human-readable file/line/column positions for every downstream pass.
package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// FileSet owns every source file participating in one compilation and hands
// out stable FileIDs so that Spans stay small (a FileID plus two offsets)
// instead of carrying a path string around.
type FileSet struct {
	files   []File
	index   map[string]FileID
	baseDir string
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// SetBaseDir sets the directory FormatPath uses to compute relative paths.
func (fs *FileSet) SetBaseDir(dir string) {
	fs.baseDir = dir
}

// BaseDir returns the configured base directory, defaulting to the current
// working directory when none was set.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fs.baseDir
}

// Add stores a file from already-normalized bytes and returns its FileID.
// Re-adding the same path creates a new, independent FileID; existing Spans
// referencing the old one keep working.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("source: too many files: %w", err))
	}
	id := FileID(lenFiles)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Flags:   flags,
	})
	fs.index[normalizedPath] = id
	return id
}

// Load reads path from disk, strips a BOM, normalizes CRLF line endings and
// Unicode-normalizes the text to NFC before lexing, then calls Add.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is supplied by the CLI caller, not untrusted input
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fs.add(path, content, 0)
}

// AddVirtual adds an in-memory file (REPL input, embedding-test source) with
// the FileVirtual flag set.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	id, err := fs.add(name, content, FileVirtual)
	if err != nil {
		// add() currently always returns a nil error: the FileID-overflow
		// guard in Add panics on its own rather than returning one.
		panic(err)
	}
	return id
}

func (fs *FileSet) add(path string, content []byte, base FileFlags) (FileID, error) {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	normalized := norm.NFC.Bytes(content)
	flags := base
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	if string(normalized) != string(content) {
		flags |= FileNFCNormalized
	}
	return fs.Add(path, normalized, flags), nil
}

// Get returns the file metadata for id. It panics on an out-of-range id,
// which indicates a Span was produced by a different FileSet.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// GetByPath returns the most recently added file stored under path.
func (fs *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fs.index[normalizePath(path)]; ok {
		return &fs.files[id], true
	}
	return nil, false
}

// Resolve converts a span's start and end offsets into line/column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// GetLine returns the 1-based line lineNum from f, or "" past end of file.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("source: line index length overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source: content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(f.Content[start:end])
}

// FormatPath renders f.Path according to mode ("absolute", "relative",
// "basename", or "auto", which returns f.Path unchanged unless it is an
// absolute path of 40 or more bytes, in which case it returns the base name).
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path
	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path
	case "basename":
		return BaseName(f.Path)
	case "auto":
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)
	default:
		return f.Path
	}
}
