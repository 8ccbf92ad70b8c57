// Package fs writes generated headers to disk.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/mpheader"
)

// HeaderFile writes a header with atomic update semantics. Content is
// saved to a temporary file next to the target and renamed over it on
// Commit, so a failed run never leaves a partial header behind.
type HeaderFile struct {
	path string
}

// NewHeaderFile creates a new HeaderFile targeting path.
func NewHeaderFile(path string) *HeaderFile {
	return &HeaderFile{path: path}
}

func (f *HeaderFile) tempPath() string {
	return f.path + ".tmp"
}

// Path returns the target path.
func (f *HeaderFile) Path() string {
	return f.path
}

// Save writes content to the temporary file.
func (f *HeaderFile) Save(content []byte) error {
	if f.path == "" {
		return mpheader.Errorf(mpheader.EINVALID, "output path required")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(f.tempPath(), content, 0644)
}

// Commit atomically moves the saved content to the target path.
func (f *HeaderFile) Commit() error {
	return os.Rename(f.tempPath(), f.path)
}

// Abort removes the temporary file.
func (f *HeaderFile) Abort() error {
	err := os.Remove(f.tempPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
