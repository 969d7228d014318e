// Package filesystem provides the file access dotty needs to read and persist
// its configuration document.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/byterings/dotty/internal/platform"
)

// FileSystem is the minimal file capability used by the config store
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) (string, error)
	// WriteFile replaces path with contents, creating missing parent directories
	WriteFile(path, contents string) error
}

// OS reads and writes the real filesystem
type OS struct{}

// NewOS returns a FileSystem backed by the operating system
func NewOS() *OS {
	return &OS{}
}

// Exists reports whether anything is present at path
func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile returns the contents of path
func (OS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile writes contents with restrictive permissions, creating parent directories
func (OS) WriteFile(path, contents string) error {
	if err := platform.MkdirSecure(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := platform.OpenFileSecure(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(contents); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
