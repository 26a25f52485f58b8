// Package filesystem provides the operating-system backed file access used to
// read scanned sources and to publish reports.
package filesystem

import (
	"bytes"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

// OSFileSystem implements file access using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// MkdirAll ensures a directory hierarchy exists with the provided permissions.
func (OSFileSystem) MkdirAll(path string, permissions fs.FileMode) error {
	return os.MkdirAll(path, permissions)
}

// ReadFile reads file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileAtomic replaces the file at path with data via a temporary file and rename.
func (OSFileSystem) WriteFileAtomic(path string, data []byte, permissions fs.FileMode) error {
	if writeError := atomic.WriteFile(path, bytes.NewReader(data)); writeError != nil {
		return writeError
	}
	// atomic.WriteFile keeps the permissions of a replaced file but creates new ones as 0600.
	return os.Chmod(path, permissions)
}
