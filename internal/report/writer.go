package report

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

const (
	reportFilePermissions              = 0o644
	reportDirectoryPermissions         = 0o755
	reportWriteErrorTemplateConstant   = "failed to write report %s: %w"
	reportFileSystemMissingMessageText = "report file system not configured"
)

// FileWriter persists rendered report content.
type FileWriter interface {
	MkdirAll(path string, permissions fs.FileMode) error
	WriteFileAtomic(path string, data []byte, permissions fs.FileMode) error
}

// Writer publishes rendered reports, replacing any existing file at the destination.
type Writer struct {
	fileWriter FileWriter
}

// NewWriter constructs a Writer around the provided file writer.
func NewWriter(fileWriter FileWriter) *Writer {
	return &Writer{fileWriter: fileWriter}
}

// Write stores content at path, creating the parent directory when missing.
func (writer *Writer) Write(path string, content []byte) error {
	if writer == nil || writer.fileWriter == nil {
		return errors.New(reportFileSystemMissingMessageText)
	}
	if directoryError := writer.fileWriter.MkdirAll(filepath.Dir(path), reportDirectoryPermissions); directoryError != nil {
		return fmt.Errorf(reportWriteErrorTemplateConstant, path, directoryError)
	}
	if writeError := writer.fileWriter.WriteFileAtomic(path, content, reportFilePermissions); writeError != nil {
		return fmt.Errorf(reportWriteErrorTemplateConstant, path, writeError)
	}
	return nil
}
