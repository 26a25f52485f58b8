package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	extensionSeparatorConstant       = "."
	walkRepositoryErrorTemplateConst = "failed to walk repository %s: %w"
)

// FilesystemFileDiscoverer locates candidate files on disk.
type FilesystemFileDiscoverer struct {
	extensions        []string
	excludedFileNames map[string]struct{}
}

// NewFilesystemFileDiscoverer constructs a discoverer backed by filepath.WalkDir.
// Extensions are matched as file name suffixes; a missing leading dot is added.
func NewFilesystemFileDiscoverer(extensions []string, excludedFileNames []string) *FilesystemFileDiscoverer {
	normalizedExtensions := make([]string, 0, len(extensions))
	for _, extension := range extensions {
		trimmedExtension := strings.TrimSpace(extension)
		if len(trimmedExtension) == 0 {
			continue
		}
		if !strings.HasPrefix(trimmedExtension, extensionSeparatorConstant) {
			trimmedExtension = extensionSeparatorConstant + trimmedExtension
		}
		normalizedExtensions = append(normalizedExtensions, trimmedExtension)
	}

	excluded := make(map[string]struct{}, len(excludedFileNames))
	for _, excludedFileName := range excludedFileNames {
		trimmedFileName := strings.TrimSpace(excludedFileName)
		if len(trimmedFileName) == 0 {
			continue
		}
		excluded[trimmedFileName] = struct{}{}
	}

	return &FilesystemFileDiscoverer{
		extensions:        normalizedExtensions,
		excludedFileNames: excluded,
	}
}

// DiscoverFiles walks root depth-first and returns matching file paths.
// Entries within a directory are visited in lexical order. Any traversal
// error aborts the walk. Symbolic links to directories are neither followed
// nor returned; links to files are returned like regular files.
func (discoverer *FilesystemFileDiscoverer) DiscoverFiles(root string) ([]string, error) {
	var files []string

	walkError := filepath.WalkDir(root, func(path string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return walkError
		}

		if directoryEntry.IsDir() || isDirectoryLink(path, directoryEntry) {
			return nil
		}

		if !discoverer.Accepts(directoryEntry.Name()) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if walkError != nil {
		return nil, fmt.Errorf(walkRepositoryErrorTemplateConst, root, walkError)
	}

	return files, nil
}

func isDirectoryLink(path string, directoryEntry fs.DirEntry) bool {
	if directoryEntry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	targetInfo, statError := os.Stat(path)
	if statError != nil {
		return false
	}
	return targetInfo.IsDir()
}

// Accepts reports whether a file with the given base name is a scan candidate.
func (discoverer *FilesystemFileDiscoverer) Accepts(fileName string) bool {
	if _, excluded := discoverer.excludedFileNames[fileName]; excluded {
		return false
	}
	for _, extension := range discoverer.extensions {
		if strings.HasSuffix(fileName, extension) {
			return true
		}
	}
	return false
}
