package collector

import (
	"io/fs"

	"github.com/temirov/audittags/internal/discovery"
	"github.com/temirov/audittags/internal/filesystem"
	"github.com/temirov/audittags/internal/tags"
)

// FileDiscoverer enumerates candidate files beneath a repository root.
type FileDiscoverer interface {
	DiscoverFiles(root string) ([]string, error)
}

// FileSystem provides the file operations required by the scan.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	MkdirAll(path string, permissions fs.FileMode) error
	WriteFileAtomic(path string, data []byte, permissions fs.FileMode) error
}

// ResolveFileSystem returns the provided file system or an OS-backed default.
func ResolveFileSystem(existing FileSystem) FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveFileDiscoverer returns the provided discoverer or a filesystem-backed one honoring settings.
func ResolveFileDiscoverer(existing FileDiscoverer, settings ScanSettings) FileDiscoverer {
	if existing != nil {
		return existing
	}
	return discovery.NewFilesystemFileDiscoverer(settings.Extensions, settings.ExcludedFileNames)
}

// ResolveRegistry returns the provided registry or the built-in tag set.
func ResolveRegistry(existing *tags.Registry) *tags.Registry {
	if existing != nil {
		return existing
	}
	return tags.DefaultRegistry()
}

// ResolveClock returns the provided clock or the system clock.
func ResolveClock(existing Clock) Clock {
	if existing != nil {
		return existing
	}
	return SystemClock{}
}
