package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystem is the set of file operations metsgen performs.
type FileSystem interface {
	// ReadFile reads the file at path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for path
	Stat(path string) (FileInfo, error)

	// MkdirAll creates path and any missing parents
	MkdirAll(path string) error

	// WriteFile replaces the file at path with data. Readers observe
	// either the previous content or the new content, never a mix.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Getwd returns the working directory used to resolve relative paths
	Getwd() (string, error)
}

// IsDir reports whether path exists and is a directory.
func IsDir(fsys FileSystem, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
