package fs

import "os"

// FS abstracts the filesystem operations the rewriter performs.
type FS interface {
	Open(path string) (*os.File, error)
	Stat(path string) (os.FileInfo, error)
	// CreateExclusive creates a new file that must not already exist.
	CreateExclusive(path string, perm os.FileMode) (*os.File, error)
	Rename(oldPath, newPath string) error
	Remove(path string) error
}
