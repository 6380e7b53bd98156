package accio

import (
	"io/fs"
	"os"
)

// FileSystem is the part of the operating system the search talks to
type FileSystem interface {
	// Lstat returns the status of path without following a trailing symlink
	Lstat(path string) (fs.FileInfo, error)
	// OpenDir opens path for listing
	OpenDir(path string) (DirHandle, error)
}

// DirHandle is an open directory listing.
//
// ReadDir follows (*os.File).ReadDir semantics for n > 0: entries come back
// in directory order and io.EOF marks the end.
type DirHandle interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Close() error
}

type osFileSystem struct{}

func (osFileSystem) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

func (osFileSystem) OpenDir(path string) (DirHandle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return file, nil
}
