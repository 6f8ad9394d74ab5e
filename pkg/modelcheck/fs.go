package modelcheck

import (
	"io"
	"os"
)

// FileSystem abstracts filesystem access for testability.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	Open(path string) (io.ReadCloser, error)
}

// RealFileSystem uses the real filesystem.
type RealFileSystem struct{}

func (r *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (r *RealFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
