package system

import (
	"io"
	"os"
)

type File interface {
	io.ReadWriteCloser
	Name() string
}

type FileSystem interface {
	FileExists(path string) bool
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error

	OpenFile(path string, flag int, perm os.FileMode) (File, error)
	ReadFile(path string) ([]byte, error)
	ReadFileString(path string) (string, error)
	WriteFile(path string, content []byte) error
	WriteFileString(path, content string) error
	CopyFile(srcPath, dstPath string) error

	TempFile(prefix string) (File, error)
	TempDir(prefix string) (string, error)

	// Glob supports doublestar patterns, e.g. "outputs/**/*.bam".
	Glob(pattern string) ([]string, error)
}
