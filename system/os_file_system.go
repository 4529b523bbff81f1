package system

import (
	"io"
	"os"

	"github.com/bmatcuk/doublestar"
	"github.com/charlievieth/fs"

	cromerr "github.com/sjfleming/cromwell/errors"
)

type osFileSystem struct{}

func NewOsFileSystem() FileSystem {
	return &osFileSystem{}
}

func (f *osFileSystem) FileExists(path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

func (f *osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return fs.MkdirAll(path, perm)
}

func (f *osFileSystem) RemoveAll(path string) error {
	return fs.RemoveAll(path)
}

func (f *osFileSystem) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	return fs.OpenFile(path, flag, perm)
}

func (f *osFileSystem) ReadFile(path string) ([]byte, error) {
	file, err := fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, cromerr.WrapErrorf(err, "Opening file '%s'", path)
	}

	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, cromerr.WrapErrorf(err, "Reading file '%s'", path)
	}

	return content, nil
}

func (f *osFileSystem) ReadFileString(path string) (string, error) {
	content, err := f.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(content), nil
}

func (f *osFileSystem) WriteFile(path string, content []byte) error {
	file, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return cromerr.WrapErrorf(err, "Creating file '%s'", path)
	}

	defer file.Close()

	_, err = file.Write(content)
	if err != nil {
		return cromerr.WrapErrorf(err, "Writing file '%s'", path)
	}

	return nil
}

func (f *osFileSystem) WriteFileString(path, content string) error {
	return f.WriteFile(path, []byte(content))
}

func (f *osFileSystem) CopyFile(srcPath, dstPath string) error {
	src, err := fs.OpenFile(srcPath, os.O_RDONLY, 0)
	if err != nil {
		return cromerr.WrapErrorf(err, "Opening source file '%s'", srcPath)
	}

	defer src.Close()

	dst, err := fs.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return cromerr.WrapErrorf(err, "Creating destination file '%s'", dstPath)
	}

	defer dst.Close()

	_, err = io.Copy(dst, src)
	if err != nil {
		return cromerr.WrapError(err, "Copying file")
	}

	return nil
}

func (f *osFileSystem) TempFile(prefix string) (File, error) {
	file, err := os.CreateTemp("", prefix)
	if err != nil {
		return nil, cromerr.WrapError(err, "Creating temporary file")
	}

	return file, nil
}

func (f *osFileSystem) TempDir(prefix string) (string, error) {
	dir, err := os.MkdirTemp("", prefix)
	if err != nil {
		return "", cromerr.WrapError(err, "Creating temporary directory")
	}

	return dir, nil
}

func (f *osFileSystem) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(pattern)
	if err != nil {
		return nil, cromerr.WrapErrorf(err, "Globbing '%s'", pattern)
	}

	return matches, nil
}
