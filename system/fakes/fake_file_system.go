package fakes

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	cromsys "github.com/sjfleming/cromwell/system"
)

type FakeFile struct {
	path string
	fs   *FakeFileSystem

	Contents []byte

	readIndex int
	CloseErr  error
}

func NewFakeFile(filePath string, fs *FakeFileSystem) *FakeFile {
	return &FakeFile{path: filePath, fs: fs}
}

func (f *FakeFile) Name() string {
	return f.path
}

func (f *FakeFile) Read(p []byte) (int, error) {
	if f.readIndex >= len(f.Contents) {
		return 0, io.EOF
	}

	n := copy(p, f.Contents[f.readIndex:])
	f.readIndex += n
	return n, nil
}

func (f *FakeFile) Write(p []byte) (int, error) {
	f.Contents = append(f.Contents, p...)
	f.fs.files[f.path] = f
	return len(p), nil
}

func (f *FakeFile) Close() error {
	return f.CloseErr
}

type FakeFileSystem struct {
	files map[string]*FakeFile
	dirs  map[string]struct{}

	tempFileCounter int
	tempDirCounter  int

	MkdirAllError  error
	RemoveAllError error
	OpenFileErr    error
	ReadFileError  error
	WriteFileError error
	CopyFileError  error
	TempFileError  error
	TempDirError   error
	GlobErr        error

	globResults map[string][]string
}

func NewFakeFileSystem() *FakeFileSystem {
	return &FakeFileSystem{
		files:       map[string]*FakeFile{},
		dirs:        map[string]struct{}{},
		globResults: map[string][]string{},
	}
}

func (fs *FakeFileSystem) FileExists(filePath string) bool {
	if _, found := fs.files[filePath]; found {
		return true
	}
	_, found := fs.dirs[filePath]
	return found
}

func (fs *FakeFileSystem) MkdirAll(filePath string, perm os.FileMode) error {
	if fs.MkdirAllError != nil {
		return fs.MkdirAllError
	}

	fs.dirs[filePath] = struct{}{}
	return nil
}

func (fs *FakeFileSystem) RemoveAll(filePath string) error {
	if fs.RemoveAllError != nil {
		return fs.RemoveAllError
	}

	delete(fs.dirs, filePath)
	for p := range fs.files {
		if p == filePath || strings.HasPrefix(p, filePath+"/") {
			delete(fs.files, p)
		}
	}
	return nil
}

func (fs *FakeFileSystem) OpenFile(filePath string, flag int, perm os.FileMode) (cromsys.File, error) {
	if fs.OpenFileErr != nil {
		return nil, fs.OpenFileErr
	}

	file, found := fs.files[filePath]
	if !found {
		file = NewFakeFile(filePath, fs)
		fs.files[filePath] = file
	}

	file.readIndex = 0
	return file, nil
}

func (fs *FakeFileSystem) ReadFile(filePath string) ([]byte, error) {
	if fs.ReadFileError != nil {
		return nil, fs.ReadFileError
	}

	file, found := fs.files[filePath]
	if !found {
		return nil, fmt.Errorf("File not found: '%s'", filePath)
	}

	return file.Contents, nil
}

func (fs *FakeFileSystem) ReadFileString(filePath string) (string, error) {
	content, err := fs.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return string(content), nil
}

func (fs *FakeFileSystem) WriteFile(filePath string, content []byte) error {
	if fs.WriteFileError != nil {
		return fs.WriteFileError
	}

	file := NewFakeFile(filePath, fs)
	file.Contents = content
	fs.files[filePath] = file
	fs.dirs[path.Dir(filePath)] = struct{}{}
	return nil
}

func (fs *FakeFileSystem) WriteFileString(filePath, content string) error {
	return fs.WriteFile(filePath, []byte(content))
}

func (fs *FakeFileSystem) CopyFile(srcPath, dstPath string) error {
	if fs.CopyFileError != nil {
		return fs.CopyFileError
	}

	content, err := fs.ReadFile(srcPath)
	if err != nil {
		return err
	}

	return fs.WriteFile(dstPath, content)
}

func (fs *FakeFileSystem) TempFile(prefix string) (cromsys.File, error) {
	if fs.TempFileError != nil {
		return nil, fs.TempFileError
	}

	fs.tempFileCounter++
	filePath := fmt.Sprintf("/tmp/%s%d", prefix, fs.tempFileCounter)

	file := NewFakeFile(filePath, fs)
	fs.files[filePath] = file
	return file, nil
}

func (fs *FakeFileSystem) TempDir(prefix string) (string, error) {
	if fs.TempDirError != nil {
		return "", fs.TempDirError
	}

	fs.tempDirCounter++
	dirPath := fmt.Sprintf("/tmp/%s%d", prefix, fs.tempDirCounter)

	fs.dirs[dirPath] = struct{}{}
	return dirPath, nil
}

func (fs *FakeFileSystem) SetGlob(pattern string, results []string) {
	fs.globResults[pattern] = results
}

func (fs *FakeFileSystem) Glob(pattern string) ([]string, error) {
	if fs.GlobErr != nil {
		return nil, fs.GlobErr
	}

	if results, found := fs.globResults[pattern]; found {
		return results, nil
	}

	if _, found := fs.files[pattern]; found {
		return []string{pattern}, nil
	}

	return nil, nil
}
