package blobstore

import (
	"path/filepath"

	cromcrypto "github.com/sjfleming/cromwell/crypto"
	cromerr "github.com/sjfleming/cromwell/errors"
	cromsys "github.com/sjfleming/cromwell/system"
	cromuuid "github.com/sjfleming/cromwell/uuid"
)

const localBlobstorePathOption = "blobstore_path"

type localBlobstore struct {
	fs      cromsys.FileSystem
	uuidGen cromuuid.Generator
	options map[string]interface{}
}

func NewLocalBlobstore(
	fs cromsys.FileSystem,
	uuidGen cromuuid.Generator,
	options map[string]interface{},
) Blobstore {
	return localBlobstore{
		fs:      fs,
		uuidGen: uuidGen,
		options: options,
	}
}

func (b localBlobstore) Get(blobID string, _ cromcrypto.Digest) (string, error) {
	file, err := b.fs.TempFile("blobstore-local-get")
	if err != nil {
		return "", cromerr.WrapError(err, "Creating temporary file")
	}

	fileName := file.Name()

	err = file.Close()
	if err != nil {
		return "", cromerr.WrapError(err, "Closing temporary file")
	}

	err = b.fs.CopyFile(filepath.Join(b.path(), blobID), fileName)
	if err != nil {
		b.fs.RemoveAll(fileName)
		return "", cromerr.WrapError(err, "Copying file")
	}

	return fileName, nil
}

func (b localBlobstore) CleanUp(fileName string) error {
	return b.fs.RemoveAll(fileName)
}

func (b localBlobstore) Create(fileName string) (string, error) {
	blobID, err := b.uuidGen.Generate()
	if err != nil {
		return "", cromerr.WrapError(err, "Generating blobstore ID")
	}

	err = b.fs.MkdirAll(b.path(), 0750)
	if err != nil {
		return "", cromerr.WrapError(err, "Making blobstore directory")
	}

	err = b.fs.CopyFile(fileName, filepath.Join(b.path(), blobID))
	if err != nil {
		return "", cromerr.WrapError(err, "Copying file to blobstore directory")
	}

	return blobID, nil
}

func (b localBlobstore) Delete(blobID string) error {
	return b.fs.RemoveAll(filepath.Join(b.path(), blobID))
}

func (b localBlobstore) Validate() error {
	if b.path() == "" {
		return cromerr.Error("Missing blobstore_path option")
	}

	return nil
}

func (b localBlobstore) path() string {
	path, found := b.options[localBlobstorePathOption]
	if !found {
		return ""
	}

	pathStr, ok := path.(string)
	if !ok {
		return ""
	}

	return pathStr
}
