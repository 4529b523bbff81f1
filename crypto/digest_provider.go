package crypto

import (
	cromerr "github.com/sjfleming/cromwell/errors"
	cromsys "github.com/sjfleming/cromwell/system"
)

type DigestProvider interface {
	CreateFromFile(path string, kind HashKind) (Digest, error)
}

type digestProviderImpl struct {
	fs cromsys.FileSystem
}

func NewDigestProvider(fs cromsys.FileSystem) DigestProvider {
	return digestProviderImpl{
		fs: fs,
	}
}

func (f digestProviderImpl) CreateFromFile(filePath string, kind HashKind) (Digest, error) {
	// the ETag chunking rule needs the whole content, so materialize the
	// file rather than streaming it through an incremental hash.
	content, err := f.fs.ReadFile(filePath)
	if err != nil {
		return Digest{}, cromerr.WrapError(err, "Reading file for digest calculation")
	}

	return NewDigest(kind, Compute(kind, content)), nil
}
