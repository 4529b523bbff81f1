package blobstore

import (
	"fmt"

	cromcrypto "github.com/sjfleming/cromwell/crypto"
	cromerr "github.com/sjfleming/cromwell/errors"
)

type digestVerifiableBlobstore struct {
	blobstore      Blobstore
	digestProvider cromcrypto.DigestProvider
}

// NewDigestVerifiableBlobstore decorates a blobstore so that fetched
// blobs are re-hashed in the fingerprint's convention and compared
// before being handed out.
func NewDigestVerifiableBlobstore(blobstore Blobstore, digestProvider cromcrypto.DigestProvider) Blobstore {
	return digestVerifiableBlobstore{
		blobstore:      blobstore,
		digestProvider: digestProvider,
	}
}

func (b digestVerifiableBlobstore) Get(blobID string, fingerprint cromcrypto.Digest) (string, error) {
	fileName, err := b.blobstore.Get(blobID, fingerprint)
	if err != nil {
		return "", cromerr.WrapError(err, "Getting blob from inner blobstore")
	}

	if fingerprint.IsZero() {
		return fileName, nil
	}

	actualDigest, err := b.digestProvider.CreateFromFile(fileName, fingerprint.Kind())
	if err != nil {
		return "", err
	}

	err = fingerprint.Verify(actualDigest)
	if err != nil {
		return "", cromerr.WrapError(err, fmt.Sprintf(`Checking downloaded blob "%s"`, blobID))
	}

	return fileName, nil
}

func (b digestVerifiableBlobstore) CleanUp(fileName string) error {
	return b.blobstore.CleanUp(fileName)
}

func (b digestVerifiableBlobstore) Create(fileName string) (string, error) {
	blobID, err := b.blobstore.Create(fileName)
	return blobID, err
}

func (b digestVerifiableBlobstore) Delete(blobID string) error {
	return b.blobstore.Delete(blobID)
}

func (b digestVerifiableBlobstore) Validate() error {
	return b.blobstore.Validate()
}
