package blobstore

import (
	cromcrypto "github.com/sjfleming/cromwell/crypto"
)

type Blobstore interface {
	// Get returns a local copy of the blob. A non-zero fingerprint makes
	// decorators verify the copy before handing it out.
	Get(blobID string, fingerprint cromcrypto.Digest) (fileName string, err error)

	CleanUp(fileName string) error

	Create(fileName string) (blobID string, err error)

	Delete(blobID string) error

	Validate() error
}
