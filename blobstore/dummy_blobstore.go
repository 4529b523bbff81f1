package blobstore

import (
	cromcrypto "github.com/sjfleming/cromwell/crypto"
	cromerr "github.com/sjfleming/cromwell/errors"
)

type dummyBlobstore struct{}

func newDummyBlobstore() Blobstore {
	return dummyBlobstore{}
}

func (b dummyBlobstore) Get(blobID string, _ cromcrypto.Digest) (string, error) {
	return "", cromerr.Errorf("Dummy blobstore can not get blob '%s'", blobID)
}

func (b dummyBlobstore) CleanUp(string) error {
	return nil
}

func (b dummyBlobstore) Create(string) (string, error) {
	return "", cromerr.Error("Dummy blobstore can not create blobs")
}

func (b dummyBlobstore) Delete(string) error {
	return nil
}

func (b dummyBlobstore) Validate() error {
	return nil
}
