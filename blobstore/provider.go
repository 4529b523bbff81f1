package blobstore

import (
	"time"

	"code.cloudfoundry.org/clock"

	cromcrypto "github.com/sjfleming/cromwell/crypto"
	cromerr "github.com/sjfleming/cromwell/errors"
	cromlog "github.com/sjfleming/cromwell/logger"
	cromsys "github.com/sjfleming/cromwell/system"
	cromuuid "github.com/sjfleming/cromwell/uuid"
)

const (
	BlobstoreTypeDummy = "dummy"
	BlobstoreTypeLocal = "local"
)

type Provider struct {
	fs             cromsys.FileSystem
	uuidGen        cromuuid.Generator
	digestProvider cromcrypto.DigestProvider
	timeService    clock.Clock
	logger         cromlog.Logger
}

func NewProvider(
	fs cromsys.FileSystem,
	logger cromlog.Logger,
) Provider {
	return Provider{
		fs:             fs,
		uuidGen:        cromuuid.NewGenerator(),
		digestProvider: cromcrypto.NewDigestProvider(fs),
		timeService:    clock.NewClock(),
		logger:         logger,
	}
}

func (p Provider) Get(storeType string, options map[string]interface{}) (blobstore Blobstore, err error) {
	switch storeType {
	case BlobstoreTypeDummy:
		blobstore = newDummyBlobstore()

	case BlobstoreTypeLocal:
		blobstore = NewLocalBlobstore(
			p.fs,
			p.uuidGen,
			options,
		)

	default:
		return nil, cromerr.Errorf("Unknown blobstore type '%s'", storeType)
	}

	blobstore = NewDigestVerifiableBlobstore(blobstore, p.digestProvider)

	blobstore = NewRetryableBlobstore(blobstore, 3, 500*time.Millisecond, p.timeService, p.logger)

	err = blobstore.Validate()
	if err != nil {
		err = cromerr.WrapError(err, "Validating blobstore")
	}
	return
}
