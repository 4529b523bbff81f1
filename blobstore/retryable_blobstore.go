package blobstore

import (
	"time"

	"code.cloudfoundry.org/clock"

	cromcrypto "github.com/sjfleming/cromwell/crypto"
	cromerr "github.com/sjfleming/cromwell/errors"
	cromlog "github.com/sjfleming/cromwell/logger"
	cromretry "github.com/sjfleming/cromwell/retrystrategy"
)

const retryableBlobstoreLogTag = "retryableBlobstore"

type retryableBlobstore struct {
	blobstore   Blobstore
	maxTries    int
	retryDelay  time.Duration
	timeService clock.Clock
	logger      cromlog.Logger
}

func NewRetryableBlobstore(
	blobstore Blobstore,
	maxTries int,
	retryDelay time.Duration,
	timeService clock.Clock,
	logger cromlog.Logger,
) Blobstore {
	return retryableBlobstore{
		blobstore:   blobstore,
		maxTries:    maxTries,
		retryDelay:  retryDelay,
		timeService: timeService,
		logger:      logger,
	}
}

func (b retryableBlobstore) Get(blobID string, fingerprint cromcrypto.Digest) (string, error) {
	var fileName string

	retryable := cromretry.NewRetryable(func() (bool, error) {
		var err error
		fileName, err = b.blobstore.Get(blobID, fingerprint)
		if err != nil {
			b.logger.Debug(retryableBlobstoreLogTag, "Failed to get blob '%s': %s", blobID, err.Error())
			return true, err
		}
		return false, nil
	})

	strategy := cromretry.NewAttemptRetryStrategy(b.maxTries, b.retryDelay, retryable, b.timeService, b.logger)

	err := strategy.Try()
	if err != nil {
		return "", cromerr.WrapErrorf(err, "Getting blob '%s'", blobID)
	}

	return fileName, nil
}

func (b retryableBlobstore) CleanUp(fileName string) error {
	return b.blobstore.CleanUp(fileName)
}

func (b retryableBlobstore) Create(fileName string) (string, error) {
	var blobID string

	retryable := cromretry.NewRetryable(func() (bool, error) {
		var err error
		blobID, err = b.blobstore.Create(fileName)
		if err != nil {
			b.logger.Debug(retryableBlobstoreLogTag, "Failed to create blob: %s", err.Error())
			return true, err
		}
		return false, nil
	})

	strategy := cromretry.NewAttemptRetryStrategy(b.maxTries, b.retryDelay, retryable, b.timeService, b.logger)

	err := strategy.Try()
	if err != nil {
		return "", cromerr.WrapError(err, "Creating blob")
	}

	return blobID, nil
}

func (b retryableBlobstore) Delete(blobID string) error {
	return b.blobstore.Delete(blobID)
}

func (b retryableBlobstore) Validate() error {
	if b.maxTries < 1 {
		return cromerr.Error("Max tries must be > 0")
	}

	return b.blobstore.Validate()
}
