package retrystrategy

import (
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/jpillora/backoff"

	cromlog "github.com/sjfleming/cromwell/logger"
)

const backoffRetryStrategyLogTag = "backoffRetryStrategy"

type backoffRetryStrategy struct {
	maxAttempts int
	minDelay    time.Duration
	maxDelay    time.Duration
	retryable   Retryable
	timeService clock.Clock
	logger      cromlog.Logger
}

// NewBackoffRetryStrategy retries with exponentially growing delays
// between minDelay and maxDelay instead of a fixed pause.
func NewBackoffRetryStrategy(
	maxAttempts int,
	minDelay time.Duration,
	maxDelay time.Duration,
	retryable Retryable,
	timeService clock.Clock,
	logger cromlog.Logger,
) RetryStrategy {
	return &backoffRetryStrategy{
		maxAttempts: maxAttempts,
		minDelay:    minDelay,
		maxDelay:    maxDelay,
		retryable:   retryable,
		timeService: timeService,
		logger:      logger,
	}
}

func (s *backoffRetryStrategy) Try() error {
	var err error
	var shouldRetry bool

	b := &backoff.Backoff{
		Min:    s.minDelay,
		Max:    s.maxDelay,
		Factor: 2,
		Jitter: false,
	}

	for i := 0; i < s.maxAttempts; i++ {
		s.logger.Debug(backoffRetryStrategyLogTag, "Making attempt #%d", i)

		shouldRetry, err = s.retryable.Attempt()
		if err == nil {
			return nil
		}

		if !shouldRetry {
			return err
		}

		s.timeService.Sleep(b.Duration())
	}

	return err
}
