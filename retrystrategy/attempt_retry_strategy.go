package retrystrategy

import (
	"time"

	"code.cloudfoundry.org/clock"

	cromlog "github.com/sjfleming/cromwell/logger"
)

const attemptRetryStrategyLogTag = "attemptRetryStrategy"

type attemptRetryStrategy struct {
	maxAttempts int
	delay       time.Duration
	retryable   Retryable
	timeService clock.Clock
	logger      cromlog.Logger
}

func NewAttemptRetryStrategy(
	maxAttempts int,
	delay time.Duration,
	retryable Retryable,
	timeService clock.Clock,
	logger cromlog.Logger,
) RetryStrategy {
	return &attemptRetryStrategy{
		maxAttempts: maxAttempts,
		delay:       delay,
		retryable:   retryable,
		timeService: timeService,
		logger:      logger,
	}
}

func (s *attemptRetryStrategy) Try() error {
	var err error
	var shouldRetry bool

	for i := 0; i < s.maxAttempts; i++ {
		s.logger.Debug(attemptRetryStrategyLogTag, "Making attempt #%d", i)

		shouldRetry, err = s.retryable.Attempt()
		if err == nil {
			return nil
		}

		if !shouldRetry {
			return err
		}

		s.timeService.Sleep(s.delay)
	}

	return err
}
