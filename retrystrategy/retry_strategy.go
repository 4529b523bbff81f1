package retrystrategy

type RetryStrategy interface {
	Try() error
}

// Retryable is a single attempt of an operation. Attempt reports whether
// the strategy should try again after a failure.
type Retryable interface {
	Attempt() (shouldRetry bool, err error)
}

type retryable struct {
	attemptFunc func() (bool, error)
}

func NewRetryable(attemptFunc func() (bool, error)) Retryable {
	return &retryable{attemptFunc: attemptFunc}
}

func (r *retryable) Attempt() (bool, error) {
	return r.attemptFunc()
}
