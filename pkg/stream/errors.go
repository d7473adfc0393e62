package stream

import "errors"

// nonRetryableError marks a handler failure that must not be retried.
type nonRetryableError struct {
	err error
}

func (e *nonRetryableError) Error() string { return e.err.Error() }

func (e *nonRetryableError) Unwrap() error { return e.err }

// NonRetryable wraps err so the consumer routes the event straight to the
// DLQ instead of republishing it.
func NonRetryable(err error) error {
	if err == nil {
		return nil
	}
	return &nonRetryableError{err: err}
}

// IsRetryable reports whether a handler error permits a republish. Handler
// errors are retryable unless explicitly marked otherwise.
func IsRetryable(err error) bool {
	var nre *nonRetryableError
	return !errors.As(err, &nre)
}
