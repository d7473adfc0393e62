// Package waddleerr defines the error kinds shared across the router, the
// stream pipeline, translation, and the HTTP boundary. Kinds classify how an
// error propagates: whether it is retried, dead-lettered, or surfaced to the
// caller with a status code.
package waddleerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for propagation policy.
type Kind string

const (
	KindValidation            Kind = "validation"
	KindPolicyDenied          Kind = "policy_denied"
	KindTimeout               Kind = "timeout"
	KindRetryableTransport    Kind = "retryable_transport"
	KindNonRetryableTransport Kind = "non_retryable_transport"
	KindDependencyUnavailable Kind = "dependency_unavailable"
	KindConflict              Kind = "conflict"
	KindRateLimited           Kind = "rate_limited"
	KindNotFound              Kind = "not_found"
	KindInternal              Kind = "internal"
)

// Error carries a kind alongside the underlying error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the formatted message.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an existing error. A nil err yields nil.
func Wrap(kind Kind, message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err. Unclassified errors are Internal.
func KindOf(err error) Kind {
	var we *Error
	if errors.As(err, &we) {
		return we.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retryable reports whether err may be retried. Timeouts, retryable
// transport failures, and unavailable dependencies qualify; everything else
// does not.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindTimeout, KindRetryableTransport, KindDependencyUnavailable:
		return true
	}
	return false
}
