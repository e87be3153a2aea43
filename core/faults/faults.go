package faults

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the failure taxonomy shared by the pipeline.
// Callers classify with errors.Is; the helpers below attach context while
// keeping the sentinel in the chain.
var (
	// ErrNotFound indicates a missing file, column or record.
	ErrNotFound = errors.New("not found")
	// ErrOutOfRange indicates an invalid row index.
	ErrOutOfRange = errors.New("index out of range")
	// ErrValidation indicates a header or shape mismatch.
	ErrValidation = errors.New("validation failed")
	// ErrTransient indicates a retryable I/O condition (busy server, flaky network).
	ErrTransient = errors.New("transient failure")
	// ErrAuth indicates rejected credentials. Never retried.
	ErrAuth = errors.New("authentication failed")
	// ErrUpstreamRejected indicates a well-formed call answered with a
	// nonzero application-level error code. Retryable up to the cap.
	ErrUpstreamRejected = errors.New("upstream rejected request")
)

// NotFound wraps ErrNotFound with a formatted message.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// OutOfRange wraps ErrOutOfRange with a formatted message.
func OutOfRange(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOutOfRange)
}

// Validation wraps ErrValidation with a formatted message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// Transient wraps ErrTransient with a formatted message.
func Transient(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrTransient)
}

// Auth wraps ErrAuth with a formatted message.
func Auth(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrAuth)
}

// UpstreamRejected wraps ErrUpstreamRejected with a formatted message.
func UpstreamRejected(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrUpstreamRejected)
}

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}
