package errs

import (
	"errors"
	"fmt"
	"strings"
)

type RetryableError struct {
	Err error
}

func (t RetryableError) Error() string {
	return fmt.Sprintf("retryable error: %v", t.Err)
}

func (t RetryableError) Unwrap() error {
	return t.Err
}

type ValidationError struct {
	Err error
}

func (t ValidationError) Error() string {
	return fmt.Sprintf("validation error: %v", t.Err)
}

func (t ValidationError) Unwrap() error {
	return t.Err
}

// IsRetryable reports whether a provider error is worth another attempt.
// Providers surface rate limits and transient failures in the message,
// so the message is sniffed alongside the typed check.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var re RetryableError
	if errors.As(err, &re) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "500") ||
		strings.Contains(msg, "internal server error") ||
		strings.Contains(msg, "overloaded")
}
