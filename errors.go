package sentibot

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyResponse is returned when a provider answers without any candidate text.
var ErrEmptyResponse = errors.New("provider returned no choices")

// ErrorCategory classifies errors by how they should be handled.
type ErrorCategory string

const (
	// ErrorTransient marks a temporary failure worth retrying: rate limits,
	// overloaded servers, dropped connections.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent marks a failure retries cannot fix, such as a rejected API key.
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput marks a request the provider refused as malformed.
	ErrorUserInput ErrorCategory = "user_input"
)

// CategorizedError is an error that knows how it should be handled.
type CategorizedError interface {
	error
	Category() ErrorCategory
	StatusCode() int           // HTTP status code if applicable, 0 otherwise
	RetryAfter() time.Duration // suggested retry delay from server, 0 if not available
}

// Error is a provider error with the metadata needed for retry decisions.
type Error struct {
	Provider   Provider
	Cat        ErrorCategory
	Code       int           // HTTP status code, 0 if not applicable
	RetryDelay time.Duration // from Retry-After header, 0 if not available
	Cause      error
}

// Error returns the error message.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s request failed", e.Provider)
	if e.Code > 0 {
		msg = fmt.Sprintf("%s request failed with status %d", e.Provider, e.Code)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Cause }

// Category returns the error category.
func (e *Error) Category() ErrorCategory { return e.Cat }

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *Error) StatusCode() int { return e.Code }

// RetryAfter returns the suggested retry delay, or 0 if not available.
func (e *Error) RetryAfter() time.Duration { return e.RetryDelay }

// NewError builds a categorized error for the given provider and HTTP status.
func NewError(provider Provider, code int, retryAfter time.Duration, cause error) *Error {
	return &Error{
		Provider:   provider,
		Cat:        CategorizeStatusCode(code),
		Code:       code,
		RetryDelay: retryAfter,
		Cause:      cause,
	}
}

// CategorizeStatusCode determines the error category from an HTTP status code.
func CategorizeStatusCode(code int) ErrorCategory {
	switch {
	case code == 429:
		return ErrorTransient // rate limited
	case code >= 500 && code < 600:
		return ErrorTransient
	case code == 401 || code == 403:
		return ErrorPermanent
	case code == 400 || code == 404 || code == 422:
		return ErrorUserInput
	default:
		return ErrorPermanent
	}
}

// CategoryOf returns the category of the first categorized error in err's
// chain. The second result is false when err carries no category.
func CategoryOf(err error) (ErrorCategory, bool) {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category(), true
	}
	return "", false
}

// StatusCodeOf returns the HTTP status code from a categorized error, or 0.
func StatusCodeOf(err error) int {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.StatusCode()
	}
	return 0
}

// RetryAfterOf returns the retry delay from a categorized error, or 0.
func RetryAfterOf(err error) time.Duration {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.RetryAfter()
	}
	return 0
}
