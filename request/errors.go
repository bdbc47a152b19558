package request

import (
	"fmt"
	"time"
)

// TimeoutError is returned when the configured timeout elapses before the
// response body completes.
type TimeoutError struct {
	// Timeout is the configured limit that was exceeded
	Timeout time.Duration
}

// Error returns the error message
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %v", e.Timeout)
}

// RedirectError is returned when the server issues more redirects than the
// configured maximum.
type RedirectError struct {
	// Max is the configured redirect limit that was exceeded
	Max int
}

// Error returns the error message
func (e *RedirectError) Error() string {
	return fmt.Sprintf("too many redirects (max %d)", e.Max)
}

// ParseError is returned when the response body cannot be decoded under the
// requested ResponseType.
type ParseError struct {
	Err error
}

// Error returns the error message
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

// Unwrap returns the underlying decode error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// AbortError is returned when the in-flight request is cancelled from
// outside, via the caller's context.
type AbortError struct {
	Err error
}

// Error returns the error message
func (e *AbortError) Error() string {
	return fmt.Sprintf("request aborted: %v", e.Err)
}

// Unwrap returns the underlying cancellation cause
func (e *AbortError) Unwrap() error {
	return e.Err
}

// ProxyError is returned when the isolated proxy transport cannot be set up.
type ProxyError struct {
	Err error
}

// Error returns the error message
func (e *ProxyError) Error() string {
	return fmt.Sprintf("failed to setup proxy: %v", e.Err)
}

// Unwrap returns the underlying setup error
func (e *ProxyError) Unwrap() error {
	return e.Err
}
