// Package errors defines the error taxonomy for the recommendation pipeline.
// Generation-stage failures are fatal to a run; catalog-stage failures are
// absorbed by the resolver and never reach these types.
package errors

import (
	"errors"
	"fmt"
)

// ErrNoSuggestions is returned when the generation text parsed cleanly but
// yielded zero usable titles, leaving nothing to enrich.
var ErrNoSuggestions = errors.New("generation response contained no usable titles")

// UpstreamError represents a failed call to the generation service: the
// transport failed or the service returned a non-success status.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("generation service unreachable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamStatusError creates an UpstreamError for a non-success HTTP status.
func NewUpstreamStatusError(statusCode int) *UpstreamError {
	return &UpstreamError{StatusCode: statusCode}
}

// NewUpstreamTransportError creates an UpstreamError for a failed transport call.
func NewUpstreamTransportError(err error) *UpstreamError {
	return &UpstreamError{Err: err}
}

// IsUpstreamError reports whether err is an UpstreamError (even when wrapped).
func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// MalformedResponseError represents a success response from the generation
// service whose body did not match the documented shape.
type MalformedResponseError struct {
	Missing string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unexpected generation response shape: missing %s", e.Missing)
}

// NewMalformedResponseError creates a MalformedResponseError naming the
// structural path that was absent.
func NewMalformedResponseError(missing string) *MalformedResponseError {
	return &MalformedResponseError{Missing: missing}
}

// IsMalformedResponseError reports whether err is a MalformedResponseError (even when wrapped).
func IsMalformedResponseError(err error) bool {
	var malformedErr *MalformedResponseError
	return errors.As(err, &malformedErr)
}
