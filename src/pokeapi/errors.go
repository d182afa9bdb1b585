package pokeapi

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when the API answers 404 for a resource.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URL)
}

// NetworkUnavailableError is returned when no response could be obtained at
// all: DNS failure, refused connection or a transport level timeout.
type NetworkUnavailableError struct {
	URL   string
	Cause error
}

func (e *NetworkUnavailableError) Error() string {
	return fmt.Sprintf("network unavailable fetching %s: %v", e.URL, e.Cause)
}

func (e *NetworkUnavailableError) Unwrap() error {
	return e.Cause
}

// UpstreamError is any other non-success HTTP status.
type UpstreamError struct {
	URL        string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.StatusCode, e.URL)
}

// MalformedPayloadError means the API answered 2xx but the body could not be
// decoded or does not have the expected shape.
type MalformedPayloadError struct {
	URL   string
	Cause error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed payload from %s: %v", e.URL, e.Cause)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Cause
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsNetworkUnavailable(err error) bool {
	var target *NetworkUnavailableError
	return errors.As(err, &target)
}

// IsUpstream reports whether err is an UpstreamError and returns its status.
func IsUpstream(err error) (int, bool) {
	var target *UpstreamError
	if errors.As(err, &target) {
		return target.StatusCode, true
	}
	return 0, false
}

func IsMalformed(err error) bool {
	var target *MalformedPayloadError
	return errors.As(err, &target)
}
