package trendyol

import (
	"errors"
	"fmt"
)

// ErrServiceClosed indicates the service has been closed.
var ErrServiceClosed = errors.New("trendyol service closed")

// NetworkError reports a transport-level failure: DNS, connect, or timeout.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError reports a non-200 response from the endpoint.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// ParseError reports a response body that did not match the expected
// color-variants payload or product-page shape.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse variants: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse variants: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
