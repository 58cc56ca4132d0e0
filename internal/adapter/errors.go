// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors a [*TransportError] unwraps to, selected by status code.
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrRateLimited      = errors.New("rate limited")
	ErrServer           = errors.New("github server error")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// ErrNotListing is returned by listing calls when the response is not a JSON
// array. Callers treat it as the end of the listing.
var ErrNotListing = errors.New("response is not a listing")

// TransportError is the single error shape for non-2xx GitHub responses.
type TransportError struct {
	// Status is the HTTP status code.
	Status int

	// RetryAfterSeconds is the Retry-After hint in seconds, 0 if absent.
	RetryAfterSeconds int

	// Body is the trimmed response body, or the status text if empty.
	Body string

	kind error
}

// NewTransportError builds the error for a non-2xx response. An empty body is
// replaced by the status text.
func NewTransportError(status, retryAfter int, body string) *TransportError {
	if body == "" {
		body = http.StatusText(status)
	}
	return &TransportError{
		Status:            status,
		RetryAfterSeconds: retryAfter,
		Body:              body,
		kind:              kindForStatus(status),
	}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.Status, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.kind
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusTooManyRequests:
		return ErrRateLimited
	case status >= http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrUnexpectedStatus
	}
}

// AsTransportError reports whether err wraps a [*TransportError] and
// returns it.
func AsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// IsRateLimit reports whether err is a 403 or 429 response. GitHub answers
// secondary rate limits with 403.
func IsRateLimit(err error) bool {
	te, ok := AsTransportError(err)
	if !ok {
		return false
	}
	return te.Status == http.StatusForbidden || te.Status == http.StatusTooManyRequests
}
