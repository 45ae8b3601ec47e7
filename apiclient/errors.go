// Package apiclient talks to the campus events backend API.
// File: apiclient/errors.go
package apiclient

import (
	"errors"
	"fmt"
)

// Sentinel errors for the outcomes callers branch on. Everything returned by
// this package wraps one of these (or ErrNetwork for transport failures), so
// callers use errors.Is rather than inspecting status codes.
var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("invalid or conflicting input")
	ErrForbidden          = errors.New("not allowed")
	ErrNotFound           = errors.New("not found")
	ErrNetwork            = errors.New("backend unreachable")
)

// APIError carries the backend's HTTP status and human-readable message
// alongside the sentinel it maps to.
type APIError struct {
	Status  int
	Message string
	Kind    error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Unwrap lets errors.Is match the sentinel this error maps to.
func (e *APIError) Unwrap() error {
	return e.Kind
}

// UserMessage returns the backend's message if one was sent, otherwise the
// given fallback. Controllers use this to render form errors.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// statusError maps an HTTP status to the matching sentinel.
func statusError(status int, message string) *APIError {
	kind := error(nil)
	switch {
	case status == 401:
		kind = ErrUnauthenticated
	case status == 403:
		kind = ErrForbidden
	case status == 404:
		kind = ErrNotFound
	case status == 400 || status == 409 || status == 422:
		kind = ErrValidation
	default:
		kind = fmt.Errorf("unexpected status %d", status)
	}
	return &APIError{Status: status, Message: message, Kind: kind}
}
