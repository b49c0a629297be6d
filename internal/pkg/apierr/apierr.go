/*
Package apierr defines the error contract between the HTTP client layer
and its callers.

Every failed call to the marketplace API surfaces as an *Error carrying
a kind (transport, timeout, or application), the HTTP status and server
message when a response was received, and the underlying cause. The
client layer never reclassifies or swallows these; callers decide what
to do based on the kind and status.
*/
package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
)

// Kind classifies a failed API call.
type Kind string

const (
	// KindTransport marks failures before any HTTP response arrived:
	// network unreachable, DNS failure, connection reset.
	KindTransport Kind = "transport"

	// KindTimeout marks requests that exceeded the fixed wall-clock bound.
	KindTimeout Kind = "timeout"

	// KindAPI marks a non-2xx response from the server.
	KindAPI Kind = "api"
)

// Error is the normalized failure returned for every unsuccessful API call.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Status is the HTTP status code. Zero unless Kind is KindAPI.
	Status int

	// Message is the human-readable server message when the error body
	// carried one, otherwise the raw transport message.
	Message string

	// Body is the raw response body for application errors, preserved
	// verbatim for callers that need the full server payload.
	Body []byte

	// Err is the underlying transport error, nil for application errors.
	Err error
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindAPI:
		if e.Message != "" {
			return fmt.Sprintf("api error (HTTP %d): %s", e.Status, e.Message)
		}
		return fmt.Sprintf("api error (HTTP %d)", e.Status)
	case KindTimeout:
		return fmt.Sprintf("request timed out: %s", e.Message)
	default:
		return fmt.Sprintf("transport error: %s", e.Message)
	}
}

// Unwrap exposes the underlying transport error to errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// serverEnvelope mirrors the error bodies the marketplace backend
// produces. Some routes answer {"message": ...}, others {"error": ...}.
type serverEnvelope struct {
	Message string `json:"message"`
	ErrText string `json:"error"`
}

// FromResponse builds an application error from a non-2xx response,
// extracting the server's human-readable message when the body is a
// JSON object carrying one. The raw body is kept either way.
func FromResponse(status int, body []byte) *Error {
	e := &Error{
		Kind:   KindAPI,
		Status: status,
		Body:   body,
	}

	var env serverEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Message != "" {
			e.Message = env.Message
		} else {
			e.Message = env.ErrText
		}
	}

	return e
}

// FromTransport builds an error for a request that produced no HTTP
// response. Timeouts are distinguished from other transport failures.
func FromTransport(err error) *Error {
	kind := KindTransport

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		kind = KindTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}

	return &Error{
		Kind:    kind,
		Message: err.Error(),
		Err:     err,
	}
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsTimeout reports whether the error chain contains a timeout failure.
func IsTimeout(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindTimeout
}

// StatusOf returns the HTTP status of an application error, or zero
// when the error is not an application error.
func StatusOf(err error) int {
	if e, ok := AsError(err); ok {
		return e.Status
	}
	return 0
}
