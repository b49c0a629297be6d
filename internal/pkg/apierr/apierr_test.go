package apierr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponseExtractsMessageField(t *testing.T) {
	err := FromResponse(http.StatusBadRequest, []byte(`{"message":"Price must be positive"}`))

	assert.Equal(t, KindAPI, err.Kind)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Price must be positive", err.Message)
}

func TestFromResponseFallsBackToErrorField(t *testing.T) {
	err := FromResponse(http.StatusConflict, []byte(`{"error":"Email already registered"}`))

	assert.Equal(t, "Email already registered", err.Message)
}

func TestFromResponseKeepsNonJSONBody(t *testing.T) {
	body := []byte("<html>Bad Gateway</html>")
	err := FromResponse(http.StatusBadGateway, body)

	assert.Empty(t, err.Message)
	assert.Equal(t, body, err.Body)
	assert.Contains(t, err.Error(), "502")
}

func TestFromTransportClassifiesTimeouts(t *testing.T) {
	timeoutErr := FromTransport(&net.DNSError{Err: "timed out", IsTimeout: true})
	assert.Equal(t, KindTimeout, timeoutErr.Kind)

	deadlineErr := FromTransport(fmt.Errorf("request: %w", context.DeadlineExceeded))
	assert.Equal(t, KindTimeout, deadlineErr.Kind)

	plainErr := FromTransport(errors.New("connection refused"))
	assert.Equal(t, KindTransport, plainErr.Kind)
}

func TestFromTransportPreservesUnderlyingError(t *testing.T) {
	cause := &net.DNSError{Err: "no such host"}
	err := FromTransport(cause)

	var dnsErr *net.DNSError
	require.True(t, errors.As(err, &dnsErr))
	assert.Same(t, cause, dnsErr)
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading products: %w", FromResponse(http.StatusNotFound, nil))

	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))
	assert.False(t, IsTimeout(wrapped))

	apiErr, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindAPI, apiErr.Kind)
}

func TestStatusOfNonAPIError(t *testing.T) {
	assert.Zero(t, StatusOf(errors.New("boom")))
}
