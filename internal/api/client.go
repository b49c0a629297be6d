/*
Package api implements the marketplace's HTTP client layer and the
per-resource access façades built on top of it.

The Client is the single point of configuration for outbound calls: it
targets the environment-selected base address, bounds every request
with a fixed timeout, injects the bearer credential uniformly, and
normalizes every failure into an apierr.Error, logging it exactly once
before returning it unchanged. Façades map named operations onto fixed
method/path/payload shapes and add nothing else: no retries, no
caching, no validation beyond what the server enforces.
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mukky254/ukulima-go/internal/app/session"
	"github.com/mukky254/ukulima-go/internal/pkg/apierr"
	"github.com/mukky254/ukulima-go/internal/pkg/logx"
)

// RequestTimeout is the fixed wall-clock bound on every request. A call
// exceeding it fails with a timeout error; no partial response is
// delivered.
const RequestTimeout = 10 * time.Second

// Client issues all requests against the marketplace API.
type Client struct {
	baseURL    string
	creds      session.Store
	httpClient *http.Client
}

// NewClient constructs a Client targeting baseURL, reading the bearer
// credential from creds before every request. Construction has no side
// effects; the auth and error hooks live in the single request path, so
// neither can apply twice to one call.
func NewClient(baseURL string, creds session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health probes the API's connectivity endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health", nil, nil)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// do is the single request path shared by every façade. On success the
// response body is decoded into out (which may be nil). On failure the
// normalized error is logged once and returned unchanged.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	c.prepare(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := apierr.FromTransport(err)
		logx.Error(apiErr, "request failed before a response arrived",
			"method", method,
			"path", path,
		)
		return apiErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := apierr.FromTransport(err)
		logx.Error(apiErr, "response body read failed",
			"method", method,
			"path", path,
		)
		return apiErr
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := apierr.FromResponse(resp.StatusCode, raw)
		logx.Error(apiErr, "server rejected request",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
		)
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// prepare applies the uniform pre-request hook: JSON content type, a
// request id for server-side correlation, and the bearer credential
// when one is stored. No call site attaches auth itself.
func (c *Client) prepare(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	token, err := c.creds.Get()
	if err != nil {
		logx.Warn("credential store unreadable, sending request unauthenticated", "error", err.Error())
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
