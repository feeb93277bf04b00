// Package net provides the one-shot HTTP transport used to reach the daraja
// API.
//
// The Client wraps net/http with a configurable timeout and normalizes every
// received response into a darajaconnect.Response, whether the provider
// answered with JSON, plain text, or an empty body. There are no retries and
// no backoff: each call performs exactly one round trip, and only a request
// that produced no response at all surfaces as a Go error.
//
// Example usage:
//
//	client := net.NewClient(
//	    net.WithTimeout(20 * time.Second),
//	)
//	resp, err := client.Get(ctx, url, headers)
package net

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	darajaconnect "github.com/daraja-connect/sdk-go"
	"github.com/daraja-connect/sdk-go/errors"
)

// Default configuration values
const (
	defaultTimeout = 30 * time.Second
)

// Client is the HTTP transport for daraja requests.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout (default: 30s).
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client. Callers needing
// proxies, custom TLS, or their own timeout policy configure it here.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing (default: no-op).
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new transport with the given options.
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get performs an HTTP GET request and normalizes whatever comes back.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*darajaconnect.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewCoreError(errors.NETWORK_ERROR, "failed to create GET request", err)
	}
	applyHeaders(req, headers)
	return c.do(req)
}

// Post marshals payload as JSON and performs an HTTP POST request.
func (c *Client) Post(ctx context.Context, url string, headers map[string]string, payload any) (*darajaconnect.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.NewCoreError(errors.NETWORK_ERROR, "failed to marshal request payload", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewCoreError(errors.NETWORK_ERROR, "failed to create POST request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	applyHeaders(req, headers)
	return c.do(req)
}

// applyHeaders copies headers onto the request. A Host entry is applied as
// the request host rather than a plain header field, which is how net/http
// sends an explicit Host value.
func applyHeaders(req *http.Request, headers map[string]string) {
	for k, v := range headers {
		if http.CanonicalHeaderKey(k) == "Host" {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}
}

// do executes the request once and normalizes the response.
func (c *Client) do(req *http.Request) (*darajaconnect.Response, error) {
	c.logger.Debug("dispatching request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewCoreError(
			errors.NETWORK_ERROR,
			fmt.Sprintf("%s %s failed", req.Method, req.URL),
			err,
		)
	}
	defer resp.Body.Close()

	normalized, err := normalize(resp, req.Method)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("received response", zap.Int("status", normalized.Status))
	return normalized, nil
}

// normalize converts a received HTTP response into the shared Response
// shape: decoded JSON when the body is a JSON object, the raw text when it
// is not, and a synthesized error entry when the body is empty, so callers
// always have a value to branch on. GET is only used for the token exchange,
// where an empty body means the provider rejected the Basic credentials.
func normalize(resp *http.Response, method string) (*darajaconnect.Response, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewCoreError(errors.NETWORK_ERROR, "failed to read response body", err)
	}

	var fields map[string]any
	decodeErr := json.Unmarshal(body, &fields)
	if decodeErr == nil {
		return &darajaconnect.Response{Status: resp.StatusCode, Fields: fields}, nil
	}

	if len(body) > 0 {
		return &darajaconnect.Response{Status: resp.StatusCode, Text: string(body)}, nil
	}

	message := decodeErr.Error()
	if method == http.MethodGet {
		message = "Wrong credentials"
	}
	return &darajaconnect.Response{
		Status: resp.StatusCode,
		Fields: map[string]any{"error": message, "status": resp.StatusCode},
	}, nil
}
