// Package apiclient provides the REST client used by ringoctl to talk to the
// services in its registry.
//
// Calls return the raw status code and body. Only transport failures are
// reported as errors; HTTP-level failures are left to the caller to render.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marmos91/ringoctl/internal/bytesize"
	"github.com/marmos91/ringoctl/internal/logger"
)

// DefaultUserAgent is sent when no other User-Agent is configured.
const DefaultUserAgent = "ringoctl"

// Client is a REST client bound to one service base URL.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	userAgent   string
	maxBodySize bytesize.ByteSize
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the overall request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithTransport replaces the HTTP transport, typically with an instrumented
// round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		if rt != nil {
			c.httpClient.Transport = rt
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxResponseSize fails requests whose response body is larger than
// size. Zero means no limit.
func WithMaxResponseSize(size bytesize.ByteSize) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// New creates a new API client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Response is the outcome of a request that reached the server.
type Response struct {
	StatusCode int
	Body       []byte
	RequestID  string
}

// Success reports whether the status code is below 300.
func (r *Response) Success() bool {
	return r.StatusCode < 300
}

// do performs an HTTP request and returns the raw response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) (*Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	logger.DebugCtx(ctx, "Sending request",
		logger.Method(method), logger.URL(target), logger.RequestID(requestID), logger.Bytes(len(body)))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WarnCtx(ctx, "Request failed",
			logger.Method(method), logger.URL(target), logger.RequestID(requestID), logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var respReader io.Reader = resp.Body
	if c.maxBodySize > 0 {
		respReader = io.LimitReader(resp.Body, c.maxBodySize.Int64()+1)
	}
	respBody, err := io.ReadAll(respReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if c.maxBodySize > 0 && int64(len(respBody)) > c.maxBodySize.Int64() {
		return nil, fmt.Errorf("%w: limit is %s", ErrResponseTooLarge, c.maxBodySize)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		RequestID:  requestID,
	}

	logger.DebugCtx(ctx, "Received response",
		logger.Method(method), logger.URL(target), logger.Status(resp.StatusCode),
		logger.RequestID(requestID), logger.DurationMs(time.Since(start)))

	if apiErr := out.APIError(); apiErr != nil {
		msg := "API error"
		switch {
		case apiErr.IsNotFound():
			msg = "Resource not found"
		case apiErr.IsValidationError():
			msg = "Request rejected by validation"
		}
		logger.DebugCtx(ctx, msg,
			logger.Status(apiErr.StatusCode), logger.ErrorCode(apiErr.Code), logger.Err(apiErr))
	}

	return out, nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// put performs a PUT request.
func (c *Client) put(ctx context.Context, path string, body []byte) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
