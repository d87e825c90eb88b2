package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"userdir/internal/logging"
)

// ErrDecode is returned when a response body is not valid JSON for the target.
var ErrDecode = errors.New("decode response body")

// HTTPError represents a non-2xx response with the body captured for debugging.
type HTTPError struct {
	StatusCode int
	Body       []byte
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}

// TransportError wraps failures that happened before any response arrived.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// maxErrorBody bounds how much of an error body ends up in HTTPError.Message.
const maxErrorBody = 512

type Client struct {
	baseURL *url.URL
	client  *http.Client
	headers http.Header
	logger  logging.Logger
}

type Option func(*Client)

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithTransport replaces the base transport; it is still wrapped by otelhttp.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.client.Transport = otelhttp.NewTransport(rt)
	}
}

// New creates an instrumented HTTP client for talking to an external service.
// baseURL should be like "https://reqres.in" (no trailing slash).
// A zero timeout means requests are bounded only by their context.
func New(baseURL string, timeout time.Duration, logger logging.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse baseURL: %q is not absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		headers: make(http.Header),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// buildURL joins the base URL with a relative path and optional query parameters.
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse path: %w", err)
	}

	u := c.baseURL.ResolveReference(rel)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// GetJSON performs a GET and decodes the JSON response into out.
// out should be a pointer to a struct/slice/etc.
// Non-2xx responses return *HTTPError, network failures *TransportError,
// and undecodable bodies wrap ErrDecode.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	urlStr, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("external http error",
			"status", resp.StatusCode,
			"path", path,
		)
		msg := body
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       body,
			Message:    string(msg),
		}
	}

	if len(body) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}
