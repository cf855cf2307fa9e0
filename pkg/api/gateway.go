package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/storygraph/storygraph/pkg/errors"
	"github.com/storygraph/storygraph/pkg/observability"
)

const (
	defaultTimeout    = 5 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
)

// Gateway executes [Request] values against a storyteller backend. It owns
// the base URL, the default bearer token, and retry policy. A Gateway is safe
// for concurrent use.
type Gateway struct {
	base       string
	host       string
	token      string
	http       *http.Client
	attempts   int
	retryDelay time.Duration
}

// Option configures a [Gateway].
type Option func(*Gateway)

// WithToken sets the default bearer token attached to every request. A
// per-request token set via [Request.AccessToken] takes precedence.
func WithToken(token string) Option {
	return func(g *Gateway) { g.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.http = c }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.http.Timeout = d }
}

// WithRetry enables retries of transient failures (network errors, 5xx).
// By default a request is attempted exactly once; retrying is the caller's
// decision since the cost of a redundant fetch fans out across the whole
// traversal.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(g *Gateway) {
		g.attempts = attempts
		g.retryDelay = delay
	}
}

// NewGateway creates a Gateway for the backend at baseURL.
func NewGateway(baseURL string, opts ...Option) (*Gateway, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New(errors.CodeBadRequest, "invalid base URL %q", baseURL)
	}
	g := &Gateway{
		base:       strings.TrimRight(baseURL, "/"),
		host:       u.Host,
		http:       &http.Client{Timeout: defaultTimeout},
		attempts:   1,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// BaseURL returns the configured base URL without a trailing slash.
func (g *Gateway) BaseURL() string { return g.base }

// WithDefaultToken returns a copy of the gateway whose default bearer token
// is replaced. The underlying HTTP client is shared. Useful for serving
// requests on behalf of different callers.
func (g *Gateway) WithDefaultToken(token string) *Gateway {
	g2 := *g
	g2.token = token
	return &g2
}

// Do executes req and JSON-decodes the response body into v. Pass nil to
// discard the body. Each request is attempted once unless retries were
// enabled with [WithRetry].
func (g *Gateway) Do(ctx context.Context, req Request, v any) error {
	return retry(ctx, g.attempts, g.retryDelay, func() error {
		return g.once(ctx, req, v)
	})
}

func (g *Gateway) once(ctx context.Context, req Request, v any) error {
	target := req.URL(g.base)
	method := req.httpMethod()
	path := strings.TrimPrefix(strings.TrimPrefix(target, g.base), "?")

	httpReq, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return errors.Wrap(errors.CodeBadRequest, err, "building request %s %s", method, path)
	}
	if token := g.tokenFor(req); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	httpReq.Header.Set("Accept", "application/json")

	observability.HTTP().OnRequest(ctx, method, g.host, path)
	start := time.Now()
	resp, err := g.http.Do(httpReq)
	if err != nil {
		observability.HTTP().OnError(ctx, method, g.host, path, err)
		return &retryableError{err: errors.Wrap(errors.CodeUnavailable, err, "%s %s", method, path)}
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, method, g.host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode, method, path); err != nil {
		return err
	}
	if v == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &retryableError{err: errors.Wrap(errors.CodeUnavailable, err, "reading %s %s", method, path)}
	}
	if err := decodeBody(body, v); err != nil {
		return errors.Wrap(errors.CodeInternal, err, "decoding %s %s", method, path)
	}
	return nil
}

func (g *Gateway) tokenFor(req Request) string {
	if req.token != "" {
		return req.token
	}
	return g.token
}

// decodeBody unmarshals a response body, treating an empty or literal-null
// body as "leave v at its zero value". Backends emit null instead of [] for
// empty collections, so slice targets must tolerate it.
func decodeBody(body []byte, v any) error {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	return json.Unmarshal(body, v)
}

func checkStatus(status int, method, path string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status >= 500:
		return &retryableError{err: errors.New(errors.FromStatus(status), "%s %s: status %d", method, path, status)}
	default:
		return errors.New(errors.FromStatus(status), "%s %s: status %d", method, path, status)
	}
}

// Send executes req and returns the decoded response value.
func Send[T any](ctx context.Context, g *Gateway, req Request) (T, error) {
	var v T
	err := g.Do(ctx, req, &v)
	return v, err
}

// SendList executes req and returns the decoded collection. A null or empty
// response body yields an empty, non-nil slice.
func SendList[T any](ctx context.Context, g *Gateway, req Request) ([]T, error) {
	var items []T
	if err := g.Do(ctx, req, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// String implements fmt.Stringer for debugging.
func (g *Gateway) String() string {
	return fmt.Sprintf("Gateway(%s)", g.base)
}
