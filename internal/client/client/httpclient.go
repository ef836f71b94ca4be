package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/dmitrijs2005/collabdocs/internal/logging"
	"github.com/google/uuid"
)

const (
	defaultTimeout        = 10 * time.Second
	defaultConnectTimeout = 5 * time.Second

	// CacheBusterParam is the query parameter appended to every GET.
	CacheBusterParam = "_t"
	// RequestIDHeader carries a per-call identifier for log correlation.
	RequestIDHeader = "X-Request-ID"
)

// TextBody is sent verbatim as text/plain instead of being JSON-encoded.
type TextBody string

// Request describes one outbound call relative to the API base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// HTTPClient is the single chokepoint for every call to the backend. It
// attaches the credential, defeats caches on reads, unwraps the response
// envelope and detects session invalidation.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
	now        func() time.Time

	lastStamp atomic.Int64

	mu       sync.RWMutex
	creds    CredentialSource
	handlers []InvalidationHandler
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// WithLogger sets the logger used for call diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithClock overrides the time source of the cache-buster parameter.
func WithClock(now func() time.Time) Option {
	return func(c *HTTPClient) { c.now = now }
}

func defaultHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: defaultConnectTimeout}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: defaultConnectTimeout,
	}
	return &http.Client{Transport: transport, Timeout: timeout}
}

// NewHTTPClient builds a client rooted at baseURL (for example
// "http://127.0.0.1:8080/api"). A non-positive timeout selects the default.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: defaultHTTPClient(timeout),
		logger:     logging.NewNopLogger(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetCredentialSource sets where the bearer credential is read from.
func (c *HTTPClient) SetCredentialSource(src CredentialSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creds = src
}

// OnSessionInvalidated registers h to run whenever a call reveals that the
// session is no longer valid.
func (c *HTTPClient) OnSessionInvalidated(h InvalidationHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, h)
}

func (c *HTTPClient) credential() string {
	c.mu.RLock()
	src := c.creds
	c.mu.RUnlock()
	if src == nil {
		return ""
	}
	return src.Credential()
}

func (c *HTTPClient) invalidate(ctx context.Context, inv Invalidation) {
	c.mu.RLock()
	handlers := append([]InvalidationHandler(nil), c.handlers...)
	c.mu.RUnlock()

	c.logger.Warn(ctx, "session invalidated", "code", inv.Code, "http_status", inv.HTTPStatus, "path", inv.Path)
	for _, h := range handlers {
		h(ctx, inv)
	}
}

// cacheBuster returns a millisecond timestamp that is strictly greater than
// any value this client returned before.
func (c *HTTPClient) cacheBuster() string {
	for {
		last := c.lastStamp.Load()
		next := c.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if c.lastStamp.CompareAndSwap(last, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}

func (c *HTTPClient) newHTTPRequest(ctx context.Context, r Request, requestID string) (*http.Request, error) {
	q := url.Values{}
	for k, v := range r.Query {
		q[k] = append([]string(nil), v...)
	}
	if r.Method == http.MethodGet {
		q.Set(CacheBusterParam, c.cacheBuster())
	}

	target := c.baseURL + r.Path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch b := r.Body.(type) {
	case nil:
	case TextBody:
		body = strings.NewReader(string(b))
		contentType = "text/plain; charset=utf-8"
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set(RequestIDHeader, requestID)
	if token := c.credential(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// Do performs r and decodes the envelope's data section into out (which may
// be nil). Errors match ErrUnavailable, ErrRequestFailed or ErrUnauthorized.
func (c *HTTPClient) Do(ctx context.Context, r Request, out any) error {
	requestID := uuid.NewString()
	log := c.logger.With("method", r.Method, "path", r.Path, "request_id", requestID)

	req, err := c.newHTTPRequest(ctx, r, requestID)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "api call failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "api call", "status", resp.StatusCode, "latency", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate(ctx, Invalidation{HTTPStatus: resp.StatusCode, Path: r.Path})
		return fmt.Errorf("%w: http status %d", ErrUnauthorized, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: http status %d", ErrUnavailable, resp.StatusCode)
	}

	var env models.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: decode envelope: %w", ErrUnavailable, err)
	}

	if !env.OK() {
		apiErr := &APIError{Code: env.Code, Message: env.Message}
		if IsSessionInvalidation(env.Code) {
			c.invalidate(ctx, Invalidation{Code: env.Code, Message: apiErr.Error(), Path: r.Path})
		} else {
			log.Info(ctx, "api call rejected", "code", env.Code, "message", env.Message)
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %w", ErrUnavailable, err)
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *HTTPClient) post(ctx context.Context, path string, query url.Values, body any, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Query: query, Body: body}, out)
}

func (c *HTTPClient) put(ctx context.Context, path string, query url.Values, body any, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Query: query, Body: body}, out)
}

func (c *HTTPClient) delete(ctx context.Context, path string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, nil)
}

func segment(s string) string {
	return "/" + url.PathEscape(s)
}
