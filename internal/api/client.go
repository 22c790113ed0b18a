// Package api is the transport layer of the research API: one shared HTTP
// client, a declarative endpoint table and the error classification every
// repository relies on.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// maxResponseBytes bounds how much of a response body is read into memory
const maxResponseBytes = 10 << 20

// Client performs single round trips against the API.
// It is safe for concurrent use and holds no per-user state.
type Client struct {
	cfg        Config
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	breaker    *gobreaker.CircuitBreaker
	metrics    *Metrics
}

// Option is a functional option for configuring a Client
type Option func(*Client)

// WithLogger sets the logger for request/response records
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client.
// Timeouts from Config are not applied to a supplied client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New builds a Client from cfg. Zero fields in cfg take their defaults.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.applyDefaults()

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", cfg.BaseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	c := &Client{
		cfg:     cfg,
		baseURL: base,
		logger:  slog.Default(),
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient(cfg)
	}
	c.breaker = newBreaker(cfg.Breaker, c.logger)

	return c, nil
}

// newHTTPClient maps the three timeouts onto net/http: connect bounds dialing
// and the TLS handshake, write+read bound the wait for response headers, and
// the sum of all three caps the whole exchange including the body.
func newHTTPClient(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.WriteTimeout + cfg.ReadTimeout,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       90 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   cfg.ConnectTimeout + cfg.WriteTimeout + cfg.ReadTimeout,
	}
}

// Config returns a copy of the client configuration
func (c *Client) Config() Config {
	return c.cfg
}

// Metrics returns the client's counters
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// Call performs exactly one round trip for op.
// A non-nil error means no response was received; every received status,
// successful or not, is returned as a Response for the caller to classify.
func (c *Client) Call(ctx context.Context, op Operation, req Request) (*Response, error) {
	ep, ok := Endpoints[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", op)
	}

	path, err := ep.Expand(req.PathParams)
	if err != nil {
		return nil, err
	}
	target, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to build URL for %s: %w", op, err)
	}

	body, err := encodeBody(ep, req)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body.data != nil {
		reader = bytes.NewReader(body.data)
	}
	httpReq, err := http.NewRequestWithContext(ctx, ep.Method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", op, err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.cfg.UserAgent)
	httpReq.Header.Set("X-Request-ID", requestID)
	if body.contentType != "" {
		httpReq.Header.Set("Content-Type", body.contentType)
	}
	if ep.Auth && req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	logger := c.logger.With(
		"operation", string(op),
		"method", ep.Method,
		"path", target.Path,
		"request_id", requestID)
	if c.cfg.LogBodies && body.logged != "" {
		logger.Debug("api request", "encoding", ep.Encoding.String(), "body", body.logged)
	} else {
		logger.Debug("api request", "encoding", ep.Encoding.String())
	}

	start := time.Now()
	resp, err := c.guarded(httpReq)
	c.metrics.record(resp, err)
	elapsed := time.Since(start)

	if err != nil {
		logger.Warn("api transport failure", "duration", elapsed, "error", err)
		return nil, err
	}

	attrs := []any{"status", resp.StatusCode, "duration", elapsed}
	if c.cfg.LogBodies {
		attrs = append(attrs, "body", redactJSON(resp.Body))
	}
	logger.Debug("api response", attrs...)

	return resp, nil
}

// send executes the request and reads the whole body
func (c *Client) send(httpReq *http.Request) (*Response, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := httpResp.Body.Close(); err != nil {
			c.logger.Debug("failed to close response body", "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Header:     httpResp.Header,
		Body:       data,
	}, nil
}
