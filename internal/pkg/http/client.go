package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
)

const (
	// DefaultTimeout applies to every call when Config.Timeout is zero
	DefaultTimeout = 30 * time.Second
	// RequestIDHeader carries the per-call request token
	RequestIDHeader = "X-Request-ID"
)

// RequestInterceptor runs before a request is dispatched
type RequestInterceptor func(req *nethttp.Request) error

// ResponseInterceptor runs after a response is received, before the caller sees it
type ResponseInterceptor func(resp *nethttp.Response)

// Config holds client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the shared JSON client every backend call goes through
type Client struct {
	baseURL              string
	httpClient           *nethttp.Client
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
	logger               *logger.ZapLogger
}

// Option customizes a Client
type Option func(*Client)

// WithRequestInterceptor appends a request interceptor
func WithRequestInterceptor(i RequestInterceptor) Option {
	return func(c *Client) {
		c.requestInterceptors = append(c.requestInterceptors, i)
	}
}

// WithResponseInterceptor appends a response interceptor
func WithResponseInterceptor(i ResponseInterceptor) Option {
	return func(c *Client) {
		c.responseInterceptors = append(c.responseInterceptors, i)
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *logger.ZapLogger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithNewRelic records outbound calls as external segments
func WithNewRelic(app *newrelic.Application) Option {
	return func(c *Client) {
		if app == nil {
			return
		}
		c.httpClient.Transport = newrelic.NewRoundTripper(c.httpClient.Transport)
	}
}

// NewClient creates a new HTTP client
func NewClient(config Config, opts ...Option) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL: config.BaseURL,
		httpClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.GetGlobalLogger()
	}
	return c
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.Do(ctx, nethttp.MethodGet, endpoint, nil)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.Do(ctx, nethttp.MethodPost, endpoint, body)
}

// GetJSON performs a GET request and decodes a 2xx JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// PostJSON performs a POST request and decodes a 2xx JSON response into result
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	return decodeResponse(resp, result)
}

// Do builds and dispatches a request. Non-2xx statuses are not errors here;
// the response interceptors have already run when Do returns.
func (c *Client) Do(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := strings.TrimRight(c.baseURL, "/") + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestIDFromContext(ctx))

	for _, intercept := range c.requestInterceptors {
		if err := intercept(req); err != nil {
			return nil, fmt.Errorf("request interceptor: %w", err)
		}
	}

	c.logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("request_id", req.Header.Get(RequestIDHeader)),
		logger.Bool("authenticated", req.Header.Get("Authorization") != ""))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	c.logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	for _, intercept := range c.responseInterceptors {
		intercept(resp)
	}

	return resp, nil
}

type requestIDKey struct{}

// ContextWithRequestID pins the request token sent with calls made under ctx
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func decodeResponse(resp *nethttp.Response, result interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
