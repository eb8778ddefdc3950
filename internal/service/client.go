package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/muurk/laptop-advisor/internal/logging"
)

const (
	// DefaultBaseURL is the address of a locally running recommendation service
	DefaultBaseURL = "http://127.0.0.1:8000"

	// OptionsPath lists the selectable manufacturers, models and categories
	OptionsPath = "/api/options/"

	// RecommendPath accepts a selection and answers with recommendations
	RecommendPath = "/api/recommend/"

	// RequestIDHeader carries the submission's correlation id
	RequestIDHeader = "X-Request-ID"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 15 * time.Second

	// maxErrorBody caps how much of a failure body is read
	maxErrorBody = 64 * 1024
)

// Client talks to the recommendation service over HTTP/JSON.
//
// Each call performs exactly one exchange: there is no retry, no caching and
// no deduplication of concurrent calls.
type Client struct {
	// BaseURL is the service address (e.g., "http://127.0.0.1:8000")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// Limiter paces outgoing requests (nil = unlimited)
	Limiter *rate.Limiter
}

// NewClient creates a client for the service at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetRateLimit caps outgoing requests at rps per second with the given burst.
// rps <= 0 removes the limit.
func (c *Client) SetRateLimit(rps float64, burst int) {
	if rps <= 0 {
		c.Limiter = nil
		return
	}
	if burst < 1 {
		burst = 1
	}
	c.Limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

type requestIDKey struct{}

// WithRequestID returns a context whose requests carry id in the X-Request-ID header
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id set by WithRequestID, or ""
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FetchOptions retrieves the selectable option set
func (c *Client) FetchOptions(ctx context.Context) (*OptionSet, error) {
	body, err := c.do(ctx, http.MethodGet, OptionsPath, nil)
	if err != nil {
		return nil, err
	}

	var options OptionSet
	if err := json.Unmarshal(body, &options); err != nil {
		return nil, NewParseError("failed to parse options response", err)
	}

	return &options, nil
}

// Recommend submits a selection and returns the recommended configurations.
// The returned slice is never nil on success.
func (c *Client) Recommend(ctx context.Context, req *RecommendRequest) ([]Recommendation, error) {
	if req == nil {
		req = &RecommendRequest{}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommend request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, RecommendPath, payload)
	if err != nil {
		return nil, err
	}

	var resp recommendResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewParseError("failed to parse recommend response", err)
	}
	if resp.Recommendations == nil {
		return nil, NewParseError("recommend response has no recommendations field", nil)
	}

	recommendations := *resp.Recommendations
	if recommendations == nil {
		recommendations = []Recommendation{}
	}
	return recommendations, nil
}

// do performs a single exchange and returns the body of a 2xx response
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, NewNetworkError("rate limiter wait aborted", err)
		}
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("failed to create %s request", method), err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := RequestIDFromContext(ctx)
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	logging.LogHTTPRequest(method, path, requestID)
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		svcErr := NewNetworkError(fmt.Sprintf("%s %s failed", method, path), err)
		svcErr.Endpoint = path
		return nil, svcErr
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogHTTPResponse(method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		svcErr := NewHTTPError(resp.StatusCode,
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
			serverMessage(body))
		svcErr.Endpoint = path
		return nil, svcErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		svcErr := NewNetworkError("failed to read response body", err)
		svcErr.Endpoint = path
		return nil, svcErr
	}

	return body, nil
}

// serverMessage extracts the "error" field of a failure body, if there is one
func serverMessage(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logging.Debug("failure body is not JSON", zap.Int("length", len(body)))
		return ""
	}
	return resp.Error
}
