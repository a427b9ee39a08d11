// Package client calls the flight-search endpoint on behalf of the trip
// form.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"tripchat/flights"
)

// DefaultTimeout bounds a single search.
const DefaultTimeout = 30 * time.Second

// Error codes placed in Response.Error for failures the endpoint never
// reported itself.
const (
	ErrCodeTimeout         = "timeout"
	ErrCodeRequestFailed   = "request_failed"
	ErrCodeInvalidResponse = "invalid_response"
)

// ErrSuperseded is returned when a newer Search aborted this one. The
// caller should drop the result.
var ErrSuperseded = errors.New("search superseded by a newer request")

// Client posts searches to {baseURL}/api/flights. At most one search is in
// flight; starting another aborts the previous one.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// begin cancels the in-flight search, if any, and registers a new one.
func (c *Client) begin(parent context.Context) (context.Context, uint64, func()) {
	ctx, cancel := context.WithTimeout(parent, c.timeout)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	id := c.seq
	c.cancel = cancel
	c.mu.Unlock()

	done := func() {
		c.mu.Lock()
		if c.seq == id {
			c.cancel = nil
		}
		c.mu.Unlock()
		cancel()
	}
	return ctx, id, done
}

func (c *Client) superseded(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq != id
}

// Search posts req. Failures that are not reported by the endpoint itself
// (transport errors, timeouts, non-JSON bodies) come back as an error
// response rather than a Go error, so they take the same display path.
// The only Go errors are ErrSuperseded and the caller's own cancellation.
func (c *Client) Search(ctx context.Context, req flights.Request) (*flights.Response, error) {
	ctx, id, done := c.begin(ctx)
	defer done()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/flights", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.failure(ctx, id, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.failure(ctx, id, err)
	}

	var out flights.Response
	if err := json.Unmarshal(raw, &out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return statusFailure(resp.StatusCode), nil
		}
		return &flights.Response{
			Error:   ErrCodeInvalidResponse,
			Message: fmt.Sprintf("could not decode response: %v", err),
		}, nil
	}

	if (resp.StatusCode < 200 || resp.StatusCode >= 300) && out.Error == "" {
		return statusFailure(resp.StatusCode), nil
	}
	return &out, nil
}

func (c *Client) failure(ctx context.Context, id uint64, err error) (*flights.Response, error) {
	if c.superseded(id) {
		return nil, ErrSuperseded
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &flights.Response{
			Error:   ErrCodeTimeout,
			Message: fmt.Sprintf("no response after %s", c.timeout),
		}, nil
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, ctx.Err()
	}
	return &flights.Response{Error: ErrCodeRequestFailed, Message: err.Error()}, nil
}

func statusFailure(code int) *flights.Response {
	return &flights.Response{
		Error:   fmt.Sprintf("http_%d", code),
		Message: http.StatusText(code),
	}
}
