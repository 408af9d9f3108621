package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// maxBodySize limits the size of response bodies read into memory.
// Listing and article pages are a few hundred kilobytes at most; anything
// larger is not a page we want.
const maxBodySize = 10 * 1024 * 1024 // 10MB

// Client fetches pages over HTTP with retry on transient server errors.
//
// Design decision: Retry lives in the transport, not in the crawl loop.
// The crawler treats retry exhaustion as a single terminal fetch error,
// which keeps its failure handling to one branch per fetch.
type Client struct {
	// httpClient is the underlying client. Its transport's connection
	// pool is shared by every worker.
	httpClient *http.Client

	// userAgent is sent with every request.
	userAgent string

	// accept is the Accept header sent with every request.
	accept string

	// cookies are session cookies applied to every request.
	cookies map[string]string

	// headers are extra headers applied to every request.
	headers map[string]string

	// retryMax is the bounded attempt count per fetch.
	retryMax int

	// retryWait is the base backoff; the wait doubles per retried attempt.
	retryWait time.Duration

	// retryStatuses are the HTTP status codes retried as transient.
	retryStatuses map[int]bool

	// logger records retry attempts and failures.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithAccept sets the Accept header.
func WithAccept(accept string) Option {
	return func(c *Client) {
		c.accept = accept
	}
}

// WithCookies sets session cookies applied to every request.
func WithCookies(cookies map[string]string) Option {
	return func(c *Client) {
		c.cookies = cookies
	}
}

// WithHeaders sets extra headers applied to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// WithRetry configures the retry budget: attempt count, base backoff
// duration, and the status codes treated as transient.
func WithRetry(maxAttempts int, wait time.Duration, statuses []int) Option {
	return func(c *Client) {
		if maxAttempts > 0 {
			c.retryMax = maxAttempts
		}
		if wait > 0 {
			c.retryWait = wait
		}
		if len(statuses) > 0 {
			c.retryStatuses = make(map[int]bool, len(statuses))
			for _, s := range statuses {
				c.retryStatuses[s] = true
			}
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client with the given per-request timeout.
//
// Design decision: The pool is sized for one polite crawler, not a load
// generator. Idle connections per host match the worker count ceiling so
// a page's worth of article fetches reuses connections instead of
// re-handshaking.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	transport := &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		retryMax:      5,
		retryWait:     1 * time.Second,
		retryStatuses: map[int]bool{500: true, 502: true, 503: true, 504: true},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Get fetches the URL and returns the response body.
//
// Transient server errors (configured status set) and network errors are
// retried with exponential backoff up to the attempt budget; exhaustion
// surfaces as one error wrapping the last failure. Non-retryable HTTP
// statuses fail immediately.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.retryMax; attempt++ {
		if attempt > 1 {
			wait := c.retryWait * time.Duration(1<<(attempt-2))
			c.logger.Debug("retrying fetch",
				"url", url,
				"attempt", attempt,
				"wait", wait,
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		body, retryable, err := c.doGet(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("fetch %s: retries exhausted after %d attempts: %w", url, c.retryMax, lastErr)
}

// doGet performs one request attempt. The second return value reports
// whether the failure is worth retrying.
func (c *Client) doGet(ctx context.Context, url string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.accept != "" {
		req.Header.Set("Accept", c.accept)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	for name, value := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network errors and timeouts are worth another attempt.
		return nil, true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
		return nil, c.retryStatuses[resp.StatusCode], err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, true, err
	}

	return body, false, nil
}
