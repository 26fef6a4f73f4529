// Package fetch performs single-attempt HTTP GETs against the upstream
// condition sources. Every transport, status, or decode failure is absorbed
// here: callers receive an absence signal (false or nil), never an error.
// The rest of the pipeline treats absence uniformly by degrading the
// affected source to its worst-case score.
package fetch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client issues GET requests with a fixed per-request timeout.
// No retries, no backoff, no caching.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a fetch client. Timeout applies to each request in full,
// including body read.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// JSON fetches url and decodes the response body into v. Returns false if the
// request failed, the status was not 2xx, or the body was not valid JSON;
// v is left in an undefined state in that case.
func (c *Client) JSON(ctx context.Context, url string, v any) bool {
	body, ok := c.get(ctx, url)
	if !ok {
		return false
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		c.logger.Warn("failed to decode response", "url", url, "error", err)
		return false
	}
	return true
}

// Bytes fetches url and returns the raw response body, or (nil, false) on
// any failure.
func (c *Client) Bytes(ctx context.Context, url string) ([]byte, bool) {
	body, ok := c.get(ctx, url)
	if !ok {
		return nil, false
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		c.logger.Warn("failed to read response body", "url", url, "error", err)
		return nil, false
	}
	return data, true
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn("failed to build request", "url", url, "error", err)
		return nil, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("failed to fetch", "url", url, "error", err)
		return nil, false
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		c.logger.Warn("unexpected status", "url", url, "status", resp.StatusCode)
		return nil, false
	}

	return resp.Body, true
}
