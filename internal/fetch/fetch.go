package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "topiclens-pipeline/1.0"

// Client issues single-shot page downloads with a bounded timeout.
type Client struct {
	http *http.Client
}

// New constructs a Client. A non-positive timeout falls back to 15s.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// Get downloads the page at url and returns the response body.
// Non-2xx responses are errors; there are no retries.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("get %s: unexpected status %s", url, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}

	return body, nil
}
