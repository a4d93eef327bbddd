// Package oembed resolves provider embed HTML for video URLs. Embeds
// are optional enrichment: a URL that cannot be resolved simply has no
// embed, it never fails the batch.
package oembed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type Config struct {
	Endpoint   string
	Timeout    time.Duration
	BatchSize  int
	BatchPause time.Duration
	MaxRetries int
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	batchSize  int
	batchPause time.Duration
	maxRetries int
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		batchSize:  cfg.BatchSize,
		batchPause: cfg.BatchPause,
		maxRetries: cfg.MaxRetries,
		logger:     logger.With("component", "oembed"),
	}
}

type response struct {
	HTML string `json:"html"`
}

// FetchBatch resolves embed HTML for the given video URLs in bounded
// concurrent batches, pausing between batches to respect upstream rate
// limits. The returned map contains only URLs that resolved.
func (c *Client) FetchBatch(ctx context.Context, videoURLs []string) map[string]string {
	results := make(map[string]string, len(videoURLs))
	var mu sync.Mutex

	for start := 0; start < len(videoURLs); start += c.batchSize {
		end := start + c.batchSize
		if end > len(videoURLs) {
			end = len(videoURLs)
		}

		var g errgroup.Group
		for _, videoURL := range videoURLs[start:end] {
			g.Go(func() error {
				html := c.fetchOne(ctx, videoURL)
				if html != "" {
					mu.Lock()
					results[videoURL] = html
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait()

		if end < len(videoURLs) {
			select {
			case <-ctx.Done():
				return results
			case <-time.After(c.batchPause):
			}
		}
	}

	c.logger.Debug("oembed batch done", "requested", len(videoURLs), "resolved", len(results))
	return results
}

// fetchOne retries on rate limiting and transport errors with linear
// backoff, then gives up and returns no embed.
func (c *Client) fetchOne(ctx context.Context, videoURL string) string {
	endpoint := fmt.Sprintf("%s?url=%s", c.endpoint, url.QueryEscape(videoURL))

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ""
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		html, retryable, err := c.doRequest(ctx, endpoint)
		if err == nil {
			return html
		}
		if !retryable {
			return ""
		}
		c.logger.Debug("oembed fetch retrying", "url", videoURL, "attempt", attempt+1, "error", err)
	}

	return ""
}

func (c *Client) doRequest(ctx context.Context, endpoint string) (html string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport errors (timeouts included) are worth a retry.
		return "", true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", true, fmt.Errorf("rate limited")
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", false, err
	}

	return payload.HTML, false, nil
}
