package adapters

import (
	"context"
	"fmt"
	"github.com/AdithyanI/audio-isolation-elevenlabs/application/ports/outbound"
	"io"
	"net/http"
)

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{},
	}
}

// NewMediaFetcher exposes the same HTTP plumbing as the read-through fetch
// for remote video URLs.
func NewMediaFetcher(logger outbound.LoggerPort) outbound.MediaFetcherPort {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "failed to send HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.ErrorWithFields(err, "failed to close response body", map[string]interface{}{
				"URL": req.URL.String(),
			})
		}
	}(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(res.Body)
		c.logger.ErrorWithFields(nil, "HTTP request returned non-2xx status code", map[string]interface{}{
			"method":  req.Method,
			"URL":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(payload),
		})
		return nil, fmt.Errorf("HTTP request returned status code %d", res.StatusCode)
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "failed to read response body", map[string]interface{}{
			"URL": req.URL.String(),
		})
		return nil, err
	}

	return payload, nil
}

func (c *contentFetcher) FetchMedia(ctx context.Context, mediaURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build media fetch request: %w", err)
	}

	content, err := c.FetchContent(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote video: %w", err)
	}

	return content, nil
}
