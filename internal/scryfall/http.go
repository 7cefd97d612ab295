package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	perrors "github.com/lepinkainen/paupercube/internal/errors"
)

// ErrNotFound is returned when Scryfall answers 404.
var ErrNotFound = errors.New("scryfall: not found")

// SearchPrints runs a search for name asking for every unique printing,
// extras included. A search without any match returns ErrNotFound.
func (c *Client) SearchPrints(ctx context.Context, name string) (*SearchResult, error) {
	params := url.Values{}
	params.Set("q", name)
	params.Set("include_extras", "true")
	params.Set("unique", "prints")

	endpoint := c.baseURL + "/cards/search?" + params.Encode()

	var result SearchResult
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, fmt.Errorf("search %q: %w", name, err)
	}

	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	slog.Debug("Scryfall request", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return perrors.NewRateLimitErrorWithRetry("scryfall: rate limited (HTTP 429)", parseRetryAfter(resp.Header.Get("Retry-After")))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Object == "error" {
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}
		return &apiErr
	}

	return fmt.Errorf("scryfall: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

// parseRetryAfter understands the delay-seconds form of Retry-After.
func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
