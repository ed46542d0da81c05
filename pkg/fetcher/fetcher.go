package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/grephuman/grephuman/pkg/caching"
)

// Search pages serve a stripped-down layout to unknown clients, so
// requests go out with a desktop browser user agent.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

type Fetcher struct {
	client *http.Client
	cache  *caching.Cache
}

// NewFetcher creates a Fetcher without caching.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewCachedFetcher creates a Fetcher that consults the cache before the
// network and stores successful responses.
func NewCachedFetcher(cache *caching.Cache) *Fetcher {
	f := NewFetcher()
	f.cache = cache
	return f
}

// Fetch returns the page body for a URL, from cache when fresh.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.cache != nil {
		if data, ok := f.cache.Get(url); ok {
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if f.cache != nil {
		if err := f.cache.Set(url, bodyBytes); err != nil {
			return nil, fmt.Errorf("failed to cache response: %w", err)
		}
	}

	return bodyBytes, nil
}
