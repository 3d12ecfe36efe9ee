// Package feed handles downloading and parsing the blog's RSS feed.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"rssimages/internal/model"
)

// rssSuffix is the path Tistory-style blogs expose their feed under.
const rssSuffix = "/rss"

const userAgent = "rssimages/1.0"

// Responses larger than this are truncated before parsing.
const maxFeedBytes = 5 * 1024 * 1024

// NormalizeURL ensures url ends with the /rss feed-discovery suffix.
// Trailing slashes are stripped before the suffix is appended; a URL that
// already carries the suffix is returned unchanged.
func NormalizeURL(url string) string {
	if strings.HasSuffix(url, rssSuffix) {
		return url
	}
	return strings.TrimRight(url, "/") + rssSuffix
}

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Reader downloads and parses RSS feeds.
type Reader struct {
	client HTTPClient
}

// NewReader creates a Reader with the given HTTP client.
func NewReader(client HTTPClient) *Reader {
	return &Reader{client: client}
}

// Fetch downloads and parses the RSS feed at url, returning one item per
// entry with its publish time normalized to UTC. An entry without a
// parseable publish date fails the whole fetch.
func (r *Reader) Fetch(ctx context.Context, url string) ([]model.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	parsed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]model.Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		if entry.PublishedParsed == nil {
			return nil, fmt.Errorf("entry %q has no parseable publish date", entry.Link)
		}
		items = append(items, model.Item{
			URL:         entry.Link,
			PublishedAt: entry.PublishedParsed.UTC(),
		})
	}
	return items, nil
}
