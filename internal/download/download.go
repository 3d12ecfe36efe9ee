// Package download fetches post pages and saves their embedded images.
package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"

	"rssimages/internal/model"
)

// Tistory post pages wrap each embedded image in a figure carrying this
// class, with the full-size source on a span's data-url attribute.
const (
	figureSelector = "figure.imageblock"
	sourceAttr     = "data-url"
)

const userAgent = "rssimages/1.0"

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Cache records which posts have already been downloaded.
type Cache interface {
	IsDownloaded(url string) (bool, error)
	MarkDownloaded(url string) error
}

// Downloader saves the images of individual blog posts to a local folder.
type Downloader struct {
	client HTTPClient
	cache  Cache
	outDir string
	log    *slog.Logger
	now    func() time.Time
}

// New creates a Downloader writing into outDir.
func New(client HTTPClient, cache Cache, outDir string, log *slog.Logger) *Downloader {
	return &Downloader{
		client: client,
		cache:  cache,
		outDir: outDir,
		log:    log,
		now:    time.Now,
	}
}

// Download fetches the post at postURL and saves every embedded image into
// the output folder, then records the post in the cache. items supplies the
// publish dates used in filenames. A failed page fetch is logged and skips
// the post without recording it, so a later run retries it; image fetch and
// save failures are returned to the caller.
func (d *Downloader) Download(ctx context.Context, postURL string, items []model.Item) error {
	done, err := d.cache.IsDownloaded(postURL)
	if err != nil {
		return fmt.Errorf("check cache: %w", err)
	}
	if done {
		d.log.Info("post already downloaded, skipping", "url", postURL)
		return nil
	}

	page, err := d.get(ctx, postURL)
	if err != nil {
		d.log.Error("fetch post", "url", postURL, "error", err)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return fmt.Errorf("parse post html: %w", err)
	}

	if err := os.MkdirAll(d.outDir, 0o750); err != nil {
		return fmt.Errorf("create output folder: %w", err)
	}

	postDate := d.postDate(postURL, items)
	index := postIndex(postURL)

	var saveErr error
	doc.Find(figureSelector).EachWithBreak(func(i int, figure *goquery.Selection) bool {
		count := i + 1
		src, ok := figure.Find("span[" + sourceAttr + "]").Attr(sourceAttr)
		if !ok {
			saveErr = fmt.Errorf("figure %d of %s has no %s source", count, postURL, sourceAttr)
			return false
		}
		if err := d.saveImage(ctx, src, Filename(src, postDate, index, count)); err != nil {
			saveErr = err
			return false
		}
		return true
	})
	if saveErr != nil {
		return saveErr
	}

	if err := d.cache.MarkDownloaded(postURL); err != nil {
		return fmt.Errorf("update cache: %w", err)
	}
	return nil
}

// postDate returns the publish time of the feed item matching postURL,
// falling back to the current time when the URL is not in the list.
func (d *Downloader) postDate(postURL string, items []model.Item) time.Time {
	item, found := lo.Find(items, func(it model.Item) bool { return it.URL == postURL })
	if !found {
		return d.now().UTC()
	}
	return item.PublishedAt
}

func (d *Downloader) saveImage(ctx context.Context, src, name string) error {
	data, err := d.get(ctx, src)
	if err != nil {
		return fmt.Errorf("fetch image %s: %w", src, err)
	}

	dst := filepath.Join(d.outDir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	d.log.Info("downloaded image", "path", dst)
	return nil
}

func (d *Downloader) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
