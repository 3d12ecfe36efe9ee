// Package app runs the feed-to-images pipeline.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rssimages/internal/feed"
	"rssimages/internal/filter"
	"rssimages/internal/model"
)

// Downloader is the interface for saving a single post's images.
type Downloader interface {
	Download(ctx context.Context, postURL string, items []model.Item) error
}

// App fetches the blog feed and downloads images from every new post.
type App struct {
	reader     *feed.Reader
	downloader Downloader
	log        *slog.Logger
}

// New creates an App.
func New(reader *feed.Reader, downloader Downloader, log *slog.Logger) *App {
	return &App{
		reader:     reader,
		downloader: downloader,
		log:        log,
	}
}

// Run fetches the feed at feedURL and processes the posts published after
// cutoff, newest first. A nil cutoff keeps every post. Run stops at the
// first download error.
func (a *App) Run(ctx context.Context, feedURL string, cutoff *time.Time) error {
	items, err := a.reader.Fetch(ctx, feedURL)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	items = filter.After(items, cutoff)
	filter.SortNewestFirst(items)
	a.log.Info("feed fetched", "url", feedURL, "posts", len(items))

	for _, item := range items {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		a.log.Debug("processing post", "url", item.URL, "published", item.PublishedAt)
		if err := a.downloader.Download(ctx, item.URL, items); err != nil {
			return fmt.Errorf("download %s: %w", item.URL, err)
		}
	}
	return nil
}
