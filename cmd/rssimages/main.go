package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"rssimages/internal/app"
	"rssimages/internal/cache"
	"rssimages/internal/config"
	"rssimages/internal/download"
	"rssimages/internal/feed"
	"rssimages/internal/filter"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel)

	var cutoff *time.Time
	if cfg.Filter != "" {
		t, err := filter.ParseCutoff(cfg.Filter)
		if err != nil {
			log.Error("parse filter", "error", err)
			os.Exit(1)
		}
		cutoff = &t
	}

	client := &http.Client{Timeout: 30 * time.Second}
	reader := feed.NewReader(client)
	downloader := download.New(client, cache.New(cache.DefaultFile), cfg.OutputDir, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	feedURL := feed.NormalizeURL(cfg.FeedURL)
	log.Info("starting", "feed", feedURL, "output", cfg.OutputDir)

	if err := app.New(reader, downloader, log).Run(ctx, feedURL, cutoff); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
