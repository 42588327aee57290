package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"portfolio-scanner/internal/logger"
	"portfolio-scanner/internal/news"
	"portfolio-scanner/internal/scanlog"
	"portfolio-scanner/internal/store"
	"portfolio-scanner/internal/trace"

	"github.com/joho/godotenv"
)

// initializeSystem loads the environment and initializes logger and tracer.
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

func loadConfig(ctx context.Context) (*store.Config, error) {
	path := os.Getenv("SCANNER_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// compressOldLogs gzips scan logs past the configured retention window.
func compressOldLogs(ctx context.Context, cfg *store.Config) {
	if cfg.Log.RetentionDays <= 0 {
		return
	}
	if err := scanlog.CompressOlder(cfg.Log.RetentionDays); err != nil {
		logger.Warn(ctx, "Failed to compress old scan logs", "error", err)
	}
}

// buildSource assembles the provider chain in configured order. The first
// provider that yields articles serves the batch.
func buildSource(ctx context.Context, cfg *store.Config) news.Source {
	timeout := time.Duration(cfg.News.TimeoutSecs) * time.Second

	var sources []news.Source
	for _, name := range cfg.News.Sources {
		switch name {
		case "newsapi":
			apiKey := os.Getenv(cfg.News.APIKeyEnv)
			if apiKey == "" {
				logger.Warn(ctx, "News API key not set, skipping provider", "env", cfg.News.APIKeyEnv)
				continue
			}
			sources = append(sources, news.NewNewsAPISource(cfg.News.APIBaseURL, apiKey, timeout,
				news.WithCountry(cfg.Scan.Country),
				news.WithKeywordQuery(cfg.Scan.Keywords)))
		case "rss":
			sources = append(sources, news.NewRSSSource(cfg.News.RSSFeeds, timeout))
		case "scraper":
			sources = append(sources, news.NewScraperSource(cfg.News.ScraperSites, timeout))
		case "static":
			sources = append(sources, &news.StaticSource{Articles: news.SampleArticles()})
		}
	}
	if len(sources) == 0 {
		logger.Warn(ctx, "No news providers configured, falling back to sample articles")
		sources = append(sources, &news.StaticSource{Articles: news.SampleArticles()})
	}

	return news.NewChain(sources...)
}
