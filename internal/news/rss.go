package news

import (
	"context"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"portfolio-scanner/internal/logger"
)

// RSSSource pulls headlines from a set of RSS/Atom feeds in parallel. Feeds
// that fail to parse are skipped; the batch is whatever the rest produced.
type RSSSource struct {
	feeds   []string
	timeout time.Duration
}

func NewRSSSource(feeds []string, timeout time.Duration) *RSSSource {
	return &RSSSource{feeds: feeds, timeout: timeout}
}

func (s *RSSSource) Name() string { return "rss" }

func (s *RSSSource) Fetch(ctx context.Context, maxArticles int) ([]string, error) {
	if len(s.feeds) == 0 {
		return nil, nil
	}

	var mu sync.Mutex
	var articles []string

	g, gctx := errgroup.WithContext(ctx)
	for _, feedURL := range s.feeds {
		feedURL := feedURL
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, s.timeout)
			defer cancel()

			parser := gofeed.NewParser()
			feed, err := parser.ParseURLWithContext(feedURL, fctx)
			if err != nil {
				// One bad feed must not sink the batch.
				logger.Warn(gctx, "Feed parse failed", "feed", feedURL, "error", err)
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			for _, item := range feed.Items {
				if item.Title == "" {
					continue
				}
				articles = append(articles, FormatArticle(item.Title, item.Description))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if maxArticles > 0 && len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}
	return articles, nil
}
