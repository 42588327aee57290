// Package news fetches raw article texts for analysis. Each provider
// implements Source; a Chain tries providers in configured order and the
// first one that yields articles wins.
package news

import (
	"context"
	"fmt"

	"portfolio-scanner/internal/logger"
	"portfolio-scanner/internal/trace"
)

// Source is one news provider. Fetch returns article texts, each formatted
// as "Title: ...\nContent: ...\n".
type Source interface {
	Name() string
	Fetch(ctx context.Context, maxArticles int) ([]string, error)
}

// Chain tries each source in order and returns the first non-empty batch.
// Provider failures are logged and skipped; an empty batch after all
// providers is not an error.
type Chain struct {
	sources []Source
}

func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

func (c *Chain) Name() string { return "chain" }

func (c *Chain) Fetch(ctx context.Context, maxArticles int) ([]string, error) {
	ctx, span := trace.StartSpan(ctx, "news.fetch")
	defer span.End()

	for _, source := range c.sources {
		articles, err := source.Fetch(ctx, maxArticles)
		if err != nil {
			logger.ErrorWithErr(ctx, "News source failed", err, "source", source.Name())
			continue
		}
		if len(articles) == 0 {
			logger.Warn(ctx, "News source returned no articles", "source", source.Name())
			continue
		}
		logger.Info(ctx, "Fetched articles", "source", source.Name(), "count", len(articles))
		return articles, nil
	}

	logger.Warn(ctx, "All news sources failed or returned nothing")
	return nil, nil
}

// StaticSource serves a fixed article batch. Used in tests and as a demo
// fallback when no provider is reachable.
type StaticSource struct {
	Articles []string
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Fetch(_ context.Context, maxArticles int) ([]string, error) {
	if maxArticles > 0 && len(s.Articles) > maxArticles {
		return s.Articles[:maxArticles], nil
	}
	return s.Articles, nil
}

// FormatArticle renders a title/description pair in the canonical article
// text layout shared by all providers.
func FormatArticle(title, content string) string {
	return fmt.Sprintf("Title: %s\nContent: %s\n", title, content)
}

// SampleArticles returns a small demo batch for running the pipeline with
// no network access.
func SampleArticles() []string {
	return []string{
		"Reliance Industries reports strong Q3 results with 15% growth in revenue",
		"TCS announces disappointing earnings, stock falls 8%",
		"HDFC Bank stock surges 5% on positive earnings beat",
		"Infosys faces challenges in digital transformation projects",
		"ICICI Bank reports record quarterly profits, declares dividend",
	}
}
