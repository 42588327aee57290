// Package scanner orchestrates a full scan: fetch news, extract symbols,
// score sentiment, and roll everything into insights and a report.
package scanner

import (
	"context"
	"time"

	"portfolio-scanner/internal/insight"
	"portfolio-scanner/internal/logger"
	"portfolio-scanner/internal/news"
	"portfolio-scanner/internal/sentiment"
	"portfolio-scanner/internal/symbols"
	"portfolio-scanner/internal/trace"
	"portfolio-scanner/internal/types"
)

type Scanner struct {
	source      news.Source
	extractor   *symbols.Extractor
	scorer      *sentiment.Scorer
	maxArticles int
	topN        int
}

func New(source news.Source, extractor *symbols.Extractor, scorer *sentiment.Scorer, maxArticles, topN int) *Scanner {
	return &Scanner{
		source:      source,
		extractor:   extractor,
		scorer:      scorer,
		maxArticles: maxArticles,
		topN:        topN,
	}
}

// Scan runs the full pipeline. An empty news batch or a batch with no
// usable symbols yields an empty result, not an error.
func (s *Scanner) Scan(ctx context.Context) (*types.ScanResult, error) {
	ctx, span := trace.StartSpan(ctx, "scanner.scan")
	defer span.End()

	result := &types.ScanResult{
		StockSentiments: map[string]types.StockSentiment{},
		Timestamp:       time.Now().Format(time.RFC3339),
	}

	articles, err := s.source.Fetch(ctx, s.maxArticles)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		logger.Warn(ctx, "No articles to analyze")
		return result, nil
	}
	if len(articles) > s.maxArticles {
		articles = articles[:s.maxArticles]
	}
	result.ArticlesAnalyzed = len(articles)
	logger.Info(ctx, "Analyzing articles", "count", len(articles))

	watchlist := s.buildWatchlist(articles)
	result.StocksFound = len(watchlist)
	logger.Info(ctx, "Extracted stock symbols", "count", len(watchlist))
	if len(watchlist) == 0 {
		return result, nil
	}

	result.StockSentiments = s.scorer.AggregateStockSentiment(articles, watchlist)
	result.StockFrequency = s.extractor.Frequency(articles)
	result.TopStocks = s.extractor.TopSymbols(articles, s.topN)

	dict := s.extractor.Dictionary()
	for _, symbol := range watchlist {
		agg, ok := result.StockSentiments[symbol]
		if !ok {
			continue
		}
		result.StockInsights = append(result.StockInsights,
			insight.GenerateStockInsight(symbol, dict.CompanyFor(symbol), agg))
	}
	result.PortfolioInsights = insight.GeneratePortfolioInsight(result.StockInsights)
	result.Report = insight.FormatReport(result.StockInsights, result.PortfolioInsights)

	logger.Info(ctx, "Scan complete",
		"articles", result.ArticlesAnalyzed,
		"stocks", result.StocksFound,
		"portfolio_sentiment", result.PortfolioInsights.PortfolioSentiment)
	return result, nil
}

// buildWatchlist extracts candidates from every article and keeps the ones
// that pass the quality gate: a known company, a high-confidence match, or a
// medium-confidence symbol of at least 4 characters. First-seen order is
// preserved so downstream output is deterministic.
func (s *Scanner) buildWatchlist(articles []string) []string {
	var watchlist []string
	seen := make(map[string]struct{})
	for _, article := range articles {
		for _, cand := range s.extractor.Extract(article) {
			if _, ok := seen[cand.Symbol]; ok {
				continue
			}
			if cand.Company == "Unknown" &&
				cand.Confidence != types.ConfidenceHigh &&
				!(cand.Confidence == types.ConfidenceMedium && len(cand.Symbol) >= 4) {
				continue
			}
			seen[cand.Symbol] = struct{}{}
			watchlist = append(watchlist, cand.Symbol)
		}
	}
	return watchlist
}
