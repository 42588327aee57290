package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"portfolio-scanner/internal/insight"
	"portfolio-scanner/internal/logger"
	"portfolio-scanner/internal/types"
)

// AnalysisResponse is the payload for portfolio and stock analyses.
type AnalysisResponse struct {
	PortfolioSentiment  string                   `json:"portfolio_sentiment"`
	TotalStocksAnalyzed int                      `json:"total_stocks_analyzed"`
	SentimentBreakdown  types.SentimentBreakdown `json:"sentiment_breakdown"`
	StockInsights       []types.StockInsight     `json:"stock_insights"`
	Mock                bool                     `json:"mock,omitempty"`
}

// ScanPortfolioRequest is the body for POST /api/scan-portfolio and
// POST /api/analyze-stocks.
type ScanPortfolioRequest struct {
	Stocks []string `json:"stocks"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleScanPortfolio(w http.ResponseWriter, r *http.Request) {
	stocks, ok := decodeStocks(w, r)
	if !ok {
		return
	}

	id := s.jobs.Create()
	go s.runPortfolioAnalysis(id, stocks)

	writeJSON(w, http.StatusOK, map[string]string{
		"analysis_id": id,
		"status":      "started",
		"message":     "Portfolio analysis started",
	})
}

func (s *Server) handleAnalysisStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, ok := s.jobs.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"status":  "not_found",
			"message": "Analysis not found",
		})
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleAnalyzeStocks(w http.ResponseWriter, r *http.Request) {
	stocks, ok := decodeStocks(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()

	result, err := s.analyzeStocks(ctx, stocks, nil)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
	defer cancel()

	articles, err := s.source.Fetch(ctx, 20)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if len(articles) > 10 {
		articles = articles[:10]
	}

	type newsItem struct {
		Title      string  `json:"title"`
		Content    string  `json:"content"`
		Sentiment  string  `json:"sentiment"`
		Confidence float64 `json:"confidence"`
	}

	items := make([]newsItem, 0, len(articles))
	for _, article := range articles {
		title, content := splitArticle(article)
		scored := s.scorer.Score(article)
		items = append(items, newsItem{
			Title:      title,
			Content:    content,
			Sentiment:  scored.Sentiment,
			Confidence: scored.Confidence,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"articles":       items,
		"total_articles": len(items),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

// runPortfolioAnalysis executes one background job, reporting coarse
// progress as it goes.
func (s *Server) runPortfolioAnalysis(id string, stocks []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logger.Info(ctx, "Starting portfolio analysis", "job", id, "stocks", len(stocks))
	s.jobs.SetProgress(id, 0, "Fetching news articles...")

	result, err := s.analyzeStocks(ctx, stocks, func(progress int, message string) {
		s.jobs.SetProgress(id, progress, message)
	})
	if err != nil {
		logger.ErrorWithErr(ctx, "Portfolio analysis failed", err, "job", id)
		s.jobs.Fail(id, err)
		return
	}

	s.jobs.Complete(id, result)
	logger.Info(ctx, "Portfolio analysis completed", "job", id)
}

// analyzeStocks fetches news and builds insights for the requested symbols.
// When none of the symbols appear in today's news the response falls back to
// a clearly-marked mock analysis so the frontend still has something to
// render.
func (s *Server) analyzeStocks(ctx context.Context, stocks []string, progress func(int, string)) (*AnalysisResponse, error) {
	report := func(p int, msg string) {
		if progress != nil {
			progress(p, msg)
		}
	}

	report(25, "Analyzing stock mentions...")
	articles, err := s.source.Fetch(ctx, s.maxArticles)
	if err != nil {
		return nil, err
	}

	report(50, "Generating insights...")
	aggregates := s.scorer.AggregateStockSentiment(articles, stocks)
	if len(aggregates) == 0 {
		return s.mockAnalysis(stocks), nil
	}

	dict := s.extractor.Dictionary()
	var insights []types.StockInsight
	for _, symbol := range stocks {
		agg, ok := aggregates[symbol]
		if !ok {
			continue
		}
		insights = append(insights, insight.GenerateStockInsight(symbol, dict.CompanyFor(symbol), agg))
	}

	report(75, "Finalizing results...")
	portfolio := insight.GeneratePortfolioInsight(insights)

	return &AnalysisResponse{
		PortfolioSentiment:  portfolio.PortfolioSentiment,
		TotalStocksAnalyzed: len(insights),
		SentimentBreakdown:  portfolio.SentimentBreakdown,
		StockInsights:       insights,
	}, nil
}

func decodeStocks(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	var req ScanPortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No stocks provided"})
		return nil, false
	}
	if len(req.Stocks) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid stocks list"})
		return nil, false
	}
	stocks := make([]string, 0, len(req.Stocks))
	for _, symbol := range req.Stocks {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol != "" {
			stocks = append(stocks, symbol)
		}
	}
	if len(stocks) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid stocks list"})
		return nil, false
	}
	return stocks, true
}

// splitArticle recovers the title and content from the canonical article
// text layout.
func splitArticle(article string) (string, string) {
	lines := strings.SplitN(article, "\n", 3)
	title := "Untitled"
	content := "No content available"
	if len(lines) > 0 && strings.HasPrefix(lines[0], "Title: ") {
		title = strings.TrimPrefix(lines[0], "Title: ")
	}
	if len(lines) > 1 && strings.HasPrefix(lines[1], "Content: ") {
		content = strings.TrimPrefix(lines[1], "Content: ")
	}
	return title, content
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
