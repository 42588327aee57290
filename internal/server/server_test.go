package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-scanner/internal/news"
	"portfolio-scanner/internal/sentiment"
	"portfolio-scanner/internal/store"
	"portfolio-scanner/internal/symbols"
)

var errTest = errors.New("boom")

func newTestServer(t *testing.T, articles []string) *Server {
	t.Helper()
	dict, err := symbols.NewDictionary()
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}
	lex, err := sentiment.NewLexicon()
	if err != nil {
		t.Fatalf("NewLexicon failed: %v", err)
	}
	cfg := &store.Config{}
	cfg.Scan.MaxArticles = 50
	return NewServer(cfg, &news.StaticSource{Articles: articles}, symbols.NewExtractor(dict), sentiment.NewScorer(lex))
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected healthy, got %q", body["status"])
	}
	if body["timestamp"] == "" {
		t.Error("expected a timestamp")
	}
}

func TestScanPortfolioRejectsBadBody(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodPost, "/api/scan-portfolio", "not json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", rec.Code)
	}

	rec = doRequest(t, s, http.MethodPost, "/api/scan-portfolio", `{"stocks": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty stocks, got %d", rec.Code)
	}

	rec = doRequest(t, s, http.MethodPost, "/api/scan-portfolio", `{"stocks": ["  ", ""]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for blank stocks, got %d", rec.Code)
	}
}

func TestScanPortfolioRunsBackgroundJob(t *testing.T) {
	s := newTestServer(t, []string{
		"Reliance Industries reports strong Q3 results with record profit growth",
	})

	rec := doRequest(t, s, http.MethodPost, "/api/scan-portfolio", `{"stocks": ["reliance"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var started map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&started); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	id := started["analysis_id"]
	if id == "" {
		t.Fatal("expected an analysis id")
	}
	if started["status"] != "started" {
		t.Errorf("expected status started, got %q", started["status"])
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		job, ok := s.jobs.Get(id)
		if !ok {
			t.Fatal("job vanished from the store")
		}
		if job.Status == StatusCompleted {
			if job.Result == nil || job.Result.TotalStocksAnalyzed != 1 {
				t.Fatalf("unexpected result: %+v", job.Result)
			}
			if job.Result.StockInsights[0].Symbol != "RELIANCE" {
				t.Errorf("expected RELIANCE insight, got %q", job.Result.StockInsights[0].Symbol)
			}
			return
		}
		if job.Status == StatusFailed {
			t.Fatalf("job failed: %s", job.Error)
		}
		if time.Now().After(deadline) {
			t.Fatalf("job did not complete, stuck at %s (%d%%)", job.Status, job.Progress)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAnalysisStatusUnknownID(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(t, s, http.MethodGet, "/api/analysis-status/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "not_found" {
		t.Errorf("expected not_found, got %q", body["status"])
	}
}

func TestAnalyzeStocksReturnsInsights(t *testing.T) {
	s := newTestServer(t, []string{
		"TCS wins major deal, revenue growth beats estimates",
		"RELIANCE shares crash on fraud probe fears",
	})

	rec := doRequest(t, s, http.MethodPost, "/api/analyze-stocks", `{"stocks": ["TCS", "RELIANCE"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp AnalysisResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Mock {
		t.Error("mentioned stocks should produce a real analysis")
	}
	if resp.TotalStocksAnalyzed != 2 {
		t.Errorf("expected 2 stocks analyzed, got %d", resp.TotalStocksAnalyzed)
	}
	if len(resp.StockInsights) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(resp.StockInsights))
	}
	// Insights follow request order.
	if resp.StockInsights[0].Symbol != "TCS" || resp.StockInsights[1].Symbol != "RELIANCE" {
		t.Errorf("unexpected insight order: %q, %q",
			resp.StockInsights[0].Symbol, resp.StockInsights[1].Symbol)
	}
}

func TestAnalyzeStocksFallsBackToMock(t *testing.T) {
	s := newTestServer(t, []string{"the weather was pleasant over the weekend"})

	rec := doRequest(t, s, http.MethodPost, "/api/analyze-stocks", `{"stocks": ["WIPRO"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp AnalysisResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !resp.Mock {
		t.Error("unmentioned stocks should fall back to a mock analysis")
	}
	if len(resp.StockInsights) != 1 || resp.StockInsights[0].Symbol != "WIPRO" {
		t.Errorf("expected a WIPRO mock insight, got %+v", resp.StockInsights)
	}
}

func TestNewsEndpoint(t *testing.T) {
	s := newTestServer(t, []string{
		news.FormatArticle("Markets rally on strong earnings", "Indices hit record high as profit growth beats estimates"),
		news.FormatArticle("IT stocks slump", "Sector faces crisis as clients cut spending"),
	})

	rec := doRequest(t, s, http.MethodGet, "/api/news", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Articles []struct {
			Title     string `json:"title"`
			Content   string `json:"content"`
			Sentiment string `json:"sentiment"`
		} `json:"articles"`
		TotalArticles int `json:"total_articles"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.TotalArticles != 2 {
		t.Fatalf("expected 2 articles, got %d", resp.TotalArticles)
	}
	if resp.Articles[0].Title != "Markets rally on strong earnings" {
		t.Errorf("unexpected title: %q", resp.Articles[0].Title)
	}
	if resp.Articles[0].Sentiment != "positive" {
		t.Errorf("expected positive sentiment, got %q", resp.Articles[0].Sentiment)
	}
}

func TestMockAnalysisShape(t *testing.T) {
	s := newTestServer(t, nil)
	resp := s.mockAnalysis([]string{"RELIANCE", "TCS", "WIPRO"})

	if !resp.Mock {
		t.Error("mock analysis must be flagged")
	}
	if resp.TotalStocksAnalyzed != 3 || len(resp.StockInsights) != 3 {
		t.Fatalf("expected 3 insights, got %d", len(resp.StockInsights))
	}
	total := resp.SentimentBreakdown.Positive + resp.SentimentBreakdown.Negative + resp.SentimentBreakdown.Neutral
	if total != 3 {
		t.Errorf("breakdown should cover every stock, got %d", total)
	}
	if resp.StockInsights[0].Company != "Reliance" {
		t.Errorf("expected the dictionary company name, got %q", resp.StockInsights[0].Company)
	}
}
