// Package server exposes the analysis pipeline over HTTP for the web
// frontend. Long-running portfolio scans run as background jobs polled
// through the status endpoint.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"portfolio-scanner/internal/logger"
	"portfolio-scanner/internal/news"
	"portfolio-scanner/internal/sentiment"
	"portfolio-scanner/internal/store"
	"portfolio-scanner/internal/symbols"
)

type Server struct {
	router      chi.Router
	jobs        *JobStore
	source      news.Source
	extractor   *symbols.Extractor
	scorer      *sentiment.Scorer
	maxArticles int
}

func NewServer(cfg *store.Config, source news.Source, extractor *symbols.Extractor, scorer *sentiment.Scorer) *Server {
	s := &Server{
		jobs:        NewJobStore(),
		source:      source,
		extractor:   extractor,
		scorer:      scorer,
		maxArticles: cfg.Scan.MaxArticles,
	}
	s.router = s.buildRouter(cfg.Server.AllowedOrigins)
	return s
}

// Router exposes the configured handler, mainly for tests.
func (s *Server) Router() chi.Router {
	return s.router
}

func (s *Server) buildRouter(allowedOrigins []string) chi.Router {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/scan-portfolio", s.handleScanPortfolio)
		r.Get("/analysis-status/{id}", s.handleAnalysisStatus)
		r.Post("/analyze-stocks", s.handleAnalyzeStocks)
		r.Get("/news", s.handleNews)
		r.Get("/health", s.handleHealth)
	})
	return r
}

// ListenAndServe runs the HTTP server until SIGINT or SIGTERM, then shuts
// down gracefully.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(context.Background(), "HTTP server listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info(context.Background(), "Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(ctx)
}
