package main

import (
	"context"
	"log"
	"os"
	"time"

	"portfolio-scanner/internal/logger"
	"portfolio-scanner/internal/sentiment"
	"portfolio-scanner/internal/server"
	"portfolio-scanner/internal/symbols"
	"portfolio-scanner/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	dict, err := symbols.NewDictionary()
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load symbol dictionary", err)
		os.Exit(1)
	}
	lex, err := sentiment.NewLexicon()
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load sentiment lexicon", err)
		os.Exit(1)
	}

	source := buildSource(ctx, cfg)
	srv := server.NewServer(cfg, source, symbols.NewExtractor(dict), sentiment.NewScorer(lex))

	if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
		logger.ErrorWithErr(ctx, "Server stopped with error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = trace.Shutdown(shutdownCtx)

	logger.Info(ctx, "Server stopped")
}
