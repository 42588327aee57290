package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-scanner/internal/logger"
	"portfolio-scanner/internal/scanlog"
	"portfolio-scanner/internal/scanner"
	"portfolio-scanner/internal/sentiment"
	"portfolio-scanner/internal/symbols"
	"portfolio-scanner/internal/trace"
)

func main() {
	if err := initializeSystem(); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		logger.Warn(ctx, "Interrupted, cancelling scan")
		cancel()
	}()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}
	compressOldLogs(ctx, cfg)

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
	scn := scanner.New(source, symbols.NewExtractor(dict), sentiment.NewScorer(lex),
		cfg.Scan.MaxArticles, cfg.Scan.TopN)

	logger.Info(ctx, "Starting portfolio scan",
		"max_articles", cfg.Scan.MaxArticles, "sources", cfg.News.Sources)

	result, err := scn.Scan(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Scan failed", err)
		os.Exit(1)
	}

	fmt.Println(result.Report)

	if path, err := scanlog.SaveResult(result); err != nil {
		logger.Warn(ctx, "Failed to persist scan result", "error", err)
	} else {
		logger.Info(ctx, "Scan result saved", "file", path)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = trace.Shutdown(shutdownCtx)
}
