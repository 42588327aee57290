// Package scanlog persists scan results on disk: a daily JSONL summary feed
// plus one full JSON document per scan. Old files are gzipped after the
// retention window.
package scanlog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"portfolio-scanner/internal/types"
)

var mu sync.Mutex

var ist = time.FixedZone("IST", 19800)

// Entry is one line in the daily summary feed.
type Entry struct {
	Time               string         `json:"time"`
	ArticlesAnalyzed   int            `json:"articles_analyzed"`
	StocksFound        int            `json:"stocks_found"`
	PortfolioSentiment string         `json:"portfolio_sentiment"`
	TopSymbol          string         `json:"top_symbol,omitempty"`
	Extra              map[string]any `json:"extra,omitempty"`
}

func logDir() string {
	if v := os.Getenv("SCANNER_LOG_DIR"); v != "" {
		return v
	}
	return "scans"
}

func dailyFilepath(t time.Time) string {
	d := t.In(ist).Format("2006-01-02")
	return filepath.Join(logDir(), d+".txt")
}

func resultFilepath(t time.Time) string {
	return filepath.Join(logDir(), "results", t.In(ist).Format("2006-01-02_150405")+".json")
}

// Append writes one summary entry to the daily feed.
func Append(e Entry) error {
	mu.Lock()
	defer mu.Unlock()
	now := time.Now().In(ist)
	e.Time = now.Format("2006-01-02 15:04:05")
	p := dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, _ := json.Marshal(e)
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// SaveResult writes the full scan result as a standalone JSON document and
// appends its summary to the daily feed. Returns the result file path.
func SaveResult(result *types.ScanResult) (string, error) {
	now := time.Now()
	p := resultFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return "", err
	}

	topSymbol := ""
	if len(result.TopStocks) > 0 {
		topSymbol = result.TopStocks[0].Symbol
	}
	err = Append(Entry{
		ArticlesAnalyzed:   result.ArticlesAnalyzed,
		StocksFound:        result.StocksFound,
		PortfolioSentiment: result.PortfolioInsights.PortfolioSentiment,
		TopSymbol:          topSymbol,
	})
	return p, err
}

// CompressOlder gzips files older than the retention window and removes the
// originals.
func CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	root := logDir()
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(p)
		if ext != ".txt" && ext != ".json" {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil {
			return nil
		}
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		if info.ModTime().Before(cutoff) {
			gz := p + ".gz"
			if _, e2 := os.Stat(gz); e2 == nil {
				_ = os.Remove(p)
				return nil
			}

			in, e3 := os.Open(p)
			if e3 != nil {
				return nil
			}
			defer in.Close()

			out, e4 := os.OpenFile(gz, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
			if e4 != nil {
				return nil
			}
			gw := gzip.NewWriter(out)
			if _, e5 := io.Copy(gw, in); e5 == nil {
				_ = gw.Close()
				_ = out.Close()
				_ = os.Remove(p)
			} else {
				_ = gw.Close()
				_ = out.Close()
			}
		}
		return nil
	})
}
