package insight

import (
	"strings"
	"testing"

	"portfolio-scanner/internal/types"
)

func TestFormatReportSections(t *testing.T) {
	insights := []types.StockInsight{
		GenerateStockInsight("RELIANCE", "Reliance", agg(types.SentimentPositive, 0.8, 5)),
		GenerateStockInsight("TCS", "Tata Consultancy Services", agg(types.SentimentNegative, 0.75, 3)),
	}
	portfolio := GeneratePortfolioInsight(insights)

	report := FormatReport(insights, portfolio)

	for _, section := range []string{
		"PORTFOLIO SCANNER INSIGHTS REPORT",
		"PORTFOLIO OVERVIEW",
		"SENTIMENT BREAKDOWN",
		"RISK ASSESSMENT",
		"TOP BUY RECOMMENDATIONS",
		"TOP SELL RECOMMENDATIONS",
		"INDIVIDUAL STOCK ANALYSIS",
		"DISCLAIMER",
	} {
		if !strings.Contains(report, section) {
			t.Errorf("report missing section %q", section)
		}
	}

	if !strings.Contains(report, "RELIANCE (Reliance)") {
		t.Error("report missing per-stock heading")
	}
	if !strings.Contains(report, "Total Stocks Analyzed: 2") {
		t.Error("report missing stock count")
	}
}

func TestFormatReportOmitsEmptySections(t *testing.T) {
	insights := []types.StockInsight{
		GenerateStockInsight("ITC", "ITC", agg(types.SentimentNeutral, 0.5, 1)),
	}
	portfolio := GeneratePortfolioInsight(insights)

	report := FormatReport(insights, portfolio)

	if strings.Contains(report, "TOP BUY RECOMMENDATIONS") {
		t.Error("buy section should be omitted when there are no BUY recommendations")
	}
	if strings.Contains(report, "TOP SELL RECOMMENDATIONS") {
		t.Error("sell section should be omitted when there are no SELL recommendations")
	}
}
