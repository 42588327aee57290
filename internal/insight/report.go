package insight

import (
	"fmt"
	"strings"
	"time"

	"portfolio-scanner/internal/types"
)

// FormatReport renders stock and portfolio insights as a plain-text report
// for terminal output and scan logs.
func FormatReport(stockInsights []types.StockInsight, portfolio types.PortfolioInsight) string {
	var b strings.Builder

	b.WriteString("PORTFOLIO SCANNER INSIGHTS REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString(fmt.Sprintf("Generated on: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	b.WriteString("PORTFOLIO OVERVIEW\n")
	b.WriteString(strings.Repeat("-", 25) + "\n")
	b.WriteString(fmt.Sprintf("Total Stocks Analyzed: %d\n", portfolio.TotalStocksAnalyzed))
	b.WriteString(fmt.Sprintf("Overall Sentiment: %s\n", strings.ToUpper(portfolio.PortfolioSentiment)))
	b.WriteString(fmt.Sprintf("Portfolio Recommendation: %s\n\n", portfolio.PortfolioRecommendation))

	b.WriteString("SENTIMENT BREAKDOWN\n")
	b.WriteString(strings.Repeat("-", 22) + "\n")
	b.WriteString(fmt.Sprintf("Positive: %d stocks\n", portfolio.SentimentBreakdown.Positive))
	b.WriteString(fmt.Sprintf("Negative: %d stocks\n", portfolio.SentimentBreakdown.Negative))
	b.WriteString(fmt.Sprintf("Neutral: %d stocks\n\n", portfolio.SentimentBreakdown.Neutral))

	b.WriteString("RISK ASSESSMENT\n")
	b.WriteString(strings.Repeat("-", 18) + "\n")
	b.WriteString(fmt.Sprintf("High Risk: %d stocks\n", portfolio.RiskBreakdown.HighRisk))
	b.WriteString(fmt.Sprintf("Medium Risk: %d stocks\n", portfolio.RiskBreakdown.MediumRisk))
	b.WriteString(fmt.Sprintf("Low Risk: %d stocks\n\n", portfolio.RiskBreakdown.LowRisk))

	writeRecommendations(&b, "TOP BUY RECOMMENDATIONS", portfolio.TopBuyRecommendations)
	writeRecommendations(&b, "TOP SELL RECOMMENDATIONS", portfolio.TopSellRecommendations)

	b.WriteString("INDIVIDUAL STOCK ANALYSIS\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	for _, stock := range stockInsights {
		b.WriteString(fmt.Sprintf("\n%s (%s)\n", stock.Symbol, stock.Company))
		b.WriteString(fmt.Sprintf("   Mentions: %d\n", stock.Mentions))
		b.WriteString(fmt.Sprintf("   Sentiment: %s (Confidence: %.2f)\n", strings.ToUpper(stock.Sentiment), stock.Confidence))
		b.WriteString(fmt.Sprintf("   Recommendation: %s\n", stock.Recommendation))
		b.WriteString(fmt.Sprintf("   Risk Level: %s\n", strings.ToUpper(stock.RiskLevel)))
		b.WriteString(fmt.Sprintf("   Time Horizon: %s\n", stock.TimeHorizon))
		b.WriteString(fmt.Sprintf("   Price Outlook: %s\n", stock.PriceOutlook))
		if len(stock.KeyFactors) > 0 {
			b.WriteString(fmt.Sprintf("   Key Factors: %s\n", strings.Join(stock.KeyFactors, ", ")))
		}
		if len(stock.ActionItems) > 0 {
			b.WriteString("   Action Items:\n")
			for _, item := range stock.ActionItems {
				b.WriteString(fmt.Sprintf("     - %s\n", item))
			}
		}
	}

	if len(portfolio.KeyRisks) > 0 {
		b.WriteString("\nKEY PORTFOLIO RISKS\n")
		b.WriteString(strings.Repeat("-", 25) + "\n")
		for _, risk := range portfolio.KeyRisks {
			b.WriteString(fmt.Sprintf("- %s\n", risk))
		}
	}
	if len(portfolio.Opportunities) > 0 {
		b.WriteString("\nPORTFOLIO OPPORTUNITIES\n")
		b.WriteString(strings.Repeat("-", 27) + "\n")
		for _, opportunity := range portfolio.Opportunities {
			b.WriteString(fmt.Sprintf("- %s\n", opportunity))
		}
	}

	b.WriteString("\n" + strings.Repeat("=", 50) + "\n")
	b.WriteString("DISCLAIMER: This analysis is based on news sentiment and should not be considered as financial advice. Please consult with a financial advisor before making investment decisions.\n")

	return b.String()
}

func writeRecommendations(b *strings.Builder, title string, stocks []types.StockInsight) {
	if len(stocks) == 0 {
		return
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", 28) + "\n")
	for _, stock := range stocks {
		b.WriteString(fmt.Sprintf("- %s (%s)\n", stock.Symbol, stock.Company))
		b.WriteString(fmt.Sprintf("  %s\n", stock.Recommendation))
		b.WriteString(fmt.Sprintf("  Risk: %s, Confidence: %.2f\n\n", strings.ToUpper(stock.RiskLevel), stock.Confidence))
	}
}
