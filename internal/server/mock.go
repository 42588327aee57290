package server

import (
	"math/rand"

	"portfolio-scanner/internal/types"
)

// mockAnalysis fabricates a plausible-looking analysis for symbols absent
// from today's news. The response is flagged so clients can tell it apart
// from real data.
func (s *Server) mockAnalysis(stocks []string) *AnalysisResponse {
	recommendations := []string{"BUY", "SELL", "HOLD"}
	outlooks := []string{"Bullish", "Bearish", "Neutral"}
	factors := []string{"Strong earnings", "Market volatility", "Sector growth", "Regulatory changes"}
	actions := []string{"Monitor closely", "Consider adding", "Hold position", "Review quarterly results"}
	sentiments := []string{types.SentimentPositive, types.SentimentNegative, types.SentimentNeutral}
	risks := []string{types.RiskLow, types.RiskMedium, types.RiskHigh}

	dict := s.extractor.Dictionary()
	var breakdown types.SentimentBreakdown
	insights := make([]types.StockInsight, 0, len(stocks))
	for _, symbol := range stocks {
		sentiment := sentiments[rand.Intn(len(sentiments))]
		switch sentiment {
		case types.SentimentPositive:
			breakdown.Positive++
		case types.SentimentNegative:
			breakdown.Negative++
		default:
			breakdown.Neutral++
		}
		insights = append(insights, types.StockInsight{
			Symbol:         symbol,
			Company:        dict.CompanyFor(symbol),
			Mentions:       1 + rand.Intn(10),
			Sentiment:      sentiment,
			Confidence:     0.3 + rand.Float64()*0.6,
			Recommendation: recommendations[rand.Intn(len(recommendations))],
			RiskLevel:      risks[rand.Intn(len(risks))],
			PriceOutlook:   outlooks[rand.Intn(len(outlooks))],
			KeyFactors:     []string{factors[rand.Intn(len(factors))]},
			ActionItems:    []string{actions[rand.Intn(len(actions))]},
		})
	}

	portfolioSentiment := types.SentimentNeutral
	if breakdown.Positive > breakdown.Negative {
		portfolioSentiment = types.SentimentPositive
	} else if breakdown.Negative > breakdown.Positive {
		portfolioSentiment = types.SentimentNegative
	}

	return &AnalysisResponse{
		PortfolioSentiment:  portfolioSentiment,
		TotalStocksAnalyzed: len(stocks),
		SentimentBreakdown:  breakdown,
		StockInsights:       insights,
		Mock:                true,
	}
}
