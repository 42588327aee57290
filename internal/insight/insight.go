// Package insight turns per-symbol sentiment aggregates into actionable
// stock and portfolio recommendations via ordered rule tables. Rules are
// evaluated top to bottom and the first match wins.
package insight

import (
	"portfolio-scanner/internal/types"
)

// GenerateStockInsight evaluates the rule tables for one symbol.
func GenerateStockInsight(symbol, company string, agg types.StockSentiment) types.StockInsight {
	sector := sectorFor(symbol)
	return types.StockInsight{
		Symbol:         symbol,
		Company:        company,
		Mentions:       agg.Mentions,
		Sentiment:      agg.OverallSentiment,
		Confidence:     agg.Confidence,
		Recommendation: recommendation(agg),
		RiskLevel:      riskLevel(agg),
		TimeHorizon:    timeHorizon(agg),
		PriceOutlook:   priceOutlook(agg),
		KeyFactors:     keyFactors(agg),
		ActionItems:    actionItems(agg),
		Sector:         sector,
		SectorImpact:   sectorImpact(sector, agg),
	}
}

func recommendation(agg types.StockSentiment) string {
	sentiment, confidence, mentions := agg.OverallSentiment, agg.Confidence, agg.Mentions
	switch {
	case sentiment == types.SentimentPositive && confidence > 0.7 && mentions >= 3:
		return "BUY - Strong positive sentiment with high confidence"
	case sentiment == types.SentimentPositive && confidence > 0.5:
		return "BUY - Positive sentiment, consider for portfolio"
	case sentiment == types.SentimentNegative && confidence > 0.7 && mentions >= 3:
		return "SELL - Strong negative sentiment, consider exiting"
	case sentiment == types.SentimentNegative && confidence > 0.5:
		return "HOLD - Negative sentiment, monitor closely"
	case mentions >= 5:
		return "HOLD - High news volume, wait for clearer direction"
	default:
		return "HOLD - Neutral sentiment, maintain current position"
	}
}

func riskLevel(agg types.StockSentiment) string {
	switch {
	case agg.Mentions >= 5 && agg.Confidence > 0.8:
		// High attention plus high confidence reads as high risk.
		return types.RiskHigh
	case agg.Mentions >= 3 && agg.Confidence > 0.6:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

func timeHorizon(agg types.StockSentiment) string {
	strong := agg.Confidence > 0.7 &&
		(agg.OverallSentiment == types.SentimentPositive || agg.OverallSentiment == types.SentimentNegative)
	if strong {
		return "short"
	}
	return "medium"
}

func priceOutlook(agg types.StockSentiment) string {
	sentiment, confidence, mentions := agg.OverallSentiment, agg.Confidence, agg.Mentions
	switch {
	case sentiment == types.SentimentPositive && confidence > 0.7 && mentions >= 5:
		return "Bullish - Strong positive momentum expected"
	case sentiment == types.SentimentPositive && confidence > 0.7:
		return "Moderately Bullish - Positive trend developing"
	case sentiment == types.SentimentNegative && confidence > 0.7 && mentions >= 5:
		return "Bearish - Strong negative pressure expected"
	case sentiment == types.SentimentNegative && confidence > 0.7:
		return "Moderately Bearish - Negative trend developing"
	default:
		return "Neutral - Mixed signals, sideways movement likely"
	}
}

func keyFactors(agg types.StockSentiment) []string {
	var factors []string
	if agg.Mentions >= 5 {
		factors = append(factors, "High media attention")
	}
	if agg.Confidence > 0.7 {
		factors = append(factors, "Strong sentiment signal")
	}
	switch agg.OverallSentiment {
	case types.SentimentPositive:
		factors = append(factors, "Positive news flow", "Potential upside opportunity")
	case types.SentimentNegative:
		factors = append(factors, "Negative news flow", "Downside risk present")
	}
	if agg.Mentions >= 3 {
		factors = append(factors, "Multiple news sources confirming trend")
	}
	return factors
}

func actionItems(agg types.StockSentiment) []string {
	var actions []string
	switch {
	case agg.OverallSentiment == types.SentimentPositive && agg.Confidence > 0.6:
		actions = append(actions,
			"Consider adding to portfolio if not already held",
			"Set stop-loss at 5-10% below current price")
		if agg.Confidence > 0.8 {
			actions = append(actions, "Consider increasing position size for high conviction")
		}
	case agg.OverallSentiment == types.SentimentNegative && agg.Confidence > 0.6:
		actions = append(actions,
			"Review current position and consider reducing exposure",
			"Set tighter stop-loss to protect capital")
		if agg.Confidence > 0.8 {
			actions = append(actions, "Consider exiting position if risk tolerance is low")
		}
	default:
		actions = append(actions,
			"Monitor news flow for clearer direction",
			"Maintain current position size")
	}
	if agg.Mentions >= 5 {
		actions = append(actions,
			"Set up price alerts for significant moves",
			"Monitor earnings calendar for upcoming events")
	}
	actions = append(actions,
		"Review quarterly results and management commentary",
		"Check analyst upgrades/downgrades")
	return actions
}
