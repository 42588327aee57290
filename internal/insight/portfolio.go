package insight

import (
	"strings"

	"portfolio-scanner/internal/types"
)

const maxTopRecommendations = 5

// GeneratePortfolioInsight rolls individual stock insights into a
// portfolio-level view: majority sentiment, risk distribution, capped
// buy/sell shortlists and qualitative risk and opportunity notes.
func GeneratePortfolioInsight(insights []types.StockInsight) types.PortfolioInsight {
	p := types.PortfolioInsight{
		TotalStocksAnalyzed: len(insights),
	}

	for _, ins := range insights {
		switch ins.Sentiment {
		case types.SentimentPositive:
			p.SentimentBreakdown.Positive++
		case types.SentimentNegative:
			p.SentimentBreakdown.Negative++
		default:
			p.SentimentBreakdown.Neutral++
		}
		switch ins.RiskLevel {
		case types.RiskHigh:
			p.RiskBreakdown.HighRisk++
		case types.RiskMedium:
			p.RiskBreakdown.MediumRisk++
		default:
			p.RiskBreakdown.LowRisk++
		}
		if strings.Contains(ins.Recommendation, "BUY") && len(p.TopBuyRecommendations) < maxTopRecommendations {
			p.TopBuyRecommendations = append(p.TopBuyRecommendations, ins)
		}
		if strings.Contains(ins.Recommendation, "SELL") && len(p.TopSellRecommendations) < maxTopRecommendations {
			p.TopSellRecommendations = append(p.TopSellRecommendations, ins)
		}
	}

	switch {
	case p.SentimentBreakdown.Positive > p.SentimentBreakdown.Negative:
		p.PortfolioSentiment = types.SentimentPositive
	case p.SentimentBreakdown.Negative > p.SentimentBreakdown.Positive:
		p.PortfolioSentiment = types.SentimentNegative
	default:
		p.PortfolioSentiment = types.SentimentNeutral
	}

	p.PortfolioRecommendation = portfolioRecommendation(p.PortfolioSentiment, p.RiskBreakdown.HighRisk, len(insights))
	p.KeyRisks = portfolioRisks(insights)
	p.Opportunities = portfolioOpportunities(insights)
	return p
}

func portfolioRecommendation(sentiment string, highRisk, total int) string {
	var riskRatio float64
	if total > 0 {
		riskRatio = float64(highRisk) / float64(total)
	}
	switch {
	case sentiment == types.SentimentPositive && riskRatio < 0.3:
		return "Consider increasing equity allocation - positive sentiment with manageable risk"
	case sentiment == types.SentimentNegative && riskRatio > 0.5:
		return "Consider reducing equity allocation - negative sentiment with high risk"
	case riskRatio > 0.6:
		return "High risk exposure - consider diversification and risk management"
	default:
		return "Maintain current allocation - balanced risk-reward profile"
	}
}

func portfolioRisks(insights []types.StockInsight) []string {
	var risks []string

	highRisk := 0
	negative := 0
	sectorCounts := make(map[string]int)
	for _, ins := range insights {
		if ins.RiskLevel == types.RiskHigh {
			highRisk++
		}
		if ins.Sentiment == types.SentimentNegative {
			negative++
		}
		sectorCounts[ins.Sector]++
	}

	if highRisk > 3 {
		risks = append(risks, "High concentration of high-risk stocks")
	}
	if float64(negative) > float64(len(insights))*0.4 {
		risks = append(risks, "High proportion of negative sentiment stocks")
	}

	maxSector := 0
	for _, n := range sectorCounts {
		if n > maxSector {
			maxSector = n
		}
	}
	if float64(maxSector) > float64(len(insights))*0.5 {
		risks = append(risks, "High sector concentration - consider diversification")
	}
	return risks
}

func portfolioOpportunities(insights []types.StockInsight) []string {
	var opportunities []string

	positive := 0
	highConfidence := 0
	lowMentionPositive := false
	for _, ins := range insights {
		if ins.Sentiment == types.SentimentPositive {
			positive++
			if ins.Mentions < 3 {
				lowMentionPositive = true
			}
		}
		if ins.Confidence > 0.7 {
			highConfidence++
		}
	}

	if float64(positive) > float64(len(insights))*0.6 {
		opportunities = append(opportunities, "Strong positive sentiment across portfolio")
	}
	if highConfidence > 3 {
		opportunities = append(opportunities, "Multiple high-confidence opportunities identified")
	}
	if lowMentionPositive {
		opportunities = append(opportunities, "Potential undervalued opportunities with positive sentiment")
	}
	return opportunities
}
