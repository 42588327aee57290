package types

// Confidence tiers assigned by the symbol extractor depending on how a
// candidate was matched.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Sentiment classifications shared by the scorer, aggregator and insight
// engine.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Risk levels assigned per stock by the insight engine.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// SymbolCandidate is one extracted symbol with its resolved company name
// ("Unknown" when only a surface pattern matched) and confidence tier.
type SymbolCandidate struct {
	Symbol     string `json:"symbol"`
	Company    string `json:"company"`
	Confidence string `json:"confidence"`
}

// SentimentResult is the lexicon score of a single article text.
type SentimentResult struct {
	Sentiment     string  `json:"sentiment"`
	Confidence    float64 `json:"confidence"`
	PositiveScore float64 `json:"positive_score"`
	NegativeScore float64 `json:"negative_score"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
}

// StockSentiment aggregates per-article sentiment for one symbol across a
// batch. Confidence is the mean of the per-article confidences recorded on
// each mention; SentimentRatio keeps the majority-proportion value that the
// mean supersedes, for diagnostics.
type StockSentiment struct {
	Mentions         int     `json:"total_mentions"`
	PositiveArticles int     `json:"positive_articles"`
	NegativeArticles int     `json:"negative_articles"`
	NeutralArticles  int     `json:"neutral_articles"`
	OverallSentiment string  `json:"overall_sentiment"`
	Confidence       float64 `json:"confidence"`
	SentimentRatio   float64 `json:"sentiment_ratio"`
}

// StockInsight is the rule-engine output for one symbol.
type StockInsight struct {
	Symbol         string   `json:"symbol"`
	Company        string   `json:"company"`
	Mentions       int      `json:"mentions"`
	Sentiment      string   `json:"sentiment"`
	Confidence     float64  `json:"confidence"`
	Recommendation string   `json:"recommendation"`
	RiskLevel      string   `json:"risk_level"`
	TimeHorizon    string   `json:"time_horizon"`
	PriceOutlook   string   `json:"price_outlook"`
	KeyFactors     []string `json:"key_factors"`
	ActionItems    []string `json:"action_items"`
	Sector         string   `json:"sector"`
	SectorImpact   string   `json:"sector_impact"`
}

// PortfolioInsight rolls a set of stock insights into a portfolio view.
type PortfolioInsight struct {
	PortfolioSentiment      string             `json:"portfolio_sentiment"`
	TotalStocksAnalyzed     int                `json:"total_stocks_analyzed"`
	SentimentBreakdown      SentimentBreakdown `json:"sentiment_breakdown"`
	RiskBreakdown           RiskBreakdown      `json:"risk_breakdown"`
	TopBuyRecommendations   []StockInsight     `json:"top_buy_recommendations"`
	TopSellRecommendations  []StockInsight     `json:"top_sell_recommendations"`
	PortfolioRecommendation string             `json:"portfolio_recommendation"`
	KeyRisks                []string           `json:"key_risks"`
	Opportunities           []string           `json:"opportunities"`
}

type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

type RiskBreakdown struct {
	HighRisk   int `json:"high_risk"`
	MediumRisk int `json:"medium_risk"`
	LowRisk    int `json:"low_risk"`
}

// SymbolCount pairs a symbol with its mention frequency across a batch.
type SymbolCount struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// ScanResult bundles everything one scan produces.
type ScanResult struct {
	ArticlesAnalyzed  int                       `json:"articles_analyzed"`
	StocksFound       int                       `json:"stocks_found"`
	StockFrequency    []SymbolCount             `json:"stock_frequency"`
	StockSentiments   map[string]StockSentiment `json:"stock_sentiments"`
	TopStocks         []SymbolCount             `json:"top_stocks"`
	StockInsights     []StockInsight            `json:"stock_insights"`
	PortfolioInsights PortfolioInsight          `json:"portfolio_insights"`
	Timestamp         string                    `json:"analysis_timestamp"`
	Report            string                    `json:"-"`
}
