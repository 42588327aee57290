package insight

import (
	"strings"
	"testing"

	"portfolio-scanner/internal/types"
)

func agg(sentiment string, confidence float64, mentions int) types.StockSentiment {
	return types.StockSentiment{
		OverallSentiment: sentiment,
		Confidence:       confidence,
		Mentions:         mentions,
	}
}

func TestRecommendationRuleOrder(t *testing.T) {
	tests := []struct {
		name string
		in   types.StockSentiment
		want string
	}{
		{
			// Matches both BUY rules; the strong variant must win.
			name: "strong positive beats generic buy",
			in:   agg(types.SentimentPositive, 0.75, 3),
			want: "BUY - Strong positive sentiment with high confidence",
		},
		{
			name: "positive without enough mentions falls to generic buy",
			in:   agg(types.SentimentPositive, 0.75, 2),
			want: "BUY - Positive sentiment, consider for portfolio",
		},
		{
			name: "strong negative",
			in:   agg(types.SentimentNegative, 0.8, 4),
			want: "SELL - Strong negative sentiment, consider exiting",
		},
		{
			name: "moderate negative holds",
			in:   agg(types.SentimentNegative, 0.6, 1),
			want: "HOLD - Negative sentiment, monitor closely",
		},
		{
			name: "neutral with high volume",
			in:   agg(types.SentimentNeutral, 0.5, 6),
			want: "HOLD - High news volume, wait for clearer direction",
		},
		{
			name: "neutral default",
			in:   agg(types.SentimentNeutral, 0.5, 1),
			want: "HOLD - Neutral sentiment, maintain current position",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateStockInsight("RELIANCE", "Reliance", tt.in)
			if got.Recommendation != tt.want {
				t.Errorf("got %q, want %q", got.Recommendation, tt.want)
			}
		})
	}
}

func TestRiskLevel(t *testing.T) {
	tests := []struct {
		in   types.StockSentiment
		want string
	}{
		{agg(types.SentimentPositive, 0.85, 5), types.RiskHigh},
		{agg(types.SentimentPositive, 0.7, 3), types.RiskMedium},
		{agg(types.SentimentPositive, 0.9, 2), types.RiskLow},
		{agg(types.SentimentNeutral, 0.5, 1), types.RiskLow},
	}
	for _, tt := range tests {
		got := GenerateStockInsight("TCS", "Tata Consultancy Services", tt.in)
		if got.RiskLevel != tt.want {
			t.Errorf("risk for conf=%.2f mentions=%d: got %s, want %s",
				tt.in.Confidence, tt.in.Mentions, got.RiskLevel, tt.want)
		}
	}
}

func TestTimeHorizon(t *testing.T) {
	if got := GenerateStockInsight("TCS", "", agg(types.SentimentNegative, 0.8, 1)); got.TimeHorizon != "short" {
		t.Errorf("strong negative should be short horizon, got %s", got.TimeHorizon)
	}
	if got := GenerateStockInsight("TCS", "", agg(types.SentimentNeutral, 0.9, 1)); got.TimeHorizon != "medium" {
		t.Errorf("neutral should be medium horizon regardless of confidence, got %s", got.TimeHorizon)
	}
}

func TestPriceOutlook(t *testing.T) {
	tests := []struct {
		in   types.StockSentiment
		want string
	}{
		{agg(types.SentimentPositive, 0.8, 5), "Bullish - Strong positive momentum expected"},
		{agg(types.SentimentPositive, 0.8, 2), "Moderately Bullish - Positive trend developing"},
		{agg(types.SentimentNegative, 0.8, 6), "Bearish - Strong negative pressure expected"},
		{agg(types.SentimentNegative, 0.8, 1), "Moderately Bearish - Negative trend developing"},
		{agg(types.SentimentPositive, 0.6, 9), "Neutral - Mixed signals, sideways movement likely"},
	}
	for _, tt := range tests {
		got := GenerateStockInsight("HDFC", "HDFC Bank", tt.in)
		if got.PriceOutlook != tt.want {
			t.Errorf("outlook for %s conf=%.2f mentions=%d: got %q, want %q",
				tt.in.OverallSentiment, tt.in.Confidence, tt.in.Mentions, got.PriceOutlook, tt.want)
		}
	}
}

func TestKeyFactorsOrder(t *testing.T) {
	got := GenerateStockInsight("RELIANCE", "Reliance", agg(types.SentimentPositive, 0.8, 5))
	want := []string{
		"High media attention",
		"Strong sentiment signal",
		"Positive news flow",
		"Potential upside opportunity",
		"Multiple news sources confirming trend",
	}
	if len(got.KeyFactors) != len(want) {
		t.Fatalf("got %d factors, want %d: %v", len(got.KeyFactors), len(want), got.KeyFactors)
	}
	for i := range want {
		if got.KeyFactors[i] != want[i] {
			t.Errorf("factor %d: got %q, want %q", i, got.KeyFactors[i], want[i])
		}
	}
}

func TestActionItemsAlwaysIncludeClosers(t *testing.T) {
	for _, in := range []types.StockSentiment{
		agg(types.SentimentPositive, 0.9, 6),
		agg(types.SentimentNegative, 0.65, 1),
		agg(types.SentimentNeutral, 0.5, 0),
	} {
		got := GenerateStockInsight("ITC", "ITC", in)
		n := len(got.ActionItems)
		if n < 2 {
			t.Fatalf("expected at least 2 action items, got %v", got.ActionItems)
		}
		if got.ActionItems[n-2] != "Review quarterly results and management commentary" ||
			got.ActionItems[n-1] != "Check analyst upgrades/downgrades" {
			t.Errorf("missing closing action items: %v", got.ActionItems)
		}
	}
}

func TestHighConvictionActionItem(t *testing.T) {
	got := GenerateStockInsight("INFY", "Infosys", agg(types.SentimentPositive, 0.85, 2))
	var found bool
	for _, a := range got.ActionItems {
		if a == "Consider increasing position size for high conviction" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected high-conviction action item, got %v", got.ActionItems)
	}
}

func TestSectorResolution(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"RELIANCE", "Energy & Petrochemicals"},
		{"TCS", "IT Services"},
		{"HDFCBANK", "Banking & Financial Services"},
		{"TATAMOTORS", "Conglomerate"},
		{"TATACONSULTANCY", "Conglomerate"},
		{"ZOMATO", "Unknown"},
	}
	for _, tt := range tests {
		got := GenerateStockInsight(tt.symbol, "", agg(types.SentimentNeutral, 0.5, 1))
		if got.Sector != tt.want {
			t.Errorf("sector for %s: got %q, want %q", tt.symbol, got.Sector, tt.want)
		}
	}
}

func TestSectorImpact(t *testing.T) {
	got := GenerateStockInsight("RELIANCE", "Reliance", agg(types.SentimentPositive, 0.8, 4))
	if got.SectorImpact != "Positive sector impact expected in Energy & Petrochemicals" {
		t.Errorf("unexpected sector impact: %q", got.SectorImpact)
	}

	got = GenerateStockInsight("RELIANCE", "Reliance", agg(types.SentimentPositive, 0.8, 2))
	if !strings.HasPrefix(got.SectorImpact, "Monitor ") {
		t.Errorf("low-mention stock should get monitor guidance, got %q", got.SectorImpact)
	}
}
