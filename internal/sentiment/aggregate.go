package sentiment

import (
	"strings"

	"portfolio-scanner/internal/types"
)

// AggregateStockSentiment scores each article once, attributes the result to
// every requested symbol appearing in that article, and folds the per-article
// results into one aggregate per mentioned symbol.
//
// Overall sentiment is the strict majority of positive vs negative article
// counts, with ties neutral. The majority proportion is kept in
// SentimentRatio; Confidence carries the mean of the per-article
// confidences recorded on each mention. Downstream rule thresholds expect
// the mean, not the proportion.
func (s *Scorer) AggregateStockSentiment(articles []string, symbols []string) map[string]types.StockSentiment {
	type accum struct {
		agg    types.StockSentiment
		scores []float64
	}
	bysym := make(map[string]*accum)

	for _, article := range articles {
		articleUpper := strings.ToUpper(article)
		result := s.Score(article)

		for _, symbol := range symbols {
			if !strings.Contains(articleUpper, strings.ToUpper(symbol)) {
				continue
			}
			a, ok := bysym[symbol]
			if !ok {
				a = &accum{agg: types.StockSentiment{OverallSentiment: types.SentimentNeutral}}
				bysym[symbol] = a
			}
			a.agg.Mentions++
			a.scores = append(a.scores, result.Confidence)
			switch result.Sentiment {
			case types.SentimentPositive:
				a.agg.PositiveArticles++
			case types.SentimentNegative:
				a.agg.NegativeArticles++
			default:
				a.agg.NeutralArticles++
			}
		}
	}

	out := make(map[string]types.StockSentiment, len(bysym))
	for symbol, a := range bysym {
		switch {
		case a.agg.PositiveArticles > a.agg.NegativeArticles:
			a.agg.OverallSentiment = types.SentimentPositive
			a.agg.SentimentRatio = float64(a.agg.PositiveArticles) / float64(a.agg.Mentions)
		case a.agg.NegativeArticles > a.agg.PositiveArticles:
			a.agg.OverallSentiment = types.SentimentNegative
			a.agg.SentimentRatio = float64(a.agg.NegativeArticles) / float64(a.agg.Mentions)
		default:
			a.agg.OverallSentiment = types.SentimentNeutral
			a.agg.SentimentRatio = 0.5
		}

		var sum float64
		for _, v := range a.scores {
			sum += v
		}
		a.agg.Confidence = sum / float64(len(a.scores))

		out[symbol] = a.agg
	}
	return out
}
