package sentiment

import (
	"regexp"
	"strings"

	"portfolio-scanner/internal/types"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// Scorer classifies article text against the lexicon.
type Scorer struct {
	lex *Lexicon
}

func NewScorer(lex *Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Score tokenizes the text, counts positive and negative lexicon words,
// adds a double-weight bonus for each market phrase present, and classifies
// by comparing the two normalized scores. A tie, including empty text,
// comes out neutral with confidence 0.5.
func (s *Scorer) Score(text string) types.SentimentResult {
	textLower := strings.ToLower(text)
	words := wordPattern.FindAllString(textLower, -1)
	totalWords := len(words)

	positiveCount := 0
	negativeCount := 0
	for _, w := range words {
		if s.lex.isPositive(w) {
			positiveCount++
		} else if s.lex.isNegative(w) {
			negativeCount++
		}
	}

	for _, phrase := range s.lex.marketPositive {
		if strings.Contains(textLower, phrase) {
			positiveCount += 2
		}
	}
	for _, phrase := range s.lex.marketNegative {
		if strings.Contains(textLower, phrase) {
			negativeCount += 2
		}
	}

	var positiveScore, negativeScore float64
	if totalWords > 0 {
		positiveScore = float64(positiveCount) / float64(totalWords)
		negativeScore = float64(negativeCount) / float64(totalWords)
	}

	result := types.SentimentResult{
		PositiveScore: positiveScore,
		NegativeScore: negativeScore,
		PositiveCount: positiveCount,
		NegativeCount: negativeCount,
	}
	switch {
	case positiveScore > negativeScore:
		result.Sentiment = types.SentimentPositive
		result.Confidence = positiveScore
	case negativeScore > positiveScore:
		result.Sentiment = types.SentimentNegative
		result.Confidence = negativeScore
	default:
		result.Sentiment = types.SentimentNeutral
		result.Confidence = 0.5
	}
	return result
}
