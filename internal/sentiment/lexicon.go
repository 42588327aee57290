package sentiment

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon.yaml
var lexiconYAML []byte

// Lexicon holds the word and phrase sets driving the scorer. Words are
// matched per token, phrases by substring with double weight.
type Lexicon struct {
	positiveWords  map[string]struct{}
	negativeWords  map[string]struct{}
	marketPositive []string
	marketNegative []string
}

// NewLexicon loads the embedded lexicon. An empty or malformed lexicon is a
// build defect and fails loudly.
func NewLexicon() (*Lexicon, error) {
	var lf struct {
		PositiveWords  []string `yaml:"positive_words"`
		NegativeWords  []string `yaml:"negative_words"`
		MarketPositive []string `yaml:"market_positive"`
		MarketNegative []string `yaml:"market_negative"`
	}
	if err := yaml.Unmarshal(lexiconYAML, &lf); err != nil {
		return nil, fmt.Errorf("parse lexicon data: %w", err)
	}
	if len(lf.PositiveWords) == 0 || len(lf.NegativeWords) == 0 {
		return nil, fmt.Errorf("lexicon word lists are empty")
	}
	if len(lf.MarketPositive) == 0 || len(lf.MarketNegative) == 0 {
		return nil, fmt.Errorf("lexicon phrase lists are empty")
	}

	l := &Lexicon{
		positiveWords:  make(map[string]struct{}, len(lf.PositiveWords)),
		negativeWords:  make(map[string]struct{}, len(lf.NegativeWords)),
		marketPositive: make([]string, 0, len(lf.MarketPositive)),
		marketNegative: make([]string, 0, len(lf.MarketNegative)),
	}
	for _, w := range lf.PositiveWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			return nil, fmt.Errorf("empty entry in positive word list")
		}
		l.positiveWords[w] = struct{}{}
	}
	for _, w := range lf.NegativeWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			return nil, fmt.Errorf("empty entry in negative word list")
		}
		l.negativeWords[w] = struct{}{}
	}
	for _, p := range lf.MarketPositive {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return nil, fmt.Errorf("empty entry in market positive phrase list")
		}
		l.marketPositive = append(l.marketPositive, p)
	}
	for _, p := range lf.MarketNegative {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return nil, fmt.Errorf("empty entry in market negative phrase list")
		}
		l.marketNegative = append(l.marketNegative, p)
	}
	return l, nil
}

func (l *Lexicon) isPositive(word string) bool {
	_, ok := l.positiveWords[word]
	return ok
}

func (l *Lexicon) isNegative(word string) bool {
	_, ok := l.negativeWords[word]
	return ok
}
