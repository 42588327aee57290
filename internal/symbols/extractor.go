package symbols

import (
	"regexp"
	"sort"
	"strings"

	"portfolio-scanner/internal/types"
)

const companyUnknown = "Unknown"

// surfacePatterns match 2-6 letter uppercase tokens and short mixed
// alphanumeric tokens.
var surfacePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z]{2,6}\b`),
	regexp.MustCompile(`\b[A-Z]{1,2}[0-9]{1,4}\b`),
}

var validCharset = regexp.MustCompile(`^[A-Z0-9\-\.]+$`)

// Extractor finds stock symbol candidates in free text using the alias
// dictionary plus a surface-pattern fallback.
type Extractor struct {
	dict *Dictionary
}

func NewExtractor(dict *Dictionary) *Extractor {
	return &Extractor{dict: dict}
}

// Dictionary exposes the underlying alias table.
func (e *Extractor) Dictionary() *Dictionary {
	return e.dict
}

// Extract returns deduplicated symbol candidates ranked by confidence tier.
// Alias hits are high confidence when the alias is longer than 3 characters,
// medium otherwise. Unmatched uppercase tokens that survive validity
// filtering become low-confidence candidates. Discovery order is preserved
// within a tier.
func (e *Extractor) Extract(text string) []types.SymbolCandidate {
	textUpper := strings.ToUpper(text)

	var found []types.SymbolCandidate
	for _, c := range e.dict.Companies() {
		for _, alias := range c.Aliases {
			if strings.Contains(textUpper, alias) {
				conf := types.ConfidenceMedium
				if len(alias) > 3 {
					conf = types.ConfidenceHigh
				}
				found = append(found, types.SymbolCandidate{
					Symbol:     alias,
					Company:    c.Name,
					Confidence: conf,
				})
			}
		}
	}

	for _, pattern := range surfacePatterns {
		for _, match := range pattern.FindAllString(textUpper, -1) {
			if containsSymbol(found, match) {
				continue
			}
			// Pattern candidates need at least 3 characters, and either a
			// digit or 4+ characters, before they count as plausible symbols.
			if e.isValidSymbol(match) && len(match) >= 3 {
				if hasDigit(match) || len(match) >= 4 {
					found = append(found, types.SymbolCandidate{
						Symbol:     match,
						Company:    companyUnknown,
						Confidence: types.ConfidenceLow,
					})
				}
			}
		}
	}

	unique := make([]types.SymbolCandidate, 0, len(found))
	seen := make(map[string]struct{}, len(found))
	for _, cand := range found {
		if _, ok := seen[cand.Symbol]; ok {
			continue
		}
		seen[cand.Symbol] = struct{}{}
		unique = append(unique, cand)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return confidenceRank(unique[i].Confidence) < confidenceRank(unique[j].Confidence)
	})

	return unique
}

// isValidSymbol applies the surface-pattern validity filter: length 2-10,
// at least one letter, not all digits, charset A-Z 0-9 hyphen period, and
// not a common English word.
func (e *Extractor) isValidSymbol(symbol string) bool {
	if len(symbol) < 2 || len(symbol) > 10 {
		return false
	}
	if !hasLetter(symbol) {
		return false
	}
	if allDigits(symbol) {
		return false
	}
	if !validCharset.MatchString(symbol) {
		return false
	}
	if e.dict.isStopword(symbol) {
		return false
	}
	return true
}

// Frequency counts how many articles each extracted symbol appears in,
// ordered by descending count with first-seen order breaking ties.
func (e *Extractor) Frequency(articles []string) []types.SymbolCount {
	counts := make(map[string]int)
	var order []string

	for _, article := range articles {
		for _, cand := range e.Extract(article) {
			if _, ok := counts[cand.Symbol]; !ok {
				order = append(order, cand.Symbol)
			}
			counts[cand.Symbol]++
		}
	}

	out := make([]types.SymbolCount, 0, len(order))
	for _, sym := range order {
		out = append(out, types.SymbolCount{Symbol: sym, Count: counts[sym]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// TopSymbols returns the n most frequently mentioned symbols.
func (e *Extractor) TopSymbols(articles []string, n int) []types.SymbolCount {
	freq := e.Frequency(articles)
	if len(freq) > n {
		freq = freq[:n]
	}
	return freq
}

func containsSymbol(cands []types.SymbolCandidate, symbol string) bool {
	for _, c := range cands {
		if c.Symbol == symbol {
			return true
		}
	}
	return false
}

func confidenceRank(c string) int {
	switch c {
	case types.ConfidenceHigh:
		return 0
	case types.ConfidenceMedium:
		return 1
	default:
		return 2
	}
}

func hasLetter(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
