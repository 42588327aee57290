package insight

import (
	"fmt"
	"strings"

	"portfolio-scanner/internal/types"
)

const sectorUnknown = "Unknown"

// sectorTable maps symbol fragments to sectors. Evaluated in order, first
// fragment contained in the symbol wins, so broad fragments like TATA sit
// after the specific ones.
var sectorTable = []struct {
	fragment string
	sector   string
}{
	{"RELIANCE", "Energy & Petrochemicals"},
	{"TCS", "IT Services"},
	{"HDFC", "Banking & Financial Services"},
	{"INFOSYS", "IT Services"},
	{"ICICI", "Banking & Financial Services"},
	{"KOTAK", "Banking & Financial Services"},
	{"ITC", "FMCG & Tobacco"},
	{"BHARTI", "Telecommunications"},
	{"MARUTI", "Automotive"},
	{"TATA", "Conglomerate"},
}

func sectorFor(symbol string) string {
	upper := strings.ToUpper(symbol)
	for _, entry := range sectorTable {
		if strings.Contains(upper, entry.fragment) {
			return entry.sector
		}
	}
	return sectorUnknown
}

func sectorImpact(sector string, agg types.StockSentiment) string {
	if agg.Mentions >= 3 {
		switch agg.OverallSentiment {
		case types.SentimentPositive:
			return fmt.Sprintf("Positive sector impact expected in %s", sector)
		case types.SentimentNegative:
			return fmt.Sprintf("Negative sector impact possible in %s", sector)
		}
	}
	return fmt.Sprintf("Monitor %s sector for broader trends", sector)
}
