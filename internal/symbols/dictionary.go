package symbols

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/companies.yaml
var companiesYAML []byte

//go:embed data/stopwords.yaml
var stopwordsYAML []byte

// CompanyRecord maps a canonical company name to the alias strings (ticker
// symbols and name variants) it is known under.
type CompanyRecord struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// Dictionary is the static company/alias table with a derived reverse
// alias→company lookup. Loaded once, immutable afterwards.
type Dictionary struct {
	companies []CompanyRecord
	byAlias   map[string]string
	stopwords map[string]struct{}
}

// NewDictionary loads the embedded company and stopword tables. Malformed
// data is a configuration error and fails here, not per call.
func NewDictionary() (*Dictionary, error) {
	var cf struct {
		Companies []CompanyRecord `yaml:"companies"`
	}
	if err := yaml.Unmarshal(companiesYAML, &cf); err != nil {
		return nil, fmt.Errorf("parse companies data: %w", err)
	}
	if len(cf.Companies) == 0 {
		return nil, fmt.Errorf("companies data is empty")
	}

	var sf struct {
		Words []string `yaml:"words"`
	}
	if err := yaml.Unmarshal(stopwordsYAML, &sf); err != nil {
		return nil, fmt.Errorf("parse stopwords data: %w", err)
	}
	if len(sf.Words) == 0 {
		return nil, fmt.Errorf("stopword data is empty")
	}

	d := &Dictionary{
		companies: cf.Companies,
		byAlias:   make(map[string]string),
		stopwords: make(map[string]struct{}, len(sf.Words)),
	}

	for _, c := range cf.Companies {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("company record with empty name")
		}
		if len(c.Aliases) == 0 {
			return nil, fmt.Errorf("company %q has no aliases", c.Name)
		}
		for _, a := range c.Aliases {
			alias := strings.ToUpper(strings.TrimSpace(a))
			if alias == "" {
				return nil, fmt.Errorf("company %q has an empty alias", c.Name)
			}
			// Last declaration wins on duplicate aliases, mirroring the
			// reverse-map build order.
			d.byAlias[alias] = c.Name
		}
	}

	for _, w := range sf.Words {
		d.stopwords[strings.ToUpper(w)] = struct{}{}
	}

	return d, nil
}

// Companies returns the company records in declaration order.
func (d *Dictionary) Companies() []CompanyRecord {
	return d.companies
}

// CompanyFor resolves an alias to its canonical company name, or "Unknown".
func (d *Dictionary) CompanyFor(symbol string) string {
	if name, ok := d.byAlias[strings.ToUpper(symbol)]; ok {
		return name
	}
	return companyUnknown
}

// IsKnown reports whether the symbol is a declared alias.
func (d *Dictionary) IsKnown(symbol string) bool {
	_, ok := d.byAlias[strings.ToUpper(symbol)]
	return ok
}

func (d *Dictionary) isStopword(token string) bool {
	_, ok := d.stopwords[token]
	return ok
}
