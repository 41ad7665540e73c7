// Package airport holds the static airport reference data the flight engine
// resolves codes against, plus the placeholder policy for unknown codes.
package airport

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/marecop/yellowair-sub000/internal/domain"
)

//go:embed airports.yaml
var airportsYAML []byte

// Catalog is an immutable index of airports keyed by upper-case code.
// It is safe for concurrent use.
type Catalog struct {
	byCode map[string]domain.Airport
	sorted []domain.Airport
}

// NewCatalog builds a Catalog from airports. Codes are upper-cased; when a
// code appears twice the later record wins.
func NewCatalog(airports []domain.Airport) *Catalog {
	c := &Catalog{byCode: make(map[string]domain.Airport, len(airports))}
	for _, a := range airports {
		a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
		if a.Code == "" {
			continue
		}
		c.byCode[a.Code] = a
	}
	c.sorted = make([]domain.Airport, 0, len(c.byCode))
	for _, a := range c.byCode {
		c.sorted = append(c.sorted, a)
	}
	sort.Slice(c.sorted, func(i, j int) bool { return c.sorted[i].Code < c.sorted[j].Code })
	return c
}

// Lookup returns the airport registered under code, case-insensitively.
func (c *Catalog) Lookup(code string) (domain.Airport, bool) {
	a, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// All returns every airport ordered by code. The slice is a copy.
func (c *Catalog) All() []domain.Airport {
	return append([]domain.Airport(nil), c.sorted...)
}

// International returns the international gateways ordered by code,
// leaving out the airport whose code equals exclude.
func (c *Catalog) International(exclude string) []domain.Airport {
	exclude = strings.ToUpper(strings.TrimSpace(exclude))
	out := make([]domain.Airport, 0, len(c.sorted))
	for _, a := range c.sorted {
		if a.International && a.Code != exclude {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of airports in the catalog.
func (c *Catalog) Len() int { return len(c.sorted) }

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	airports, err := Parse(airportsYAML)
	if err != nil {
		return nil, err
	}
	return NewCatalog(airports), nil
})

// Default returns the catalog built from the embedded reference table.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Parse decodes a YAML airport table of the form {airports: [...]}.
func Parse(data []byte) ([]domain.Airport, error) {
	var doc struct {
		Airports []domain.Airport `yaml:"airports"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("airport.Parse: %w", err)
	}
	for i, a := range doc.Airports {
		if len(strings.TrimSpace(a.Code)) != 3 {
			return nil, fmt.Errorf("airport.Parse: entry %d: code %q is not 3 letters", i, a.Code)
		}
	}
	return doc.Airports, nil
}
