package airport

import (
	"strings"

	"github.com/marecop/yellowair-sub000/internal/domain"
	"github.com/marecop/yellowair-sub000/internal/geo"
)

const (
	// Placeholders are scattered around this hub (Guangzhou Baiyun).
	referenceLat = 23.3924
	referenceLng = 113.2988

	placeholderMinKm = 500.0
	placeholderMaxKm = 5000.0

	homeCountry = "China"
)

// Rand is the randomness the placeholder policy draws from.
type Rand interface {
	Float64() float64
}

// countryPrefixes maps leading letters of a code to a rough country or
// region. The table follows ICAO region prefixes; it is a guess, not a
// lookup, and two-letter entries take precedence over one-letter ones.
var countryPrefixes = map[string]string{
	"RJ": "Japan",
	"RK": "South Korea",
	"RC": "Taiwan",
	"RP": "Philippines",
	"VH": "Hong Kong",
	"VM": "Macau",
	"VT": "Thailand",
	"WS": "Singapore",
	"WM": "Malaysia",
	"Z":  homeCountry,
	"K":  "United States",
	"C":  "Canada",
	"Y":  "Australia",
	"E":  "Northern Europe",
	"L":  "Southern Europe",
	"U":  "Russia",
	"V":  "South Asia",
	"W":  "Southeast Asia",
	"O":  "Middle East",
	"H":  "East Africa",
	"F":  "Southern Africa",
	"S":  "South America",
	"M":  "Central America",
	"N":  "Pacific",
	"P":  "Pacific",
}

// GuessCountry infers a country label from the first letters of code.
func GuessCountry(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) >= 2 {
		if c, ok := countryPrefixes[code[:2]]; ok {
			return c
		}
	}
	if len(code) >= 1 {
		if c, ok := countryPrefixes[code[:1]]; ok {
			return c
		}
	}
	return "Unknown"
}

// Resolver resolves airport codes against a Catalog and makes up a
// placeholder record for codes the catalog does not know.
type Resolver struct {
	catalog *Catalog
}

// NewResolver returns a Resolver backed by catalog.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Catalog returns the catalog the resolver looks codes up in.
func (r *Resolver) Catalog() *Catalog { return r.catalog }

// Resolve returns the airport for code. Unknown non-blank codes yield a
// placeholder; only a blank code reports false.
func (r *Resolver) Resolve(code string, rng Rand) (domain.Airport, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domain.Airport{}, false
	}
	if a, ok := r.catalog.Lookup(code); ok {
		return a, true
	}
	return Placeholder(code, rng), true
}

// Placeholder synthesizes an airport for an unknown code. Its position lies
// on a random bearing 500–5000 km away from the reference hub.
func Placeholder(code string, rng Rand) domain.Airport {
	code = strings.ToUpper(strings.TrimSpace(code))
	bearing := rng.Float64() * 360
	distance := placeholderMinKm + rng.Float64()*(placeholderMaxKm-placeholderMinKm)
	p := geo.Destination(geo.Point{Lat: referenceLat, Lng: referenceLng}, bearing, distance)

	country := GuessCountry(code)
	return domain.Airport{
		Code:          code,
		Name:          code + " Airport",
		City:          code,
		Country:       country,
		Latitude:      p.Lat,
		Longitude:     p.Lng,
		International: country != homeCountry,
		TimeZone:      "UTC",
		Placeholder:   true,
	}
}
