// Package domain contains the core data types for the YellowAir flight engine.
// It has no dependencies on other internal packages and is imported by all of them.
package domain

// Airport is an immutable reference record. Code is the unique 3-letter key.
type Airport struct {
	Code          string  `json:"code" yaml:"code"`
	Name          string  `json:"name" yaml:"name"`
	City          string  `json:"city" yaml:"city"`
	Country       string  `json:"country" yaml:"country"`
	Latitude      float64 `json:"latitude" yaml:"lat"`
	Longitude     float64 `json:"longitude" yaml:"lng"`
	International bool    `json:"international" yaml:"international"`
	TimeZone      string  `json:"timezone" yaml:"tz"`

	// Placeholder marks records synthesized for codes missing from the catalog.
	Placeholder bool `json:"placeholder,omitempty" yaml:"-"`
}

// IsDomesticWith reports whether a route between a and b counts as domestic:
// both airports share a time zone and neither is an international gateway.
func (a Airport) IsDomesticWith(b Airport) bool {
	return a.TimeZone == b.TimeZone && !a.International && !b.International
}
