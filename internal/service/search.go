// Package service contains the business logic of the flight engine API.
// Services validate inputs and orchestrate the engine, the result cache and
// the airport catalog. No HTTP or SQL lives here.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marecop/yellowair-sub000/internal/cache"
	"github.com/marecop/yellowair-sub000/internal/domain"
	"github.com/marecop/yellowair-sub000/internal/engine"
)

// FlightGenerator produces the flights for a normalized search.
type FlightGenerator interface {
	Generate(req domain.SearchRequest, rng engine.Rand) []domain.Flight
}

// ResultCache stores search results by composite key.
type ResultCache interface {
	Get(key string) ([]domain.Flight, bool)
	Put(key string, flights []domain.Flight)
}

// SearchResult is the outcome of a search. Request echoes the normalized
// criteria the flights were generated for.
type SearchResult struct {
	Request  domain.SearchRequest
	Flights  []domain.Flight
	CacheHit bool
}

// SearchService runs flight searches through the result cache.
type SearchService struct {
	gen   FlightGenerator
	cache ResultCache
	seed  int64
	log   *slog.Logger
}

// NewSearchService constructs a SearchService. seed is the base from which
// every search derives its own random stream. A nil cache disables caching.
func NewSearchService(gen FlightGenerator, c ResultCache, seed int64, log *slog.Logger) *SearchService {
	if log == nil {
		log = slog.Default()
	}
	return &SearchService{gen: gen, cache: c, seed: seed, log: log}
}

// Search validates req and returns its flights, direct flights first.
// A blank origin or destination yields an empty result, not an error.
// Returns domain.ErrValidation for a malformed code, date or cabin class.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (SearchResult, error) {
	req, err := validateSearch(req)
	if err != nil {
		return SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}
	if req.From == "" || req.To == "" {
		return SearchResult{Request: req, Flights: []domain.Flight{}}, nil
	}
	if err := ctx.Err(); err != nil {
		return SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}

	key := cache.Key(req.From, req.To, req.Date, req.CabinClass)
	if s.cache == nil {
		return SearchResult{Request: req, Flights: s.gen.Generate(req, engine.KeyedRand(s.seed, key))}, nil
	}
	if flights, ok := s.cache.Get(key); ok {
		s.log.DebugContext(ctx, "search cache hit", "key", key, "flights", len(flights))
		return SearchResult{Request: req, Flights: flights, CacheHit: true}, nil
	}

	flights := s.gen.Generate(req, engine.KeyedRand(s.seed, key))
	s.cache.Put(key, flights)
	s.log.DebugContext(ctx, "search cache miss", "key", key, "flights", len(flights))

	return SearchResult{Request: req, Flights: flights}, nil
}

// validateSearch normalizes req and enforces its format rules.
//   - From and To, when set, are three ASCII letters.
//   - Date is required and formatted as domain.DateLayout.
//   - CabinClass is empty (economy) or a known class.
func validateSearch(req domain.SearchRequest) (domain.SearchRequest, error) {
	req = req.Normalize()

	for _, code := range []string{req.From, req.To} {
		if code != "" && !isAirportCode(code) {
			return req, fmt.Errorf("%w: airport code %q must be 3 letters", domain.ErrValidation, code)
		}
	}

	if req.Date == "" {
		return req, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return req, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrValidation, req.Date)
	}

	class, ok := domain.ParseCabinClass(string(req.CabinClass))
	if !ok {
		return req, fmt.Errorf("%w: unknown cabin class %q", domain.ErrValidation, req.CabinClass)
	}
	req.CabinClass = class
	return req, nil
}

func isAirportCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
