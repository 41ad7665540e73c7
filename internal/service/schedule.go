package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marecop/yellowair-sub000/internal/domain"
)

const (
	// DefaultScheduleDays is the length of a batch schedule window.
	DefaultScheduleDays = 7
	// MaxScheduleDays bounds the window a single request may ask for.
	MaxScheduleDays = 31
)

// Searcher runs one flight search.
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) (SearchResult, error)
}

// DestinationLister lists the international gateways reachable from origin.
type DestinationLister interface {
	International(exclude string) []domain.Airport
}

// ScheduleService builds multi-day schedules from one origin to every
// international destination.
type ScheduleService struct {
	search       Searcher
	destinations DestinationLister
	log          *slog.Logger
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(search Searcher, destinations DestinationLister, log *slog.Logger) *ScheduleService {
	if log == nil {
		log = slog.Default()
	}
	return &ScheduleService{search: search, destinations: destinations, log: log}
}

// Build returns economy flights from origin to every international
// destination for each of days consecutive dates starting at start, ordered
// by day then destination code. Returns domain.ErrValidation for a blank
// origin or a window outside 1..MaxScheduleDays.
func (s *ScheduleService) Build(ctx context.Context, origin string, start time.Time, days int) ([]domain.Flight, error) {
	origin = domain.SearchRequest{From: origin}.Normalize().From
	if origin == "" {
		return nil, fmt.Errorf("service.ScheduleService.Build: %w: origin is required", domain.ErrValidation)
	}
	if days < 1 || days > MaxScheduleDays {
		return nil, fmt.Errorf("service.ScheduleService.Build: %w: days must be between 1 and %d", domain.ErrValidation, MaxScheduleDays)
	}

	dests := s.destinations.International(origin)
	flights := []domain.Flight{}
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d).Format(domain.DateLayout)
		for _, dest := range dests {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("service.ScheduleService.Build: %w", err)
			}
			res, err := s.search.Search(ctx, domain.SearchRequest{
				From:       origin,
				To:         dest.Code,
				Date:       date,
				CabinClass: domain.CabinEconomy,
			})
			if err != nil {
				return nil, fmt.Errorf("service.ScheduleService.Build: %s %s: %w", dest.Code, date, err)
			}
			flights = append(flights, res.Flights...)
		}
		s.log.InfoContext(ctx, "schedule day generated", "origin", origin, "date", date, "destinations", len(dests), "flights", len(flights))
	}
	return flights, nil
}
