// Package handler implements the HTTP API of the flight engine.
// Handlers are methods on Server and are split into per-resource files.
// They bind and check request parameters, call a service and map the result
// or error onto a JSON response.
package handler

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/marecop/yellowair-sub000/internal/domain"
	"github.com/marecop/yellowair-sub000/internal/service"
)

// FlightSearcher runs flight searches.
type FlightSearcher interface {
	Search(ctx context.Context, req domain.SearchRequest) (service.SearchResult, error)
}

// ScheduleBuilder builds multi-day batch schedules.
type ScheduleBuilder interface {
	Build(ctx context.Context, origin string, start time.Time, days int) ([]domain.Flight, error)
}

// AirportLister serves the airport catalog.
type AirportLister interface {
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Airport, int64, error)
	Get(ctx context.Context, code string) (domain.Airport, error)
}

// Server holds the dependencies shared by all handlers.
type Server struct {
	search   FlightSearcher
	schedule ScheduleBuilder
	airports AirportLister
	log      *slog.Logger
	now      func() time.Time
}

// NewServer constructs the Server. A nil logger discards output.
func NewServer(search FlightSearcher, schedule ScheduleBuilder, airports AirportLister, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		search:   search,
		schedule: schedule,
		airports: airports,
		log:      log,
		now:      time.Now,
	}
}
