package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marecop/yellowair-sub000/internal/airport"
	"github.com/marecop/yellowair-sub000/internal/cache"
	"github.com/marecop/yellowair-sub000/internal/domain"
	"github.com/marecop/yellowair-sub000/internal/engine"
	"github.com/marecop/yellowair-sub000/internal/service"
)

// ---- mocks -----------------------------------------------------------------

// mockSearcher is a hand-written test double for service.Searcher.
type mockSearcher struct {
	search func(ctx context.Context, req domain.SearchRequest) (service.SearchResult, error)
}

func (m *mockSearcher) Search(ctx context.Context, req domain.SearchRequest) (service.SearchResult, error) {
	return m.search(ctx, req)
}

var _ service.Searcher = (*mockSearcher)(nil)

// stubDestinations is a fixed service.DestinationLister.
type stubDestinations []domain.Airport

func (s stubDestinations) International(exclude string) []domain.Airport {
	out := []domain.Airport{}
	for _, a := range s {
		if a.Code != exclude {
			out = append(out, a)
		}
	}
	return out
}

var start = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

// ---- Build -----------------------------------------------------------------

func TestScheduleService_Build_OrderByDayThenDestination(t *testing.T) {
	var seen []string
	searcher := &mockSearcher{search: func(_ context.Context, req domain.SearchRequest) (service.SearchResult, error) {
		seen = append(seen, req.Date+" "+req.To)
		assert.Equal(t, domain.CabinEconomy, req.CabinClass)
		return service.SearchResult{Flights: []domain.Flight{{ID: req.Date + req.To}}}, nil
	}}
	svc := service.NewScheduleService(searcher, stubDestinations{{Code: "HKG"}, {Code: "CAN"}, {Code: "NRT"}}, nil)

	flights, err := svc.Build(context.Background(), "can", start, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"2025-03-14 HKG", "2025-03-14 NRT",
		"2025-03-15 HKG", "2025-03-15 NRT",
	}, seen)
	require.Len(t, flights, 4)
	assert.Equal(t, "2025-03-15NRT", flights[3].ID)
}

func TestScheduleService_Build_Validation(t *testing.T) {
	svc := service.NewScheduleService(&mockSearcher{}, stubDestinations{}, nil)

	_, err := svc.Build(context.Background(), " ", start, 7)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Build(context.Background(), "CAN", start, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Build(context.Background(), "CAN", start, service.MaxScheduleDays+1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_Build_SearchError(t *testing.T) {
	boom := errors.New("boom")
	searcher := &mockSearcher{search: func(context.Context, domain.SearchRequest) (service.SearchResult, error) {
		return service.SearchResult{}, boom
	}}
	svc := service.NewScheduleService(searcher, stubDestinations{{Code: "HKG"}}, nil)

	_, err := svc.Build(context.Background(), "CAN", start, 1)

	assert.ErrorIs(t, err, boom)
}

func TestScheduleService_Build_ContextCancelled(t *testing.T) {
	svc := service.NewScheduleService(&mockSearcher{}, stubDestinations{{Code: "HKG"}}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Build(ctx, "CAN", start, 1)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestScheduleService_Build_WeekFromCAN(t *testing.T) {
	c, err := airport.Default()
	require.NoError(t, err)
	search := service.NewSearchService(engine.NewSynthesizer(airport.NewResolver(c)), cache.NewFlightCache(cache.DefaultCapacity), 0, nil)
	svc := service.NewScheduleService(search, c, nil)

	flights, err := svc.Build(context.Background(), "CAN", start, service.DefaultScheduleDays)

	require.NoError(t, err)
	require.NotEmpty(t, flights)
	dests := map[string]bool{}
	for _, f := range flights {
		assert.Equal(t, "CAN", f.DepartureAirportCode)
		a, ok := c.Lookup(f.ArrivalAirportCode)
		require.True(t, ok)
		assert.True(t, a.International)
		dests[f.ArrivalAirportCode] = true
	}
	assert.Len(t, dests, len(c.International("CAN")))
}
