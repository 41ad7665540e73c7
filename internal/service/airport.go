package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/marecop/yellowair-sub000/internal/domain"
	"github.com/marecop/yellowair-sub000/internal/repo"
)

// AirportReader is the paged read side of an airport store.
// repo.AirportRepo satisfies it, as does CatalogReader.
type AirportReader interface {
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Airport, int64, error)
	GetByCode(ctx context.Context, code string) (domain.Airport, error)
}

// AirportCatalog is the in-memory airport reference data.
type AirportCatalog interface {
	All() []domain.Airport
	Lookup(code string) (domain.Airport, bool)
}

// CatalogReader serves an in-memory catalog through AirportReader.
type CatalogReader struct {
	catalog AirportCatalog
}

// NewCatalogReader wraps catalog.
func NewCatalogReader(catalog AirportCatalog) *CatalogReader {
	return &CatalogReader{catalog: catalog}
}

// ListPaged returns one page of airports ordered by code and the total count.
func (c *CatalogReader) ListPaged(_ context.Context, p domain.PaginationParams) ([]domain.Airport, int64, error) {
	all := c.catalog.All()
	from, to := p.Bounds(len(all))
	page := make([]domain.Airport, to-from)
	copy(page, all[from:to])
	return page, int64(len(all)), nil
}

// GetByCode returns domain.ErrNotFound when the catalog has no such code.
func (c *CatalogReader) GetByCode(_ context.Context, code string) (domain.Airport, error) {
	a, ok := c.catalog.Lookup(code)
	if !ok {
		return domain.Airport{}, domain.ErrNotFound
	}
	return a, nil
}

// AirportService serves the airport catalog.
type AirportService struct {
	reader AirportReader
}

// NewAirportService constructs an AirportService reading from r.
func NewAirportService(r AirportReader) *AirportService {
	return &AirportService{reader: r}
}

// List returns one page of airports ordered by code and the total count.
// Always returns a non-nil slice on success.
func (s *AirportService) List(ctx context.Context, p domain.PaginationParams) ([]domain.Airport, int64, error) {
	page, total, err := s.reader.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.AirportService.List: %w", err)
	}
	if page == nil {
		page = []domain.Airport{}
	}
	return page, total, nil
}

// Get returns a single airport, matching code case-insensitively.
// Returns domain.ErrNotFound if there is no such code.
func (s *AirportService) Get(ctx context.Context, code string) (domain.Airport, error) {
	a, err := s.reader.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return domain.Airport{}, fmt.Errorf("service.AirportService.Get: %w", err)
	}
	return a, nil
}

// LoadAirports returns the airports stored in r. When the table is empty it
// is seeded with seed first.
func LoadAirports(ctx context.Context, r repo.AirportRepo, seed []domain.Airport, log *slog.Logger) ([]domain.Airport, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.LoadAirports: %w", err)
	}
	if n == 0 && len(seed) > 0 {
		written, err := r.Upsert(ctx, seed)
		if err != nil {
			return nil, fmt.Errorf("service.LoadAirports: seed: %w", err)
		}
		if log != nil {
			log.InfoContext(ctx, "airport catalog seeded", "rows", written)
		}
	}
	airports, err := r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.LoadAirports: %w", err)
	}
	return airports, nil
}
