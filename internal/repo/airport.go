package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/marecop/yellowair-sub000/internal/domain"
)

// AirportRepo defines the persistence operations for the airport catalog.
type AirportRepo interface {
	// List returns every airport ordered by code.
	List(ctx context.Context) ([]domain.Airport, error)

	// ListPaged returns one page of airports ordered by code and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Airport, int64, error)

	// GetByCode returns a single airport.
	// Returns domain.ErrNotFound if no airport has that code.
	GetByCode(ctx context.Context, code string) (domain.Airport, error)

	// Count returns the number of stored airports.
	Count(ctx context.Context) (int64, error)

	// Upsert inserts airports, overwriting rows whose code already exists.
	// It returns the number of rows written.
	Upsert(ctx context.Context, airports []domain.Airport) (int64, error)
}

// pgAirportRepo is the Postgres implementation of AirportRepo.
type pgAirportRepo struct {
	db db
}

// NewAirportRepo constructs an AirportRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewAirportRepo(db db) AirportRepo {
	return &pgAirportRepo{db: db}
}

const airportColumns = `code, name, city, country, latitude, longitude, international, time_zone`

func (r *pgAirportRepo) List(ctx context.Context) ([]domain.Airport, error) {
	q := `SELECT ` + airportColumns + ` FROM airports ORDER BY code`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.AirportRepo.List: %w", err)
	}
	airports, err := collectAirports(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.AirportRepo.List: %w", err)
	}
	return airports, nil
}

func (r *pgAirportRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Airport, int64, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.AirportRepo.ListPaged: %w", err)
	}

	q := `SELECT ` + airportColumns + `
		FROM airports
		ORDER BY code
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.AirportRepo.ListPaged: %w", err)
	}
	airports, err := collectAirports(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.AirportRepo.ListPaged: %w", err)
	}
	return airports, total, nil
}

func (r *pgAirportRepo) GetByCode(ctx context.Context, code string) (domain.Airport, error) {
	q := `SELECT ` + airportColumns + ` FROM airports WHERE code = @code`

	a, err := scanAirport(r.db.QueryRow(ctx, q, pgx.NamedArgs{"code": code}))
	if err != nil {
		return domain.Airport{}, fmt.Errorf("repo.AirportRepo.GetByCode: %w", err)
	}
	return a, nil
}

func (r *pgAirportRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM airports`).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.AirportRepo.Count: %w", err)
	}
	return n, nil
}

func (r *pgAirportRepo) Upsert(ctx context.Context, airports []domain.Airport) (int64, error) {
	const q = `
		INSERT INTO airports (code, name, city, country, latitude, longitude, international, time_zone)
		VALUES (@code, @name, @city, @country, @latitude, @longitude, @international, @time_zone)
		ON CONFLICT (code) DO UPDATE SET
		    name          = EXCLUDED.name,
		    city          = EXCLUDED.city,
		    country       = EXCLUDED.country,
		    latitude      = EXCLUDED.latitude,
		    longitude     = EXCLUDED.longitude,
		    international = EXCLUDED.international,
		    time_zone     = EXCLUDED.time_zone,
		    updated_at    = now()`

	var written int64
	for _, a := range airports {
		tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
			"code":          a.Code,
			"name":          a.Name,
			"city":          a.City,
			"country":       a.Country,
			"latitude":      a.Latitude,
			"longitude":     a.Longitude,
			"international": a.International,
			"time_zone":     a.TimeZone,
		})
		if err != nil {
			return written, fmt.Errorf("repo.AirportRepo.Upsert: %s: %w", a.Code, err)
		}
		written += tag.RowsAffected()
	}
	return written, nil
}

func collectAirports(rows pgx.Rows) ([]domain.Airport, error) {
	defer rows.Close()

	airports := []domain.Airport{}
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		airports = append(airports, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return airports, nil
}

// scanAirport maps a single database row into a domain.Airport.
func scanAirport(s scanner) (domain.Airport, error) {
	var a domain.Airport
	err := s.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Latitude, &a.Longitude, &a.International, &a.TimeZone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Airport{}, domain.ErrNotFound
		}
		return domain.Airport{}, err
	}
	return a, nil
}
