package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marecop/yellowair-sub000/internal/domain"
)

func intPtr(v int) *int { return &v }

// ---- pagination ----

func TestNewPaginationParams(t *testing.T) {
	tests := []struct {
		name        string
		page, limit *int
		want        domain.PaginationParams
	}{
		{"defaults", nil, nil, domain.PaginationParams{Page: 1, Limit: domain.DefaultPageLimit}},
		{"explicit", intPtr(3), intPtr(5), domain.PaginationParams{Page: 3, Limit: 5}},
		{"non-positive ignored", intPtr(0), intPtr(-1), domain.PaginationParams{Page: 1, Limit: domain.DefaultPageLimit}},
		{"limit capped", nil, intPtr(1000), domain.PaginationParams{Page: 1, Limit: domain.MaxPageLimit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NewPaginationParams(tt.page, tt.limit))
		})
	}
}

func TestPaginationParams_Bounds(t *testing.T) {
	p := domain.PaginationParams{Page: 2, Limit: 10}
	assert.Equal(t, 10, p.Offset())

	from, to := p.Bounds(25)
	assert.Equal(t, 10, from)
	assert.Equal(t, 20, to)

	from, to = p.Bounds(15)
	assert.Equal(t, 10, from)
	assert.Equal(t, 15, to)

	from, to = p.Bounds(5)
	assert.Equal(t, 5, from)
	assert.Equal(t, 5, to)
}

// ---- search request ----

func TestSearchRequest_Normalize(t *testing.T) {
	got := domain.SearchRequest{From: " can", To: "jfk ", Date: " 2025-03-14 ", CabinClass: " Business"}.Normalize()

	assert.Equal(t, domain.SearchRequest{From: "CAN", To: "JFK", Date: "2025-03-14", CabinClass: domain.CabinBusiness}, got)
}

func TestParseCabinClass(t *testing.T) {
	for in, want := range map[string]domain.CabinClass{
		"":         domain.CabinEconomy,
		"economy":  domain.CabinEconomy,
		"BUSINESS": domain.CabinBusiness,
		" first ":  domain.CabinFirst,
	} {
		got, ok := domain.ParseCabinClass(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := domain.ParseCabinClass("premium")
	assert.False(t, ok)
}

// ---- flights ----

func TestCabinAvailability_Offers(t *testing.T) {
	a := domain.CabinAvailability{Economy: true, Business: true}

	assert.True(t, a.Offers(domain.CabinEconomy))
	assert.True(t, a.Offers(domain.CabinBusiness))
	assert.False(t, a.Offers(domain.CabinFirst))
}

func TestAirport_IsDomesticWith(t *testing.T) {
	pek := domain.Airport{Code: "PEK", TimeZone: "Asia/Shanghai"}
	ctu := domain.Airport{Code: "CTU", TimeZone: "Asia/Shanghai"}
	can := domain.Airport{Code: "CAN", TimeZone: "Asia/Shanghai", International: true}
	hkg := domain.Airport{Code: "HKG", TimeZone: "Asia/Hong_Kong"}

	assert.True(t, pek.IsDomesticWith(ctu))
	assert.False(t, pek.IsDomesticWith(can))
	assert.False(t, pek.IsDomesticWith(hkg))
}

func TestCloneFlights_DoesNotShareStops(t *testing.T) {
	orig := []domain.Flight{{ID: "a", Stops: []domain.FlightStop{{AirportCode: "DXB"}}}}

	cp := domain.CloneFlights(orig)
	cp[0].Stops[0].AirportCode = "DOH"

	assert.Equal(t, "DXB", orig[0].Stops[0].AirportCode)
	assert.Nil(t, domain.CloneFlights(nil))
}

func TestNewExportRow_JoinsStops(t *testing.T) {
	f := domain.Flight{
		ID:       "x",
		Duration: 600,
		HasStops: true,
		Stops:    []domain.FlightStop{{AirportCode: "DXB"}, {AirportCode: "IST"}},
		Prices:   domain.Prices{Economy: 1, Business: 2, First: 3},
	}

	row := domain.NewExportRow(f)

	assert.Equal(t, "DXB;IST", row.Stops)
	assert.Equal(t, 600, row.DurationMinutes)
	assert.Equal(t, 3, row.FirstPrice)
	assert.Equal(t, "", domain.NewExportRow(domain.Flight{}).Stops)
}

func TestParseExportFormat(t *testing.T) {
	f, ok := domain.ParseExportFormat("")
	assert.True(t, ok)
	assert.Equal(t, domain.ExportJSON, f)

	f, ok = domain.ParseExportFormat("csv")
	assert.True(t, ok)
	assert.Equal(t, domain.ExportCSV, f)

	_, ok = domain.ParseExportFormat("xml")
	assert.False(t, ok)
}
