package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marecop/yellowair-sub000/internal/airport"
	"github.com/marecop/yellowair-sub000/internal/domain"
	"github.com/marecop/yellowair-sub000/internal/engine"
	"github.com/marecop/yellowair-sub000/internal/geo"
)

// fixedRand returns the same draws every time.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return min(r.i, n-1) }

var _ engine.Rand = fixedRand{}

func defaultCatalog(t *testing.T) *airport.Catalog {
	t.Helper()
	c, err := airport.Default()
	require.NoError(t, err)
	return c
}

func mustAirport(t *testing.T, c *airport.Catalog, code string) domain.Airport {
	t.Helper()
	a, ok := c.Lookup(code)
	require.True(t, ok, code)
	return a
}

func pointOf(a domain.Airport) geo.Point {
	return geo.Point{Lat: a.Latitude, Lng: a.Longitude}
}

// ---- EstimateMinutes -------------------------------------------------------

func TestEstimateMinutes(t *testing.T) {
	cases := []struct {
		km   float64
		want int
	}{
		{0, 40},
		{1000, 160},
		{1499, 220},
		{1500, 160},
		{4999, 440},
		{5000, 393},
		{8000, 605},
		{9000, 705},
		{12000, 917},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, engine.EstimateMinutes(tc.km), "km=%v", tc.km)
	}
}

func TestEstimateMinutes_MonotonicWithinTier(t *testing.T) {
	tiers := [][2]float64{{0, 1499}, {1500, 4999}, {5000, 8000}, {8001, 20000}}
	for _, tier := range tiers {
		prev := engine.EstimateMinutes(tier[0])
		for km := tier[0]; km <= tier[1]; km += 37 {
			got := engine.EstimateMinutes(km)
			assert.GreaterOrEqual(t, got, prev, "km=%v", km)
			prev = got
		}
	}
}

// ---- Planner ---------------------------------------------------------------

func TestPlanner_IsDirect(t *testing.T) {
	p := engine.NewPlanner(nil)

	assert.False(t, p.IsDirect(10001, fixedRand{f: 0}), "long routes always connect")
	assert.True(t, p.IsDirect(10000, fixedRand{f: 0.1}))
	assert.True(t, p.IsDirect(1000, fixedRand{f: 0.75}), "short routes get the 0.8 draw")
	assert.False(t, p.IsDirect(1000, fixedRand{f: 0.85}))
	assert.False(t, p.IsDirect(6000, fixedRand{f: 0.75}))
	assert.True(t, p.IsDirect(6000, fixedRand{f: 0.5}))
}

func TestPlanner_StopCount(t *testing.T) {
	p := engine.NewPlanner(nil)

	assert.Equal(t, 2, p.StopCount(13000, fixedRand{f: 0.1}))
	assert.Equal(t, 1, p.StopCount(13000, fixedRand{f: 0.5}))
	assert.Equal(t, 1, p.StopCount(11000, fixedRand{f: 0.1}))
}

func TestPlanner_Layover(t *testing.T) {
	p := engine.NewPlanner(nil)

	assert.Equal(t, 60, p.Layover(fixedRand{i: 0}))
	assert.Equal(t, 180, p.Layover(fixedRand{i: 1000}))
}

func TestPlanner_Hubs_CANtoJFK(t *testing.T) {
	c := defaultCatalog(t)
	p := engine.NewPlanner(c.All())
	can := mustAirport(t, c, "CAN")
	jfk := mustAirport(t, c, "JFK")

	hubs := p.Hubs(can, jfk, 5)

	require.NotEmpty(t, hubs)
	assert.LessOrEqual(t, len(hubs), 5)
	for i, h := range hubs {
		assert.NotEqual(t, "CAN", h.Airport.Code)
		assert.NotEqual(t, "JFK", h.Airport.Code)
		assert.Less(t, h.Efficiency, engine.MaxDetour)
		if i > 0 {
			assert.LessOrEqual(t, hubs[i-1].Score, h.Score)
		}
	}
}

func TestPlanner_Hubs_SameAirport(t *testing.T) {
	c := defaultCatalog(t)
	p := engine.NewPlanner(c.All())
	can := mustAirport(t, c, "CAN")

	assert.Nil(t, p.Hubs(can, can, 5))
}

func TestPlanner_Hubs_NoneQualify(t *testing.T) {
	c := defaultCatalog(t)
	// SYD is far off any CAN-HKG path.
	p := engine.NewPlanner([]domain.Airport{mustAirport(t, c, "SYD")})

	assert.Nil(t, p.Hubs(mustAirport(t, c, "CAN"), mustAirport(t, c, "HKG"), 5))
}

// ---- Aircraft --------------------------------------------------------------

func TestPickAircraft_FromTierFleet(t *testing.T) {
	rng := engine.NewRand(3)
	for _, km := range []float64{800, 3000, 11000} {
		fleet := engine.FleetModels(km)
		for i := 0; i < 100; i++ {
			assert.Contains(t, fleet, engine.PickAircraft(km, rng))
		}
	}
}

func TestPickAircraft_Bounds(t *testing.T) {
	assert.Equal(t, "A320", engine.PickAircraft(500, fixedRand{i: 0}))
	assert.Equal(t, "A330-300", engine.PickAircraft(9000, fixedRand{i: 1 << 20}))
}

// ---- Price -----------------------------------------------------------------

func TestPrice_Domestic(t *testing.T) {
	rng := engine.NewRand(5)
	for i := 0; i < 500; i++ {
		p := engine.Price(1200, true, rng)
		assert.GreaterOrEqual(t, p.Economy, 500)
		assert.LessOrEqual(t, p.Economy, 1500)
		assert.Greater(t, p.Business, p.Economy)
		assert.Equal(t, int(float64(p.Business)*1.5+0.5), p.First)
	}
}

func TestPrice_International(t *testing.T) {
	rng := engine.NewRand(9)
	for i := 0; i < 500; i++ {
		p := engine.Price(4000, false, rng)
		assert.GreaterOrEqual(t, p.Economy, 3000)
		assert.LessOrEqual(t, p.Economy, 6000)
		ratio := float64(p.Business) / float64(p.Economy)
		assert.InDelta(t, 4.25, ratio, 0.76)
		assert.Greater(t, p.First, p.Business)
	}
}

// ---- Availability ----------------------------------------------------------

func TestAvailability(t *testing.T) {
	cases := []struct {
		name     string
		class    domain.CabinClass
		km       float64
		domestic bool
		i        int
		want     domain.CabinAvailability
	}{
		{"short odd economy", domain.CabinEconomy, 800, true, 1, domain.CabinAvailability{Economy: true}},
		{"short even", domain.CabinEconomy, 800, true, 2, domain.CabinAvailability{Economy: true, Business: true}},
		{"short domestic first slot", domain.CabinEconomy, 800, true, 10, domain.CabinAvailability{Economy: true, Business: true, First: true}},
		{"short international first slot", domain.CabinEconomy, 800, false, 8, domain.CabinAvailability{Economy: true, Business: true, First: true}},
		{"long international", domain.CabinEconomy, 9000, false, 3, domain.CabinAvailability{Economy: true, Business: true}},
		{"long international first slot", domain.CabinEconomy, 9000, false, 4, domain.CabinAvailability{Economy: true, Business: true, First: true}},
		{"business requested", domain.CabinBusiness, 800, true, 1, domain.CabinAvailability{Economy: true, Business: true}},
		{"first requested", domain.CabinFirst, 800, true, 1, domain.CabinAvailability{Economy: true, Business: true, First: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.Availability(tc.class, tc.km, tc.domestic, tc.i))
		})
	}
}

func TestAvailability_FirstImpliesBusiness(t *testing.T) {
	for _, km := range []float64{100, 2000, 7000} {
		for _, dom := range []bool{true, false} {
			for i := 0; i < 30; i++ {
				a := engine.Availability(domain.CabinEconomy, km, dom, i)
				assert.True(t, a.Economy)
				if a.First {
					assert.True(t, a.Business)
				}
			}
		}
	}
}

func TestCandidateCount(t *testing.T) {
	low := fixedRand{i: 0}
	high := fixedRand{i: 1 << 20}

	assert.Equal(t, 6, engine.CandidateCount(800, domain.CabinEconomy, low))
	assert.Equal(t, 15, engine.CandidateCount(800, domain.CabinEconomy, high))
	assert.Equal(t, 4, engine.CandidateCount(3000, domain.CabinEconomy, low))
	assert.Equal(t, 10, engine.CandidateCount(3000, domain.CabinEconomy, high))
	assert.Equal(t, 2, engine.CandidateCount(9000, domain.CabinEconomy, low))
	assert.Equal(t, 6, engine.CandidateCount(9000, domain.CabinEconomy, high))
	assert.Equal(t, 5, engine.CandidateCount(9000, domain.CabinBusiness, low))
	assert.Equal(t, 3, engine.CandidateCount(9000, domain.CabinFirst, low))
}
