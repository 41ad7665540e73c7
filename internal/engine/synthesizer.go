// Package engine generates synthetic flights for a search: distance and
// duration estimates, connection planning, aircraft, fares and cabin
// availability. It performs no I/O and keeps no shared state.
package engine

import (
	"fmt"
	"sort"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"

	"github.com/marecop/yellowair-sub000/internal/airport"
	"github.com/marecop/yellowair-sub000/internal/domain"
	"github.com/marecop/yellowair-sub000/internal/geo"
)

const (
	// CarrierCode prefixes every generated flight number.
	CarrierCode = "YA"

	// hubPool is how many of the best-scoring hubs stops are drawn from.
	hubPool = 5

	firstDepartureHour = 6
	lastDepartureHour  = 22

	minSeats = 10
	maxSeats = 250
)

var flightNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://yellowair.example/flights"))

// FlightID returns the identifier of candidate i for a search. It depends
// only on its arguments, so regenerating a search yields the same IDs.
func FlightID(from, to, date string, i int) string {
	return uuid.NewSHA1(flightNamespace, []byte(fmt.Sprintf("%s-%s-%s-%d", from, to, date, i))).String()
}

// Synthesizer builds the flight list for a search.
type Synthesizer struct {
	resolver *airport.Resolver
	planner  *Planner
}

// NewSynthesizer returns a Synthesizer that resolves codes with resolver and
// routes connections through the airports of its catalog.
func NewSynthesizer(resolver *airport.Resolver) *Synthesizer {
	return &Synthesizer{
		resolver: resolver,
		planner:  NewPlanner(resolver.Catalog().All()),
	}
}

// Generate returns the flights for req, direct flights first. It returns an
// empty list when either code is blank or the date does not parse. An
// unknown cabin class is treated as economy.
func (s *Synthesizer) Generate(req domain.SearchRequest, rng Rand) []domain.Flight {
	req = req.Normalize()
	day, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return []domain.Flight{}
	}
	origin, ok := s.resolver.Resolve(req.From, rng)
	if !ok {
		return []domain.Flight{}
	}
	dest, ok := s.resolver.Resolve(req.To, rng)
	if !ok {
		return []domain.Flight{}
	}
	class, ok := domain.ParseCabinClass(string(req.CabinClass))
	if !ok {
		class = domain.CabinEconomy
	}

	r := route{
		origin:   origin,
		dest:     dest,
		domestic: origin.IsDomesticWith(dest),
		distance: geo.DistanceKm(pointOf(origin), pointOf(dest)),
		day:      day,
		loc:      location(origin.TimeZone),
		date:     req.Date,
		class:    class,
	}

	n := CandidateCount(r.distance, class, rng)
	flights := make([]domain.Flight, 0, n)
	for i := 0; i < n; i++ {
		flights = append(flights, s.candidate(r, i, rng))
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return !flights[i].HasStops && flights[j].HasStops
	})
	return flights
}

type route struct {
	origin   domain.Airport
	dest     domain.Airport
	domestic bool
	distance float64
	day      time.Time
	loc      *time.Location
	date     string
	class    domain.CabinClass
}

func (s *Synthesizer) candidate(r route, i int, rng Rand) domain.Flight {
	var via []domain.Airport
	if !s.planner.IsDirect(r.distance, rng) {
		via = s.pickStops(r, rng)
	}

	routeKm := routeDistance(r.origin, via, r.dest)
	layover := 0
	stops := make([]domain.FlightStop, 0, len(via))
	for _, h := range via {
		m := s.planner.Layover(rng)
		layover += m
		stops = append(stops, domain.FlightStop{
			AirportCode:    h.Code,
			AirportName:    h.Name,
			LayoverMinutes: m,
			Terminal:       fmt.Sprintf("T%d", 1+rng.IntN(3)),
		})
	}

	duration := EstimateMinutes(routeKm) + layover
	dep := time.Date(r.day.Year(), r.day.Month(), r.day.Day(),
		firstDepartureHour+rng.IntN(lastDepartureHour-firstDepartureHour+1),
		5*rng.IntN(12), 0, 0, r.loc)

	depTerminal, arrTerminal := terminals(r.domestic, rng)

	f := domain.Flight{
		ID:                   FlightID(r.origin.Code, r.dest.Code, r.date, i),
		FlightNumber:         fmt.Sprintf("%s%d", CarrierCode, 100+rng.IntN(9900)),
		DepartureAirport:     r.origin.Name,
		DepartureAirportCode: r.origin.Code,
		DepartureTerminal:    depTerminal,
		ArrivalAirport:       r.dest.Name,
		ArrivalAirportCode:   r.dest.Code,
		ArrivalTerminal:      arrTerminal,
		DepartureTime:        dep,
		ArrivalTime:          dep.Add(time.Duration(duration) * time.Minute),
		Duration:             duration,
		HasStops:             len(stops) > 0,
		Prices:               Price(r.distance, r.domestic, rng),
		SeatsAvailable:       minSeats + rng.IntN(maxSeats-minSeats+1),
		Distance:             round(routeKm),
		Aircraft:             PickAircraft(routeKm, rng),
		CabinAvailability:    Availability(r.class, r.distance, r.domestic, i),
	}
	if len(stops) > 0 {
		f.Stops = stops
	}
	return f
}

// pickStops draws distinct hubs from the best-scoring pool and orders them
// by distance from the origin. It returns nil when no hub qualifies.
func (s *Synthesizer) pickStops(r route, rng Rand) []domain.Airport {
	hubs := s.planner.Hubs(r.origin, r.dest, hubPool)
	if len(hubs) == 0 {
		return nil
	}
	k := min(s.planner.StopCount(r.distance, rng), len(hubs))

	pool := append([]Hub(nil), hubs...)
	via := make([]domain.Airport, 0, k)
	for j := 0; j < k; j++ {
		n := j + rng.IntN(len(pool)-j)
		pool[j], pool[n] = pool[n], pool[j]
		via = append(via, pool[j].Airport)
	}

	o := pointOf(r.origin)
	sort.SliceStable(via, func(a, b int) bool {
		return geo.DistanceKm(o, pointOf(via[a])) < geo.DistanceKm(o, pointOf(via[b]))
	})

	// Each hub keeps its own detour under MaxDetour, a chain of them may not.
	// Fall back to the single hub with the shorter route.
	if len(via) > 1 && routeDistance(r.origin, via, r.dest) >= MaxDetour*r.distance {
		best := via[:1]
		for _, h := range via[1:] {
			one := []domain.Airport{h}
			if routeDistance(r.origin, one, r.dest) < routeDistance(r.origin, best, r.dest) {
				best = one
			}
		}
		return best
	}
	return via
}

// routeDistance is the flown distance from origin through via to dest.
func routeDistance(origin domain.Airport, via []domain.Airport, dest domain.Airport) float64 {
	km := 0.0
	prev := pointOf(origin)
	for _, h := range via {
		km += geo.DistanceKm(prev, pointOf(h))
		prev = pointOf(h)
	}
	return km + geo.DistanceKm(prev, pointOf(dest))
}

func terminals(domestic bool, rng Rand) (string, string) {
	if domestic {
		return "T1", "T1"
	}
	pick := func() string { return fmt.Sprintf("T%d", 2+rng.IntN(2)) }
	return pick(), pick()
}

func location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
