package engine

import (
	"sort"

	"github.com/marecop/yellowair-sub000/internal/domain"
	"github.com/marecop/yellowair-sub000/internal/geo"
)

const (
	// Routes longer than this never fly direct.
	ForcedConnectionKm = 10000.0

	// Routes shorter than ShortRouteKm get a first chance of being direct
	// with ShortRouteDirectP before the regular DirectP draw.
	ShortRouteKm      = 5000.0
	ShortRouteDirectP = 0.8
	DirectP           = 0.7

	// Routes longer than TwoStopKm take two stops with TwoStopP.
	TwoStopKm = 12000.0
	TwoStopP  = 0.3

	// Hubs whose detour ratio reaches MaxDetour are rejected.
	MaxDetour = 1.3

	MinLayoverMinutes = 60
	MaxLayoverMinutes = 180
)

// Hub is a scored connection candidate. Lower scores are better.
type Hub struct {
	Airport    domain.Airport
	Efficiency float64
	Score      float64
}

// Planner picks connection airports from a fixed set of candidates.
type Planner struct {
	candidates []domain.Airport
}

// NewPlanner returns a Planner choosing hubs among candidates.
func NewPlanner(candidates []domain.Airport) *Planner {
	return &Planner{candidates: append([]domain.Airport(nil), candidates...)}
}

// IsDirect decides whether a candidate on a route of distanceKm flies
// nonstop.
func (p *Planner) IsDirect(distanceKm float64, rng Rand) bool {
	if distanceKm > ForcedConnectionKm {
		return false
	}
	if distanceKm < ShortRouteKm && rng.Float64() < ShortRouteDirectP {
		return true
	}
	return rng.Float64() < DirectP
}

// StopCount returns how many stops a connecting candidate makes.
func (p *Planner) StopCount(distanceKm float64, rng Rand) int {
	if distanceKm > TwoStopKm && rng.Float64() < TwoStopP {
		return 2
	}
	return 1
}

// Hubs returns up to n hubs between origin and dest, best first. It returns
// nil when the endpoints coincide or no candidate keeps the detour under
// MaxDetour.
func (p *Planner) Hubs(origin, dest domain.Airport, n int) []Hub {
	o := pointOf(origin)
	t := pointOf(dest)
	direct := geo.DistanceKm(o, t)
	if direct == 0 || n <= 0 {
		return nil
	}
	mid := geo.Midpoint(o, t)

	var hubs []Hub
	for _, a := range p.candidates {
		if a.Code == origin.Code || a.Code == dest.Code {
			continue
		}
		h := pointOf(a)
		eff := (geo.DistanceKm(o, h) + geo.DistanceKm(h, t)) / direct
		if eff >= MaxDetour {
			continue
		}
		dev := geo.DistanceKm(h, mid)
		hubs = append(hubs, Hub{
			Airport:    a,
			Efficiency: eff,
			Score:      0.7*eff + 0.3*(dev/1000),
		})
	}

	sort.SliceStable(hubs, func(i, j int) bool { return hubs[i].Score < hubs[j].Score })
	if len(hubs) > n {
		hubs = hubs[:n]
	}
	return hubs
}

// Layover draws a layover length in minutes.
func (p *Planner) Layover(rng Rand) int {
	return MinLayoverMinutes + rng.IntN(MaxLayoverMinutes-MinLayoverMinutes+1)
}

func pointOf(a domain.Airport) geo.Point {
	return geo.Point{Lat: a.Latitude, Lng: a.Longitude}
}
