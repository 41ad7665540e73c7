package engine

import "github.com/marecop/yellowair-sub000/internal/domain"

// firstClassPeriod is how often, in candidate indexes, a flight carries a
// first cabin when nobody asked for one.
func firstClassPeriod(distanceKm float64, domestic bool) int {
	switch {
	case distanceKm >= mediumHaulKm && !domestic:
		return 2
	case distanceKm >= mediumHaulKm:
		return 3
	case distanceKm >= shortHaulKm && !domestic:
		return 4
	case distanceKm >= shortHaulKm:
		return 6
	case !domestic:
		return 8
	default:
		return 10
	}
}

// Availability returns the cabins sold on candidate i. The requested class
// is always available; first implies business.
func Availability(class domain.CabinClass, distanceKm float64, domestic bool, i int) domain.CabinAvailability {
	a := domain.CabinAvailability{
		Economy:  true,
		Business: distanceKm >= shortHaulKm || i%2 == 0,
		First:    i%firstClassPeriod(distanceKm, domestic) == 0,
	}
	switch class {
	case domain.CabinBusiness:
		a.Business = true
	case domain.CabinFirst:
		a.First = true
	}
	if a.First {
		a.Business = true
	}
	return a
}

// CandidateCount draws how many flights to offer on a route.
func CandidateCount(distanceKm float64, class domain.CabinClass, rng Rand) int {
	var n int
	switch {
	case distanceKm < shortHaulKm:
		n = 6 + rng.IntN(10)
	case distanceKm < mediumHaulKm:
		n = 4 + rng.IntN(7)
	default:
		n = 2 + rng.IntN(5)
	}
	switch {
	case class == domain.CabinBusiness && n < 5:
		n = 5
	case class == domain.CabinFirst && n < 3:
		n = 3
	}
	return n
}
