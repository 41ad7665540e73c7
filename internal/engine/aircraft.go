package engine

type weightedType struct {
	model  string
	weight int
}

var (
	shortHaulFleet = []weightedType{
		{"A320", 30},
		{"A321", 20},
		{"B737-800", 25},
		{"B737 MAX 8", 15},
		{"C919", 10},
	}
	mediumHaulFleet = []weightedType{
		{"A321neo", 25},
		{"B737-800", 15},
		{"A330-300", 35},
		{"B787-8", 25},
	}
	longHaulFleet = []weightedType{
		{"B777-300ER", 30},
		{"B787-9", 25},
		{"A350-900", 25},
		{"A380", 10},
		{"A330-300", 10},
	}
)

// PickAircraft draws an aircraft type for a route of distanceKm, weighted
// toward the families typical for its tier.
func PickAircraft(distanceKm float64, rng Rand) string {
	fleet := fleetFor(distanceKm)
	total := 0
	for _, t := range fleet {
		total += t.weight
	}
	n := rng.IntN(total)
	for _, t := range fleet {
		if n < t.weight {
			return t.model
		}
		n -= t.weight
	}
	return fleet[len(fleet)-1].model
}

func fleetFor(distanceKm float64) []weightedType {
	switch {
	case distanceKm < shortHaulKm:
		return shortHaulFleet
	case distanceKm < mediumHaulKm:
		return mediumHaulFleet
	default:
		return longHaulFleet
	}
}
