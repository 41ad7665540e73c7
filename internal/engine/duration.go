package engine

import "math"

const (
	shortHaulKm  = 1500.0
	mediumHaulKm = 5000.0
	ultraLongKm  = 8000.0

	shortHaulSpeedKmh  = 500.0
	mediumHaulSpeedKmh = 750.0
	longHaulSpeedKmh   = 850.0

	// Taxi, climb and descent.
	overheadMinutes = 40
	// Extra allowance for routes beyond ultraLongKm.
	ultraLongMinutes = 30
)

// EstimateMinutes returns the block time for a route of distanceKm,
// excluding layovers. The cruise speed depends on the distance tier.
func EstimateMinutes(distanceKm float64) int {
	speed := longHaulSpeedKmh
	switch {
	case distanceKm < shortHaulKm:
		speed = shortHaulSpeedKmh
	case distanceKm < mediumHaulKm:
		speed = mediumHaulSpeedKmh
	}

	minutes := int(math.Round(distanceKm/speed*60)) + overheadMinutes
	if distanceKm > ultraLongKm {
		minutes += ultraLongMinutes
	}
	return minutes
}
