// Package geo provides great-circle helpers on latitude/longitude pairs given in degrees.
package geo

import (
	"math"

	"github.com/umahmood/haversine"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Point is a coordinate in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// DistanceKm returns the haversine great-circle distance between a and b.
// Coordinates are not validated.
func DistanceKm(a, b Point) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lng},
		haversine.Coord{Lat: b.Lat, Lon: b.Lng},
	)
	return km
}

// Midpoint is the arithmetic mean of the two coordinates. It is a cheap
// approximation of the geodesic midpoint and is only used for hub scoring.
func Midpoint(a, b Point) Point {
	return Point{Lat: (a.Lat + b.Lat) / 2, Lng: (a.Lng + b.Lng) / 2}
}

// Destination returns the point reached by travelling distanceKm from p along
// the initial bearing (degrees clockwise from north). Longitude is wrapped into
// [-180, 180).
func Destination(p Point, bearingDeg, distanceKm float64) Point {
	lat1 := toRad(p.Lat)
	lng1 := toRad(p.Lng)
	brg := toRad(bearingDeg)
	ang := distanceKm / EarthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ang) + math.Cos(lat1)*math.Sin(ang)*math.Cos(brg))
	lng2 := lng1 + math.Atan2(
		math.Sin(brg)*math.Sin(ang)*math.Cos(lat1),
		math.Cos(ang)-math.Sin(lat1)*math.Sin(lat2),
	)

	lng := math.Mod(toDeg(lng2)+540, 360) - 180
	return Point{Lat: toDeg(lat2), Lng: lng}
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
func toDeg(rad float64) float64 { return rad * 180 / math.Pi }
