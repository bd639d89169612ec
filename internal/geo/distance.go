// Package geo provides the geodesic math used for radius-membership
// checks and result ordering.
package geo

import (
	"math"

	"github.com/webless-hunter/prospect-cli/internal/model"
)

// earthRadiusKM is the mean Earth radius used by the haversine formula.
const earthRadiusKM = 6371.0

// DistanceKM returns the haversine distance between two coordinates in
// kilometers. Symmetric, and zero for identical points.
func DistanceKM(a, b model.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLng := (b.Lng - a.Lng) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180.0)*math.Cos(b.Lat*math.Pi/180.0)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKM * c
}
