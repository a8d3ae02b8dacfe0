package geo

import (
	"github.com/golang/geo/s2"
)

// ValidCoordinate reports whether lat/lon form a normalized WGS-84 coordinate.
func ValidCoordinate(lat, lon float64) bool {
	return s2.LatLngFromDegrees(lat, lon).IsValid()
}

// AngleDistanceMeters. great-circle distance via the s2 chord angle between
// two points, in meters. Used to cross-check the closed-form haversine in tests.
func AngleDistanceMeters(from, to Coordinate) float64 {
	a := s2.PointFromLatLng(s2.LatLngFromDegrees(from.Lat, from.Lon))
	b := s2.PointFromLatLng(s2.LatLngFromDegrees(to.Lat, to.Lon))
	return a.Distance(b).Radians() * earthRadiusKM * 1000.0
}
