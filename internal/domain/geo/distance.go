package geo

import (
	"math"

	"foodshare-api/internal/pkg/errs"
)

const EarthRadiusKm = 6371.0

var ErrInvalidInput = errs.Sentinel("coordinates must be finite numbers", errs.ErrValidation)

type Point struct {
	Lat float64
	Lon float64
}

func NewPoint(lat, lon float64) (Point, error) {
	p := Point{Lat: lat, Lon: lon}
	if !p.IsFinite() || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return Point{}, ErrInvalidInput
	}
	return p, nil
}

// PointFrom returns nil unless both coordinates are present.
func PointFrom(lat, lon *float64) *Point {
	if lat == nil || lon == nil {
		return nil
	}
	return &Point{Lat: *lat, Lon: *lon}
}

func (p Point) IsFinite() bool {
	return isFinite(p.Lat) && isFinite(p.Lon)
}

// DistanceKm is the haversine great-circle distance on a spherical earth.
// Callers must pass finite coordinates; use Distance for unchecked input.
func DistanceKm(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	a := Point{Lat: lat1, Lon: lon1}
	b := Point{Lat: lat2, Lon: lon2}
	if !a.IsFinite() || !b.IsFinite() {
		return 0, ErrInvalidInput
	}
	return DistanceKm(a, b), nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
