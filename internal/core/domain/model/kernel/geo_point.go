package kernel

import (
	"errors"
	"fmt"
	"math"

	"freshdispatch/internal/pkg/errs"
	"freshdispatch/internal/pkg/guard"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a zero GeoPoint is used.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is a WGS84 latitude/longitude pair in decimal degrees.
// It is an immutable value object; the zero value fails Validate, so the
// equator/meridian intersection must still be built through NewGeoPoint.
//
// Example:
//
//	ikeja, _ := kernel.NewGeoPoint(6.6018, 3.3515)
//	lekki, _ := kernel.NewGeoPoint(6.4698, 3.5852)
//	km, _ := ikeja.DistanceTo(lekki) // ≈ 29.7
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint validates both coordinates and returns the point.
//
// Parameters:
//   - lat: latitude in [-90, 90]
//   - lon: longitude in [-180, 180]
//
// Returns:
//   - GeoPoint: a valid point
//   - error: joined range errors for every coordinate that is out of bounds
//     (NaN is always out of bounds)
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLat(lat), p.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate reports whether the point was built through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in decimal degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.lat, p.lon)
}

// IsEqual compares two valid points coordinate by coordinate.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

// DistanceTo returns the great-circle distance in kilometres between p and other.
// Both order pricing and dispatch matching use this metric, so fees and
// dispatch radii stay numerically coherent.
//
// Returns:
//   - float64: distance in km, 0 for identical points, symmetric in its arguments
//   - error: validation error if either point was not constructed
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return Haversine(p.lat, p.lon, other.lat, other.lon), nil
}

// WithinRadius reports whether other lies within radiusKm of p (inclusive).
func (p GeoPoint) WithinRadius(other GeoPoint, radiusKm float64) (bool, error) {
	d, err := p.DistanceTo(other)
	if err != nil {
		return false, err
	}
	return d <= radiusKm, nil
}

// Haversine computes the great-circle distance in kilometres between two
// coordinate pairs given in decimal degrees, on a sphere of radius EarthRadiusKm.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	// rounding can push a marginally above 1 for antipodal points
	a = math.Min(1, a)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("lat", lat, MinLatitude, MaxLatitude)
	}

	p.lat = lat
	return nil
}

func (p *GeoPoint) setLon(lon float64) error {
	if math.IsNaN(lon) || lon < MinLongitude || lon > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("lon", lon, MinLongitude, MaxLongitude)
	}

	p.lon = lon
	return nil
}
