// Package geo provides the spherical geodesy used to lay out clockboard zones.
//
// All angles are in degrees, distances in meters, on a sphere of radius
// EarthRadiusMeters. Bearings are measured clockwise from true north.
package geo

import (
	"fmt"
	"math"

	"github.com/roach88/zonebuilder/internal/geoerr"
)

// EarthRadiusMeters is the IUGG mean Earth radius.
const EarthRadiusMeters = 6371008.8

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// String renders the point as "(lat, lon)".
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.Lat, p.Lon)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p GeoPoint) IsFinite() bool {
	return isFinite(p.Lat) && isFinite(p.Lon)
}

// InRange reports whether the point lies within [-90, 90] x [-180, 180].
func (p GeoPoint) InRange() bool {
	return p.IsFinite() &&
		p.Lat >= -90 && p.Lat <= 90 &&
		p.Lon >= -180 && p.Lon <= 180
}

// Validate returns an InvalidInput error naming field when the point is
// not a finite coordinate within range.
func (p GeoPoint) Validate(field string) error {
	if !isFinite(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return geoerr.Invalid(field+".lat", "latitude %v out of range [-90, 90]", p.Lat)
	}
	if !isFinite(p.Lon) || p.Lon < -180 || p.Lon > 180 {
		return geoerr.Invalid(field+".lon", "longitude %v out of range [-180, 180]", p.Lon)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
