package geo

import (
	"math"

	"github.com/roach88/zonebuilder/internal/geoerr"
)

// DestinationPoint returns the point reached by travelling distance meters
// from origin along the great circle starting at bearing degrees.
//
// A zero distance returns origin unchanged. The result's longitude is
// normalized to [-180, 180) and its latitude stays within [-90, 90], so
// paths crossing a pole come out on the far meridian.
func DestinationPoint(origin GeoPoint, bearing, distance float64) (GeoPoint, error) {
	if err := origin.Validate("origin"); err != nil {
		return GeoPoint{}, err
	}
	if !isFinite(bearing) {
		return GeoPoint{}, geoerr.Invalid("bearing", "bearing %v is not finite", bearing)
	}
	if !isFinite(distance) || distance < 0 {
		return GeoPoint{}, geoerr.Invalid("distance", "distance %v must be finite and >= 0", distance)
	}
	if distance == 0 {
		return origin, nil
	}

	p := Destination(origin, bearing, distance)
	if !p.IsFinite() {
		return GeoPoint{}, geoerr.Degenerate("destination",
			"destination from %s at bearing %v and distance %v is not finite", origin, bearing, distance)
	}
	return p, nil
}

// Destination is DestinationPoint without input checks. Callers validate
// inputs and check the result for NaN.
func Destination(origin GeoPoint, bearing, distance float64) GeoPoint {
	if distance == 0 {
		return origin
	}

	delta := distance / EarthRadiusMeters
	theta := toRadians(NormalizeBearing(bearing))
	phi1 := toRadians(origin.Lat)
	lambda1 := toRadians(origin.Lon)

	sinPhi1, cosPhi1 := math.Sincos(phi1)
	sinDelta, cosDelta := math.Sincos(delta)
	sinTheta, cosTheta := math.Sincos(theta)

	sinPhi2 := sinPhi1*cosDelta + cosPhi1*sinDelta*cosTheta
	// Rounding can push |sinPhi2| a hair past 1 near the poles.
	sinPhi2 = math.Max(-1, math.Min(1, sinPhi2))
	phi2 := math.Asin(sinPhi2)

	// From a pole the bearing selects the meridian directly.
	switch {
	case origin.Lat >= 90:
		return GeoPoint{
			Lat: ClampLatitude(toDegrees(phi2)),
			Lon: NormalizeLongitude(origin.Lon + 180 - NormalizeBearing(bearing)),
		}
	case origin.Lat <= -90:
		return GeoPoint{
			Lat: ClampLatitude(toDegrees(phi2)),
			Lon: NormalizeLongitude(origin.Lon + NormalizeBearing(bearing)),
		}
	}

	y := sinTheta * sinDelta * cosPhi1
	x := cosDelta - sinPhi1*sinPhi2
	lambda2 := lambda1 + math.Atan2(y, x)

	return GeoPoint{
		Lat: ClampLatitude(toDegrees(phi2)),
		Lon: NormalizeLongitude(toDegrees(lambda2)),
	}
}

// NormalizeBearing maps any finite bearing into [0, 360).
func NormalizeBearing(bearing float64) float64 {
	b := math.Mod(bearing, 360)
	if b < 0 {
		b += 360
	}
	// -1e-17 + 360 rounds to 360.
	if b >= 360 {
		b = 0
	}
	return b
}

// NormalizeLongitude maps any finite longitude into [-180, 180).
func NormalizeLongitude(lon float64) float64 {
	if lon >= -180 && lon < 180 {
		return lon
	}
	l := math.Mod(lon+180, 360)
	if l < 0 {
		l += 360
	}
	l -= 180
	if l >= 180 {
		l = -180
	}
	return l
}

// ClampLatitude limits lat to [-90, 90].
func ClampLatitude(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

// HaversineMeters returns the great-circle distance between a and b.
func HaversineMeters(a, b GeoPoint) float64 {
	phi1 := toRadians(a.Lat)
	phi2 := toRadians(b.Lat)
	dPhi := phi2 - phi1
	dLambda := toRadians(b.Lon - a.Lon)

	s1 := math.Sin(dPhi / 2)
	s2 := math.Sin(dLambda / 2)
	h := s1*s1 + math.Cos(phi1)*math.Cos(phi2)*s2*s2
	h = math.Min(1, h)
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// InitialBearing returns the bearing in [0, 360) of the great circle from a to b.
func InitialBearing(a, b GeoPoint) float64 {
	phi1 := toRadians(a.Lat)
	phi2 := toRadians(b.Lat)
	dLambda := toRadians(b.Lon - a.Lon)

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	return NormalizeBearing(toDegrees(math.Atan2(y, x)))
}
