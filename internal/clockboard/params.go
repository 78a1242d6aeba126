package clockboard

import (
	"math"

	"github.com/roach88/zonebuilder/internal/geo"
	"github.com/roach88/zonebuilder/internal/sequence"
)

// Defaults follow the original zonebuilder clockboard: twelve clock-face
// segments, rings at 1, 3, 6, 10 and 15 km, and 121 vertices per circle.
const (
	DefaultSegments       = 12
	DefaultRings          = 5
	DefaultRingScale      = 1000.0
	DefaultArcStepDegrees = 3.0
	DefaultPrecision      = 7
)

// Limits on parameters. MinArcStepDegrees bounds the vertex count of a
// single arc to 36001.
const (
	MinArcStepDegrees = 0.01
	MaxPrecision      = 15
)

// MaxDistance is half the reference circumference. A ring at or past the
// antipode collapses to a point or folds back over itself.
const MaxDistance = math.Pi * geo.EarthRadiusMeters

// Params describes one clockboard.
type Params struct {
	// Center is the clockboard origin.
	Center geo.GeoPoint `json:"center" yaml:"center"`

	// Distances are the outer ring boundaries in meters, strictly increasing.
	Distances []float64 `json:"distances" yaml:"distances"`

	// Segments is the number of equal angular sectors.
	Segments int `json:"segments" yaml:"segments"`

	// ArcStepDegrees is the maximum bearing step between sampled arc vertices.
	ArcStepDegrees float64 `json:"arc_step" yaml:"arc_step"`

	// Precision is the number of decimal places kept for payload coordinates.
	Precision int `json:"precision" yaml:"precision"`
}

// DefaultParams returns the default clockboard around center.
func DefaultParams(center geo.GeoPoint) Params {
	distances, err := sequence.RingDistances(DefaultRings, DefaultRingScale)
	if err != nil {
		panic(err) // constants are valid
	}
	return Params{
		Center:         center,
		Distances:      distances,
		Segments:       DefaultSegments,
		ArcStepDegrees: DefaultArcStepDegrees,
		Precision:      DefaultPrecision,
	}
}

// NewParams returns Params for the given geometry with default sampling and
// precision.
func NewParams(center geo.GeoPoint, distances []float64, segments int) Params {
	return Params{
		Center:         center,
		Distances:      distances,
		Segments:       segments,
		ArcStepDegrees: DefaultArcStepDegrees,
		Precision:      DefaultPrecision,
	}
}

// RingCount returns the number of rings the params describe.
func (p Params) RingCount() int {
	return len(p.Distances)
}

// ZoneCount returns the number of zones Build produces for valid params.
func (p Params) ZoneCount() int {
	return p.Segments * len(p.Distances)
}
