package clockboard

import (
	"errors"
	"fmt"
	"math"

	"github.com/roach88/zonebuilder/internal/geoerr"
)

// Validate checks p and returns every problem found (it does not fail
// fast). All returned errors carry the InvalidInput code.
func Validate(p Params) []*geoerr.Error {
	var errs []*geoerr.Error

	var centerErr *geoerr.Error
	if err := p.Center.Validate("center"); errors.As(err, &centerErr) {
		errs = append(errs, centerErr)
	}

	errs = append(errs, validateDistances(p.Distances)...)

	if p.Segments < 1 {
		errs = append(errs, geoerr.Invalid("segments", "segment count %d must be >= 1", p.Segments))
	}

	if math.IsNaN(p.ArcStepDegrees) || p.ArcStepDegrees < MinArcStepDegrees || p.ArcStepDegrees > 360 {
		errs = append(errs, geoerr.Invalid("arc_step",
			"arc step %v must be within [%v, 360] degrees", p.ArcStepDegrees, MinArcStepDegrees))
	}

	if p.Precision < 0 || p.Precision > MaxPrecision {
		errs = append(errs, geoerr.Invalid("precision",
			"precision %d must be within [0, %d]", p.Precision, MaxPrecision))
	}

	return errs
}

func validateDistances(distances []float64) []*geoerr.Error {
	if len(distances) == 0 {
		return []*geoerr.Error{geoerr.Invalid("distances", "at least one distance is required")}
	}

	var errs []*geoerr.Error
	// Ring 0 starts at the center: an implicit 0 precedes the list.
	prev := 0.0
	for i, d := range distances {
		field := fmt.Sprintf("distances[%d]", i)
		switch {
		case math.IsNaN(d) || math.IsInf(d, 0):
			errs = append(errs, geoerr.Invalid(field, "distance %v is not finite", d))
			continue
		case d < 0:
			errs = append(errs, geoerr.Invalid(field, "distance %v must be >= 0", d))
		case i == 0 && d == 0:
			errs = append(errs, geoerr.Invalid(field,
				"first distance must be > 0: ring 0 already starts at the center"))
		case d <= prev:
			errs = append(errs, geoerr.Invalid(field,
				"distances must be strictly increasing: %v follows %v", d, prev).
				WithDetail("previous", fmt.Sprint(prev)))
		case d >= MaxDistance:
			errs = append(errs, geoerr.Invalid(field,
				"distance %v must be below half the earth's circumference (%v)", d, MaxDistance))
		}
		prev = d
	}
	return errs
}
