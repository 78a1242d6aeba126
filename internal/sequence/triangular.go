// Package sequence generates the numeric sequences used as default ring
// spacings for clockboards.
package sequence

import (
	"math"

	"github.com/roach88/zonebuilder/internal/geoerr"
)

// MaxLength bounds the sequence length accepted from host numbers. Beyond
// 2^26 elements T(k) stops being exactly representable in a float64.
const MaxLength = 1 << 26

// Triangular returns the first n triangular numbers, T(k) = k(k+1)/2 for
// k = 0..n-1. n = 0 yields an empty, non-nil slice.
func Triangular(n int) ([]float64, error) {
	if n < 0 {
		return nil, geoerr.Invalid("n", "sequence length %d must be >= 0", n)
	}
	if n > MaxLength {
		return nil, geoerr.Invalid("n", "sequence length %d exceeds %d", n, MaxLength)
	}

	seq := make([]float64, n)
	var sum float64
	for k := 1; k < n; k++ {
		sum += float64(k)
		seq[k] = sum
	}
	return seq, nil
}

// TriangularFloat is Triangular for lengths arriving as host float64 values.
// It fails with InvalidInput unless n is a finite, non-negative whole number.
func TriangularFloat(n float64) ([]float64, error) {
	count, err := WholeNumber("n", n)
	if err != nil {
		return nil, err
	}
	return Triangular(count)
}

// RingDistances returns T(1..rings) scaled by scale: the strictly increasing,
// strictly positive distances 1, 3, 6, 10, ... (times scale) used when a
// clockboard is configured by ring count instead of explicit distances.
func RingDistances(rings int, scale float64) ([]float64, error) {
	if rings < 1 {
		return nil, geoerr.Invalid("rings", "ring count %d must be >= 1", rings)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, geoerr.Invalid("scale", "scale %v must be finite and > 0", scale)
	}

	seq, err := Triangular(rings + 1)
	if err != nil {
		return nil, err
	}
	out := seq[1:]
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// WholeNumber converts v to an int, failing with InvalidInput (naming
// field) unless v is a finite, non-negative integer within MaxLength.
func WholeNumber(field string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, geoerr.Invalid(field, "%v is not a finite number", v)
	}
	if v < 0 {
		return 0, geoerr.Invalid(field, "%v must be >= 0", v)
	}
	if v != math.Trunc(v) {
		return 0, geoerr.Invalid(field, "%v is not a whole number", v)
	}
	if v > MaxLength {
		return 0, geoerr.Invalid(field, "%v exceeds %d", v, MaxLength)
	}
	return int(v), nil
}
