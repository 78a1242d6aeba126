package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/zonebuilder/internal/geo"
)

// AssertClosedRing checks that ring has at least four points, that its first
// and last points are identical, and that every point is a valid coordinate.
func AssertClosedRing(t testing.TB, ring []geo.GeoPoint, msgAndArgs ...any) bool {
	t.Helper()

	if !assert.GreaterOrEqual(t, len(ring), 4, msgAndArgs...) {
		return false
	}
	ok := assert.Equal(t, ring[0], ring[len(ring)-1], msgAndArgs...)
	for i, pt := range ring {
		if !pt.InRange() {
			ok = false
			assert.Failf(t, "point out of range", "point %d %s out of range", i, pt)
		}
	}
	return ok
}

// AssertDistanceFrom checks that pt lies want meters from center, within a
// relative tolerance of 1e-6.
func AssertDistanceFrom(t testing.TB, center, pt geo.GeoPoint, want float64, msgAndArgs ...any) bool {
	t.Helper()

	got := geo.HaversineMeters(center, pt)
	if want == 0 {
		return assert.InDelta(t, 0, got, 1e-6, msgAndArgs...)
	}
	return assert.InEpsilon(t, want, got, 1e-6, msgAndArgs...)
}
