package clockboard

import (
	"fmt"

	"github.com/roach88/zonebuilder/internal/geo"
)

// Zone is one sector x ring cell.
type Zone struct {
	Sector        int
	Ring          int
	Label         string
	InnerDistance float64
	OuterDistance float64
	StartBearing  float64
	EndBearing    float64

	// Boundary is the closed exterior ring (first point == last point).
	Boundary []geo.GeoPoint

	// Holes holds closed interior rings. Only full-circle annuli
	// (single-segment clockboards, rings past the first) have one.
	Holes [][]geo.GeoPoint
}

// Rings returns the exterior ring followed by any holes.
func (z Zone) Rings() [][]geo.GeoPoint {
	rings := make([][]geo.GeoPoint, 0, 1+len(z.Holes))
	rings = append(rings, z.Boundary)
	return append(rings, z.Holes...)
}

// Result is a built clockboard.
type Result struct {
	Params Params
	Zones  []Zone
}

// Zone returns the zone at (sector, ring).
func (r *Result) Zone(sector, ring int) (Zone, bool) {
	rings := r.Params.RingCount()
	if sector < 0 || sector >= r.Params.Segments || ring < 0 || ring >= rings {
		return Zone{}, false
	}
	return r.Zones[sector*rings+ring], true
}

// Label returns the zone label for (sector, ring): ring letters followed by
// the two-digit 1-based sector number, e.g. "A01", "C12", "AA03".
func Label(sector, ring int) string {
	return fmt.Sprintf("%s%02d", ringLetters(ring), sector+1)
}

// ringLetters numbers rings A..Z, AA..AZ, BA.. (bijective base 26).
func ringLetters(ring int) string {
	var buf []byte
	for n := ring + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}
