package clockboard

import (
	"fmt"
	"math"

	"github.com/roach88/zonebuilder/internal/geo"
	"github.com/roach88/zonebuilder/internal/geoerr"
)

// Build validates p and computes every zone. On invalid input it returns the
// first validation problem; no geometry is computed.
func Build(p Params) (*Result, error) {
	if errs := Validate(p); len(errs) > 0 {
		return nil, errs[0]
	}

	rings := p.RingCount()
	steps := arcSteps(p.Segments, p.ArcStepDegrees)
	res := &Result{
		Params: p,
		Zones:  make([]Zone, 0, p.ZoneCount()),
	}

	for sector := 0; sector < p.Segments; sector++ {
		start := sectorBearing(sector, p.Segments)
		end := sectorBearing(sector+1, p.Segments)

		inner := 0.0
		for ring := 0; ring < rings; ring++ {
			outer := p.Distances[ring]
			z := Zone{
				Sector:        sector,
				Ring:          ring,
				Label:         Label(sector, ring),
				InnerDistance: inner,
				OuterDistance: outer,
				StartBearing:  start,
				EndBearing:    end,
			}
			if p.Segments == 1 {
				z.Boundary, z.Holes = annulus(p.Center, inner, outer, steps)
			} else {
				z.Boundary = cell(p.Center, start, end, inner, outer, steps)
			}
			if err := checkFinite(z, len(res.Zones)); err != nil {
				return nil, err
			}
			res.Zones = append(res.Zones, z)
			inner = outer
		}
	}

	return res, nil
}

// sectorBearing is the start bearing of sector i. sectorBearing(n, n) is
// exactly 360 and neighbouring sectors share bit-identical edges.
func sectorBearing(i, n int) float64 {
	return float64(i) * 360 / float64(n)
}

// arcSteps is the number of arc segments per sector so that no step
// exceeds arcStep degrees.
func arcSteps(segments int, arcStep float64) int {
	span := 360 / float64(segments)
	steps := int(math.Ceil(span/arcStep - 1e-9))
	if steps < 1 {
		steps = 1
	}
	return steps
}

// arc samples steps+1 points at distance d from from-bearing to to-bearing.
// The endpoints use the exact bearings so shared corners match.
func arc(center geo.GeoPoint, from, to, d float64, steps int) []geo.GeoPoint {
	pts := make([]geo.GeoPoint, 0, steps+1)
	for j := 0; j <= steps; j++ {
		b := from + (to-from)*float64(j)/float64(steps)
		if j == steps {
			b = to
		}
		pts = append(pts, geo.Destination(center, b, d))
	}
	return pts
}

// cell is the closed boundary of one sector of a multi-sector clockboard:
// outer arc clockwise, then the inner arc back, or the center when the
// zone starts there.
func cell(center geo.GeoPoint, start, end, inner, outer float64, steps int) []geo.GeoPoint {
	outerArc := arc(center, start, end, outer, steps)

	if inner == 0 {
		ring := make([]geo.GeoPoint, 0, len(outerArc)+2)
		ring = append(ring, center)
		ring = append(ring, outerArc...)
		return append(ring, center)
	}

	innerArc := arc(center, end, start, inner, steps)
	ring := make([]geo.GeoPoint, 0, len(outerArc)+len(innerArc)+1)
	ring = append(ring, outerArc...)
	ring = append(ring, innerArc...)
	return append(ring, outerArc[0])
}

// annulus is the full-circle zone between inner and outer. The hole winds
// opposite to the exterior.
func annulus(center geo.GeoPoint, inner, outer float64, steps int) ([]geo.GeoPoint, [][]geo.GeoPoint) {
	exterior := closeRing(arc(center, 0, 360, outer, steps))
	if inner == 0 {
		return exterior, nil
	}
	hole := closeRing(arc(center, 360, 0, inner, steps))
	return exterior, [][]geo.GeoPoint{hole}
}

// closeRing makes the last point bit-identical to the first.
func closeRing(pts []geo.GeoPoint) []geo.GeoPoint {
	pts[len(pts)-1] = pts[0]
	return pts
}

func checkFinite(z Zone, index int) error {
	for r, ring := range z.Rings() {
		for i, pt := range ring {
			if !pt.IsFinite() {
				return geoerr.Degenerate(fmt.Sprintf("zones[%d].rings[%d][%d]", index, r, i),
					"zone %s produced non-finite point %s", z.Label, pt).
					WithDetail("sector", fmt.Sprint(z.Sector)).
					WithDetail("ring", fmt.Sprint(z.Ring))
			}
		}
	}
	return nil
}
