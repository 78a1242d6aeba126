package clockboard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/zonebuilder/internal/geo"
	"github.com/roach88/zonebuilder/internal/geoerr"
	"github.com/roach88/zonebuilder/internal/testutil"
)

var leeds = geo.GeoPoint{Lat: 53.8, Lon: -1.5}

func TestBuildZoneCount(t *testing.T) {
	tests := []struct {
		name      string
		distances []float64
		segments  int
	}{
		{"default shape", []float64{1000, 3000, 6000, 10000, 15000}, 12},
		{"single ring", []float64{500}, 8},
		{"single segment", []float64{100, 200, 300}, 1},
		{"odd segments", []float64{1, 2}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Build(NewParams(leeds, tt.distances, tt.segments))
			require.NoError(t, err)
			assert.Len(t, res.Zones, tt.segments*len(tt.distances))
		})
	}
}

func TestBuildOrderingSectorMajor(t *testing.T) {
	p := NewParams(leeds, []float64{1000, 3000, 6000}, 12)
	res, err := Build(p)
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for i, z := range res.Zones {
		assert.Equal(t, i/3, z.Sector, "zone %d sector", i)
		assert.Equal(t, i%3, z.Ring, "zone %d ring", i)
		assert.False(t, seen[[2]int{z.Sector, z.Ring}])
		seen[[2]int{z.Sector, z.Ring}] = true
	}
	assert.Len(t, seen, 36)
}

func TestBuildZoneDistancesAndBearings(t *testing.T) {
	res, err := Build(NewParams(leeds, []float64{1000, 3000}, 4))
	require.NoError(t, err)

	z, ok := res.Zone(1, 1)
	require.True(t, ok)
	assert.Equal(t, 1000.0, z.InnerDistance)
	assert.Equal(t, 3000.0, z.OuterDistance)
	assert.Equal(t, 90.0, z.StartBearing)
	assert.Equal(t, 180.0, z.EndBearing)
	assert.Equal(t, "B02", z.Label)

	z, ok = res.Zone(3, 0)
	require.True(t, ok)
	assert.Equal(t, 0.0, z.InnerDistance)
	assert.Equal(t, 270.0, z.StartBearing)
	assert.Equal(t, 360.0, z.EndBearing)

	_, ok = res.Zone(4, 0)
	assert.False(t, ok)
	_, ok = res.Zone(0, 2)
	assert.False(t, ok)
}

func TestBuildPolygonsClosedAndInRange(t *testing.T) {
	centers := []geo.GeoPoint{
		leeds,
		{Lat: 0, Lon: 179.99},
		{Lat: -89.9, Lon: 0},
		{Lat: 90, Lon: 0},
		{Lat: -45, Lon: -180},
	}
	for _, center := range centers {
		res, err := Build(NewParams(center, []float64{1000, 50000, 200000}, 6))
		require.NoError(t, err, "center %s", center)
		for _, z := range res.Zones {
			for _, ring := range z.Rings() {
				testutil.AssertClosedRing(t, ring, "center %s zone %s", center, z.Label)
			}
		}
	}
}

func TestBuildPolarCenterSpreadsSectors(t *testing.T) {
	for _, center := range []geo.GeoPoint{{Lat: 90, Lon: 0}, {Lat: -90, Lon: 0}} {
		p := NewParams(center, []float64{1000}, 4)
		res, err := Build(p)
		require.NoError(t, err)

		steps := arcSteps(4, p.ArcStepDegrees)
		seen := map[float64]string{}
		for sector := 0; sector < 4; sector++ {
			z, ok := res.Zone(sector, 0)
			require.True(t, ok)
			mid := z.Boundary[1+steps/2]
			lon := math.Round(mid.Lon*1e6) / 1e6
			if prev, dup := seen[lon]; dup {
				t.Errorf("center %s: zones %s and %s share mid-arc longitude %v", center, prev, z.Label, lon)
			}
			seen[lon] = z.Label
			testutil.AssertDistanceFrom(t, center, mid, 1000, "center %s zone %s", center, z.Label)
		}
	}
}

func TestBuildWedgeStartsAtCenter(t *testing.T) {
	res, err := Build(NewParams(leeds, []float64{2000, 4000}, 6))
	require.NoError(t, err)

	z, _ := res.Zone(2, 0)
	assert.Equal(t, leeds, z.Boundary[0])
	assert.Equal(t, leeds, z.Boundary[len(z.Boundary)-1])
	for _, pt := range z.Boundary[1 : len(z.Boundary)-1] {
		testutil.AssertDistanceFrom(t, leeds, pt, 2000)
	}
	assert.Empty(t, z.Holes)
}

func TestBuildBandCorners(t *testing.T) {
	p := NewParams(leeds, []float64{2000, 4000}, 6)
	res, err := Build(p)
	require.NoError(t, err)

	z, _ := res.Zone(1, 1)
	steps := arcSteps(6, p.ArcStepDegrees)
	require.Len(t, z.Boundary, 2*(steps+1)+1)

	outerStart := z.Boundary[0]
	outerEnd := z.Boundary[steps]
	innerStart := z.Boundary[steps+1]
	innerEnd := z.Boundary[2*steps+1]

	testutil.AssertDistanceFrom(t, leeds, outerStart, 4000)
	testutil.AssertDistanceFrom(t, leeds, outerEnd, 4000)
	testutil.AssertDistanceFrom(t, leeds, innerStart, 2000)
	testutil.AssertDistanceFrom(t, leeds, innerEnd, 2000)

	assert.InDelta(t, 60, geo.InitialBearing(leeds, outerStart), 1e-6)
	assert.InDelta(t, 120, geo.InitialBearing(leeds, outerEnd), 1e-6)
	assert.InDelta(t, 120, geo.InitialBearing(leeds, innerStart), 1e-6)
	assert.InDelta(t, 60, geo.InitialBearing(leeds, innerEnd), 1e-6)
}

func TestBuildAdjacentSectorsShareEdges(t *testing.T) {
	p := NewParams(leeds, []float64{1000, 3000}, 8)
	res, err := Build(p)
	require.NoError(t, err)
	steps := arcSteps(8, p.ArcStepDegrees)

	for sector := 0; sector < 8; sector++ {
		left, _ := res.Zone(sector, 1)
		right, _ := res.Zone((sector+1)%8, 1)
		// Outer end corner of one sector is the outer start corner of the next.
		assert.Equal(t, left.Boundary[steps], right.Boundary[0], "sector %d", sector)
	}
}

func TestBuildSingleSegmentFullCircle(t *testing.T) {
	p := NewParams(leeds, []float64{1000, 3000}, 1)
	res, err := Build(p)
	require.NoError(t, err)
	require.Len(t, res.Zones, 2)

	disc := res.Zones[0]
	assert.Equal(t, 0.0, disc.StartBearing)
	assert.Equal(t, 360.0, disc.EndBearing)
	assert.Empty(t, disc.Holes)
	assert.Len(t, disc.Boundary, 121)
	testutil.AssertClosedRing(t, disc.Boundary)
	for _, pt := range disc.Boundary {
		testutil.AssertDistanceFrom(t, leeds, pt, 1000)
	}

	band := res.Zones[1]
	require.Len(t, band.Holes, 1)
	testutil.AssertClosedRing(t, band.Boundary)
	testutil.AssertClosedRing(t, band.Holes[0])
	for _, pt := range band.Boundary {
		testutil.AssertDistanceFrom(t, leeds, pt, 3000)
	}
	for _, pt := range band.Holes[0] {
		testutil.AssertDistanceFrom(t, leeds, pt, 1000)
	}
	// The hole runs the opposite way round.
	assert.InDelta(t, 357, geo.InitialBearing(leeds, band.Holes[0][1]), 1e-6)
	assert.InDelta(t, 3, geo.InitialBearing(leeds, band.Boundary[1]), 1e-6)
}

func TestBuildArcSampling(t *testing.T) {
	tests := []struct {
		segments int
		arcStep  float64
		want     int
	}{
		{12, 3, 10},
		{1, 3, 120},
		{4, 45, 2},
		{7, 3, 18},
		{360, 3, 1},
		{3, 360, 1},
		{12, 0.5, 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, arcSteps(tt.segments, tt.arcStep), "segments=%d step=%v", tt.segments, tt.arcStep)
	}
}

func TestBuildInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		field  string
	}{
		{"decreasing distances", NewParams(leeds, []float64{10, 5}, 4), "distances[1]"},
		{"repeated distance", NewParams(leeds, []float64{10, 10}, 4), "distances[1]"},
		{"zero segments", NewParams(leeds, []float64{10}, 0), "segments"},
		{"negative segments", NewParams(leeds, []float64{10}, -3), "segments"},
		{"negative distance", NewParams(leeds, []float64{-1, 5}, 4), "distances[0]"},
		{"leading zero", NewParams(leeds, []float64{0, 5}, 4), "distances[0]"},
		{"empty distances", NewParams(leeds, nil, 4), "distances"},
		{"NaN distance", NewParams(leeds, []float64{math.NaN()}, 4), "distances[0]"},
		{"past antipode", NewParams(leeds, []float64{MaxDistance + 1}, 4), "distances[0]"},
		{"at antipode", NewParams(leeds, []float64{1000, MaxDistance}, 4), "distances[1]"},
		{"latitude", NewParams(geo.GeoPoint{Lat: 95}, []float64{10}, 4), "center.lat"},
		{"longitude", NewParams(geo.GeoPoint{Lon: -190}, []float64{10}, 4), "center.lon"},
		{"arc step", Params{Center: leeds, Distances: []float64{10}, Segments: 4, ArcStepDegrees: 0}, "arc_step"},
		{"precision", Params{Center: leeds, Distances: []float64{10}, Segments: 4, ArcStepDegrees: 3, Precision: 16}, "precision"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Build(tt.params)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, geoerr.IsInvalidInput(err))

			var ge *geoerr.Error
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, tt.field, ge.Field)
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	p := Params{
		Center:         geo.GeoPoint{Lat: 100, Lon: 0},
		Distances:      []float64{5, 3, -1},
		Segments:       0,
		ArcStepDegrees: 3,
		Precision:      7,
	}
	errs := Validate(p)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		assert.Equal(t, geoerr.InvalidInput, e.Code)
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"center.lat", "distances[1]", "distances[2]", "segments"}, fields)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.Empty(t, Validate(DefaultParams(leeds)))
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams(leeds)
	assert.Equal(t, []float64{1000, 3000, 6000, 10000, 15000}, p.Distances)
	assert.Equal(t, 12, p.Segments)
	assert.Equal(t, 60, p.ZoneCount())

	res, err := Build(p)
	require.NoError(t, err)
	assert.Len(t, res.Zones, 60)
	// 30 degree sectors at 3 degree steps: 11 arc points per edge.
	assert.Len(t, res.Zones[0].Boundary, 13)
	assert.Len(t, res.Zones[1].Boundary, 23)
}

func TestLabel(t *testing.T) {
	tests := []struct {
		sector, ring int
		want         string
	}{
		{0, 0, "A01"},
		{11, 0, "A12"},
		{2, 1, "B03"},
		{0, 25, "Z01"},
		{0, 26, "AA01"},
		{4, 27, "AB05"},
		{0, 51, "AZ01"},
		{0, 52, "BA01"},
		{119, 2, "C120"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.sector, tt.ring))
	}
}
