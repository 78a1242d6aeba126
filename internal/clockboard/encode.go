package clockboard

import (
	"fmt"

	"github.com/roach88/zonebuilder/internal/geo"
	"github.com/roach88/zonebuilder/internal/wire"
)

// Encode serializes r as a canonical GeoJSON FeatureCollection in the
// wire.ClockboardFormat layout. Coordinates are [lon, lat] with
// r.Params.Precision decimal places.
func Encode(r *Result) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("encode: nil result")
	}
	places := r.Params.Precision

	features := make(wire.Array, 0, len(r.Zones))
	for _, z := range r.Zones {
		features = append(features, featureValue(z, places))
	}

	distances := make(wire.Array, 0, len(r.Params.Distances))
	for _, d := range r.Params.Distances {
		distances = append(distances, wire.Number(d))
	}

	doc := wire.NewObject(
		wire.O("type", wire.String("FeatureCollection")),
		wire.O("format", wire.String(wire.ClockboardFormat)),
		wire.O("properties", wire.NewObject(
			wire.O("center", positionValue(r.Params.Center, places)),
			wire.O("distances", distances),
			wire.O("num_segments", wire.Int(r.Params.Segments)),
		)),
		wire.O("features", features),
	)

	payload, err := wire.MarshalCanonical(doc)
	if err != nil {
		return nil, fmt.Errorf("encode clockboard: %w", err)
	}
	return payload, nil
}

// Serialize builds p and encodes the result.
func Serialize(p Params) ([]byte, error) {
	res, err := Build(p)
	if err != nil {
		return nil, err
	}
	return Encode(res)
}

func featureValue(z Zone, places int) wire.Value {
	rings := z.Rings()
	coords := make(wire.Array, 0, len(rings))
	for _, ring := range rings {
		coords = append(coords, ringValue(ring, places))
	}

	return wire.NewObject(
		wire.O("type", wire.String("Feature")),
		wire.O("properties", wire.NewObject(
			wire.O("sector", wire.Int(z.Sector)),
			wire.O("ring", wire.Int(z.Ring)),
			wire.O("label", wire.String(z.Label)),
			wire.O("inner_distance", wire.Number(z.InnerDistance)),
			wire.O("outer_distance", wire.Number(z.OuterDistance)),
		)),
		wire.O("geometry", wire.NewObject(
			wire.O("type", wire.String("Polygon")),
			wire.O("coordinates", coords),
		)),
	)
}

func ringValue(ring []geo.GeoPoint, places int) wire.Array {
	arr := make(wire.Array, 0, len(ring))
	for _, pt := range ring {
		arr = append(arr, positionValue(pt, places))
	}
	return arr
}

func positionValue(pt geo.GeoPoint, places int) wire.Array {
	return wire.Array{
		wire.Decimal{V: pt.Lon, Places: places},
		wire.Decimal{V: pt.Lat, Places: places},
	}
}
