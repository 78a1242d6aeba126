package params

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/zonebuilder/internal/clockboard"
	"github.com/roach88/zonebuilder/internal/geo"
)

// Schema is the CUE definition every clockboard document is unified with.
const Schema = `
#Clockboard: {
	center: {
		lat: number
		lon: number
	}
	distances?: [...number]
	rings?:     int
	scale?:     number
	segments?:  int
	arc_step?:  number
	precision?: int
}
`

// LoadCUE resolves CUE source against base. filename is used in error
// positions only.
func LoadCUE(data []byte, filename string, base clockboard.Params) (clockboard.Params, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(Schema, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return clockboard.Params{}, fmt.Errorf("compiling params schema: %w", err)
	}

	file := ctx.CompileBytes(data, cue.Filename(filename))
	if err := file.Err(); err != nil {
		return clockboard.Params{}, formatCUEError(err, "clockboard")
	}

	v := file.LookupPath(cue.ParsePath("clockboard"))
	if !v.Exists() {
		return clockboard.Params{}, &CompileError{
			Field:   "clockboard",
			Message: "clockboard is required",
			File:    filename,
		}
	}

	v = v.Unify(schema.LookupPath(cue.ParsePath("#Clockboard")))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return clockboard.Params{}, formatCUEError(err, "clockboard")
	}

	doc, err := decodeCUE(v)
	if err != nil {
		return clockboard.Params{}, err
	}
	return resolve(doc, base, filename)
}

func decodeCUE(v cue.Value) (document, error) {
	var doc document

	lat, err := v.LookupPath(cue.ParsePath("center.lat")).Float64()
	if err != nil {
		return doc, formatCUEError(err, "center.lat")
	}
	lon, err := v.LookupPath(cue.ParsePath("center.lon")).Float64()
	if err != nil {
		return doc, formatCUEError(err, "center.lon")
	}
	doc.Center = &geo.GeoPoint{Lat: lat, Lon: lon}

	if dv := v.LookupPath(cue.ParsePath("distances")); dv.Exists() {
		iter, err := dv.List()
		if err != nil {
			return doc, formatCUEError(err, "distances")
		}
		doc.Distances = []float64{}
		for i := 0; iter.Next(); i++ {
			d, err := iter.Value().Float64()
			if err != nil {
				return doc, formatCUEError(err, fmt.Sprintf("distances[%d]", i))
			}
			doc.Distances = append(doc.Distances, d)
		}
	}

	if doc.Rings, err = optionalInt(v, "rings"); err != nil {
		return doc, err
	}
	if doc.Scale, err = optionalFloat(v, "scale"); err != nil {
		return doc, err
	}
	if doc.Segments, err = optionalInt(v, "segments"); err != nil {
		return doc, err
	}
	if doc.ArcStep, err = optionalFloat(v, "arc_step"); err != nil {
		return doc, err
	}
	if doc.Precision, err = optionalInt(v, "precision"); err != nil {
		return doc, err
	}
	return doc, nil
}

func optionalInt(v cue.Value, field string) (*int, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return nil, nil
	}
	n, err := fv.Int64()
	if err != nil {
		return nil, formatCUEError(err, field)
	}
	i := int(n)
	return &i, nil
}

func optionalFloat(v cue.Value, field string) (*float64, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return nil, nil
	}
	f, err := fv.Float64()
	if err != nil {
		return nil, formatCUEError(err, field)
	}
	return &f, nil
}

// formatCUEError converts a CUE error into a CompileError carrying the
// first reported position.
func formatCUEError(err error, field string) *CompileError {
	ce := &CompileError{Field: field, Message: err.Error()}
	for _, e := range cueerrors.Errors(err) {
		pos := e.Position()
		if pos.IsValid() {
			ce.File = pos.Filename()
			ce.Line = pos.Line()
			ce.Message = e.Error()
			break
		}
	}
	return ce
}
