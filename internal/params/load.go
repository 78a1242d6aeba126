package params

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/zonebuilder/internal/clockboard"
	"github.com/roach88/zonebuilder/internal/geo"
	"github.com/roach88/zonebuilder/internal/sequence"
)

// CompileError reports a problem resolving a parameter file.
type CompileError struct {
	Field   string
	Message string
	File    string
	Line    int
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	loc := e.File
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	if loc != "" {
		return fmt.Sprintf("%s: %s: %s", loc, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// document is the format-neutral form of a parameter file. Pointer fields
// distinguish "absent" from zero.
type document struct {
	Center    *geo.GeoPoint `yaml:"center"`
	Distances []float64     `yaml:"distances"`
	Rings     *int          `yaml:"rings"`
	Scale     *float64      `yaml:"scale"`
	Segments  *int          `yaml:"segments"`
	ArcStep   *float64      `yaml:"arc_step"`
	Precision *int          `yaml:"precision"`
}

// Load reads path and resolves it against base.
func Load(path string, base clockboard.Params) (clockboard.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return clockboard.Params{}, fmt.Errorf("failed to read params file: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".cue":
		return LoadCUE(data, path, base)
	case ".yaml", ".yml":
		return LoadYAML(data, path, base)
	default:
		return clockboard.Params{}, &CompileError{
			Field:   "file",
			Message: fmt.Sprintf("unsupported params file extension %q (want .cue, .yaml or .yml)", ext),
			File:    path,
		}
	}
}

// resolve merges doc over base.
func resolve(doc document, base clockboard.Params, file string) (clockboard.Params, error) {
	p := base
	p.Distances = append([]float64(nil), base.Distances...)

	if doc.Center == nil {
		return clockboard.Params{}, &CompileError{Field: "center", Message: "center is required", File: file}
	}
	p.Center = *doc.Center

	switch {
	case doc.Distances != nil && (doc.Rings != nil || doc.Scale != nil):
		return clockboard.Params{}, &CompileError{
			Field:   "distances",
			Message: "distances and rings/scale are mutually exclusive",
			File:    file,
		}
	case doc.Distances != nil:
		p.Distances = doc.Distances
	case doc.Rings != nil || doc.Scale != nil || len(p.Distances) == 0:
		rings := clockboard.DefaultRings
		if doc.Rings != nil {
			rings = *doc.Rings
		}
		scale := clockboard.DefaultRingScale
		if doc.Scale != nil {
			scale = *doc.Scale
		}
		distances, err := sequence.RingDistances(rings, scale)
		if err != nil {
			return clockboard.Params{}, &CompileError{Field: "rings", Message: err.Error(), File: file}
		}
		p.Distances = distances
	}

	if doc.Segments != nil {
		p.Segments = *doc.Segments
	}
	if doc.ArcStep != nil {
		p.ArcStepDegrees = *doc.ArcStep
	}
	if doc.Precision != nil {
		p.Precision = *doc.Precision
	}
	return p, nil
}
