package engine

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/zonebuilder/internal/clockboard"
	"github.com/roach88/zonebuilder/internal/geo"
	"github.com/roach88/zonebuilder/internal/geoerr"
	"github.com/roach88/zonebuilder/internal/logging"
	"github.com/roach88/zonebuilder/internal/sequence"
	"github.com/roach88/zonebuilder/internal/wire"
)

// Engine computes clockboards and sequences.
type Engine struct {
	logger         *slog.Logger
	runIDs         logging.RunIDGenerator
	arcStepDegrees float64
	precision      int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the base logger. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRunIDGenerator sets the run id source used to tag log lines.
// Default: UUIDv7.
func WithRunIDGenerator(g logging.RunIDGenerator) Option {
	return func(e *Engine) {
		if g != nil {
			e.runIDs = g
		}
	}
}

// WithArcStep sets the arc sampling step used by MakeClockboard.
func WithArcStep(degrees float64) Option {
	return func(e *Engine) {
		e.arcStepDegrees = degrees
	}
}

// WithPrecision sets the coordinate decimal places used by MakeClockboard.
func WithPrecision(places int) Option {
	return func(e *Engine) {
		e.precision = places
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:         logging.Discard(),
		runIDs:         logging.UUIDv7Generator{},
		arcStepDegrees: clockboard.DefaultArcStepDegrees,
		precision:      clockboard.DefaultPrecision,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Output is a serialized clockboard.
type Output struct {
	Payload []byte
	Digest  string
	Zones   int
}

// MakeClockboard builds the clockboard around (lat, lon) and returns its
// payload. numSegments must be a whole number >= 1.
func (e *Engine) MakeClockboard(lat, lon float64, distances []float64, numSegments float64) (string, error) {
	segments, err := sequence.WholeNumber("num_segments", numSegments)
	if err != nil {
		return "", e.reject("make_clockboard", err)
	}

	p := clockboard.Params{
		Center:         geo.GeoPoint{Lat: lat, Lon: lon},
		Distances:      slices.Clone(distances),
		Segments:       segments,
		ArcStepDegrees: e.arcStepDegrees,
		Precision:      e.precision,
	}
	out, err := e.Clockboard(p)
	if err != nil {
		return "", err
	}
	return string(out.Payload), nil
}

// Clockboard builds and encodes p.
func (e *Engine) Clockboard(p clockboard.Params) (*Output, error) {
	logger, _ := logging.WithRun(e.logger, e.runIDs)

	res, err := clockboard.Build(p)
	if err != nil {
		return nil, e.rejectWith(logger, "make_clockboard", err)
	}
	payload, err := clockboard.Encode(res)
	if err != nil {
		return nil, fmt.Errorf("make_clockboard: %w", err)
	}

	out := &Output{
		Payload: payload,
		Digest:  wire.Digest(wire.ClockboardFormat, payload),
		Zones:   len(res.Zones),
	}
	logger.Debug("built clockboard",
		slog.Int("segments", p.Segments),
		slog.Int("rings", p.RingCount()),
		slog.Int("zones", out.Zones),
		slog.Int("bytes", len(payload)),
		slog.String("digest", out.Digest),
	)
	return out, nil
}

// GenerateTriangularSequence returns T(0..n-1). n must be a whole number >= 0.
func (e *Engine) GenerateTriangularSequence(n float64) ([]float64, error) {
	seq, err := sequence.TriangularFloat(n)
	if err != nil {
		return nil, e.reject("generate_triangular_sequence", err)
	}
	return seq, nil
}

func (e *Engine) reject(op string, err error) error {
	logger, _ := logging.WithRun(e.logger, e.runIDs)
	return e.rejectWith(logger, op, err)
}

func (e *Engine) rejectWith(logger *slog.Logger, op string, err error) error {
	logger.Warn("rejected call",
		slog.String("op", op),
		slog.String("code", string(geoerr.CodeOf(err))),
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("%s: %w", op, err)
}
