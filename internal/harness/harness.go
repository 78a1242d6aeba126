package harness

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/zonebuilder/internal/engine"
	"github.com/roach88/zonebuilder/internal/geoerr"
	"github.com/roach88/zonebuilder/internal/logging"
	"github.com/roach88/zonebuilder/internal/wire"
)

// Harness executes scenario steps against the engine.
type Harness struct {
	logger *slog.Logger
	runIDs logging.RunIDGenerator
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger routes engine log lines to l. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		if l != nil {
			h.logger = l
		}
	}
}

// Run executes a scenario with a discarding logger.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	h := &Harness{
		logger: logging.Discard(),
		runIDs: logging.NewFixedRunIDGenerator(scenario.RunID),
	}
	for _, opt := range opts {
		opt(h)
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		ev, err := h.executeStep(step)
		if err != nil {
			return nil, fmt.Errorf("steps[%d]: %w", i, err)
		}
		ev = result.AddEvent(ev)
		if step.Expect != nil {
			for _, msg := range checkExpect(i, ev, step.Expect) {
				result.AddError(msg)
			}
		}
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

func (h *Harness) engineFor(args StepArgs) *engine.Engine {
	opts := []engine.Option{
		engine.WithLogger(h.logger),
		engine.WithRunIDGenerator(h.runIDs),
	}
	if args.ArcStep != nil {
		opts = append(opts, engine.WithArcStep(*args.ArcStep))
	}
	if args.Precision != nil {
		opts = append(opts, engine.WithPrecision(*args.Precision))
	}
	return engine.New(opts...)
}

// executeStep performs one call. A rejected call is recorded as an event
// with the error code as its outcome; only harness failures return an error.
func (h *Harness) executeStep(step Step) (TraceEvent, error) {
	eng := h.engineFor(step.Args)
	ev := TraceEvent{Op: step.Op, Outcome: OutcomeOK}

	switch step.Op {
	case OpMakeClockboard:
		payload, err := eng.MakeClockboard(*step.Args.Lat, *step.Args.Lon, step.Args.Distances, *step.Args.Segments)
		if err != nil {
			return outcomeOf(ev, err)
		}
		labels, err := featureLabels(payload)
		if err != nil {
			return ev, err
		}
		ev.Zones = len(labels)
		ev.Labels = labels
		ev.Digest = wire.Digest(wire.ClockboardFormat, []byte(payload))

	case OpTriangular:
		seq, err := eng.GenerateTriangularSequence(*step.Args.N)
		if err != nil {
			return outcomeOf(ev, err)
		}
		ev.Sequence = seq

	default:
		return ev, fmt.Errorf("unknown op %q", step.Op)
	}
	return ev, nil
}

func outcomeOf(ev TraceEvent, err error) (TraceEvent, error) {
	code := geoerr.CodeOf(err)
	if code == "" {
		return ev, err
	}
	ev.Outcome = string(code)
	return ev, nil
}

type featureCollection struct {
	Features []struct {
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// featureLabels reads the zone labels back out of a payload, in order.
func featureLabels(payload string) ([]string, error) {
	var fc featureCollection
	if err := json.Unmarshal([]byte(payload), &fc); err != nil {
		return nil, fmt.Errorf("decode clockboard payload: %w", err)
	}
	labels := make([]string, 0, len(fc.Features))
	for _, f := range fc.Features {
		labels = append(labels, f.Properties.Label)
	}
	return labels, nil
}

func checkExpect(index int, ev TraceEvent, want *ExpectClause) []string {
	var errs []string
	if ev.Outcome != want.Outcome {
		errs = append(errs, fmt.Sprintf("steps[%d]: expected outcome %s, got %s", index, want.Outcome, ev.Outcome))
		return errs
	}
	if want.Zones != nil && ev.Zones != *want.Zones {
		errs = append(errs, fmt.Sprintf("steps[%d]: expected %d zones, got %d", index, *want.Zones, ev.Zones))
	}
	for _, label := range want.Labels {
		if !slices.Contains(ev.Labels, label) {
			errs = append(errs, fmt.Sprintf("steps[%d]: label %s not found", index, label))
		}
	}
	if want.Sequence != nil && !slices.Equal(ev.Sequence, want.Sequence) {
		errs = append(errs, fmt.Sprintf("steps[%d]: expected sequence %v, got %v", index, want.Sequence, ev.Sequence))
	}
	return errs
}
