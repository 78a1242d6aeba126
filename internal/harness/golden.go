package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/zonebuilder/internal/wire"
)

// TraceSnapshot captures the trace of a scenario execution.
type TraceSnapshot struct {
	ScenarioName string
	Trace        []TraceEvent
}

// Value converts the snapshot to a canonical wire value. Labels are left
// out; the digest already pins every feature.
func (s *TraceSnapshot) Value() wire.Value {
	events := make(wire.Array, 0, len(s.Trace))
	for _, ev := range s.Trace {
		obj := wire.NewObject(
			wire.O("seq", wire.Int(ev.Seq)),
			wire.O("op", wire.String(ev.Op)),
			wire.O("outcome", wire.String(ev.Outcome)),
		)
		if ev.Digest != "" {
			obj["zones"] = wire.Int(ev.Zones)
			obj["digest"] = wire.String(ev.Digest)
		}
		if ev.Sequence != nil {
			seq := make(wire.Array, 0, len(ev.Sequence))
			for _, v := range ev.Sequence {
				seq = append(seq, wire.Number(v))
			}
			obj["sequence"] = seq
		}
		events = append(events, obj)
	}

	return wire.NewObject(
		wire.O("scenario_name", wire.String(s.ScenarioName)),
		wire.O("trace", events),
	)
}

// RunWithGolden executes a scenario and compares the trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails. Test failure (via goldie)
// occurs if the trace doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result's trace against a golden file.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := GoldenBytes(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}

// GoldenBytes is the canonical JSON form of a result's trace.
func GoldenBytes(scenarioName string, result *Result) ([]byte, error) {
	snapshot := TraceSnapshot{ScenarioName: scenarioName, Trace: result.Trace}
	return wire.MarshalCanonical(snapshot.Value())
}
