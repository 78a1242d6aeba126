package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/zonebuilder/internal/geoerr"
)

// Operations a step may call.
const (
	OpMakeClockboard = "make_clockboard"
	OpTriangular     = "generate_triangular_sequence"
)

// Scenario is a scripted sequence of engine calls with expectations.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps are executed in order against a fresh engine.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final trace.
	// Supported types: trace_contains, trace_order, trace_count
	Assertions []Assertion `yaml:"assertions,omitempty"`

	// RunID is an optional fixed run id for log lines.
	// If empty, defaults to "test-run-default".
	RunID string `yaml:"run_id,omitempty"`
}

// Step is one engine call.
type Step struct {
	// Op is OpMakeClockboard or OpTriangular.
	Op string `yaml:"op"`

	Args StepArgs `yaml:"args"`

	// Expect specifies the expected outcome.
	// If nil, no validation is performed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// StepArgs holds the arguments of either operation. Numeric arguments are
// float64 so scenarios can exercise non-integral host values.
type StepArgs struct {
	Lat       *float64  `yaml:"lat,omitempty"`
	Lon       *float64  `yaml:"lon,omitempty"`
	Distances []float64 `yaml:"distances,omitempty"`
	Segments  *float64  `yaml:"segments,omitempty"`
	ArcStep   *float64  `yaml:"arc_step,omitempty"`
	Precision *int      `yaml:"precision,omitempty"`

	N *float64 `yaml:"n,omitempty"`
}

// ExpectClause specifies the expected result of a step.
type ExpectClause struct {
	// Outcome is "ok" or an error code such as INVALID_INPUT.
	Outcome string `yaml:"outcome"`

	// Zones is the expected number of features.
	Zones *int `yaml:"zones,omitempty"`

	// Labels must all appear among the feature labels.
	Labels []string `yaml:"labels,omitempty"`

	// Sequence is the exact expected triangular sequence.
	Sequence []float64 `yaml:"sequence,omitempty"`
}

// Assertion validates the trace.
type Assertion struct {
	// Type specifies the assertion type:
	// - "trace_contains": an event for Op with Outcome exists
	// - "trace_order": ops appear in order
	// - "trace_count": Op appears exactly Count times
	Type string `yaml:"type"`

	// Op is the operation name (trace_contains, trace_count).
	Op string `yaml:"op,omitempty"`

	// Outcome narrows trace_contains and trace_count. Empty matches any.
	Outcome string `yaml:"outcome,omitempty"`

	// Count is the expected number of occurrences (trace_count).
	Count int `yaml:"count,omitempty"`

	// Ops is the expected order (trace_order).
	Ops []string `yaml:"ops,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields, or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // catches typos like "assertion:" vs "assertions:"
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(index int, s *Step) error {
	switch s.Op {
	case OpMakeClockboard:
		if s.Args.Lat == nil || s.Args.Lon == nil {
			return fmt.Errorf("steps[%d]: lat and lon are required for %s", index, s.Op)
		}
		if s.Args.Segments == nil {
			return fmt.Errorf("steps[%d]: segments is required for %s", index, s.Op)
		}
	case OpTriangular:
		if s.Args.N == nil {
			return fmt.Errorf("steps[%d]: n is required for %s", index, s.Op)
		}
	case "":
		return fmt.Errorf("steps[%d]: op is required", index)
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, s.Op)
	}

	if s.Expect != nil {
		if !validOutcome(s.Expect.Outcome) {
			return fmt.Errorf("steps[%d].expect: unknown outcome %q", index, s.Expect.Outcome)
		}
	}
	return nil
}

func validOutcome(o string) bool {
	switch geoerr.Code(o) {
	case OutcomeOK, geoerr.InvalidInput, geoerr.NumericDegeneracy:
		return true
	}
	return false
}

func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTraceContains:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_contains", index)
		}
	case AssertTraceOrder:
		if len(a.Ops) == 0 {
			return fmt.Errorf("assertions[%d]: ops list is required for trace_order", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	if a.Outcome != "" && !validOutcome(a.Outcome) {
		return fmt.Errorf("assertions[%d]: unknown outcome %q", index, a.Outcome)
	}
	return nil
}
