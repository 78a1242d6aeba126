package harness

// Outcome recorded for a step that returned without error.
const OutcomeOK = "ok"

// TraceEvent records one engine call and what it returned.
type TraceEvent struct {
	Seq     int64  `json:"seq"`
	Op      string `json:"op"`
	Outcome string `json:"outcome"` // OutcomeOK or a geoerr code

	// Set for make_clockboard calls that succeeded.
	Zones  int      `json:"zones,omitempty"`
	Labels []string `json:"labels,omitempty"`
	Digest string   `json:"digest,omitempty"`

	// Set for generate_triangular_sequence calls that succeeded.
	Sequence []float64 `json:"sequence,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass is true if every expect clause and assertion matched.
	Pass bool `json:"pass"`

	// Trace contains one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddEvent appends ev to the trace, assigning the next sequence number.
func (r *Result) AddEvent(ev TraceEvent) TraceEvent {
	ev.Seq = int64(len(r.Trace) + 1)
	r.Trace = append(r.Trace, ev)
	return ev
}
