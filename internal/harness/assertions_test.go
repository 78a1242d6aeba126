package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrace() []TraceEvent {
	return []TraceEvent{
		{Seq: 1, Op: OpTriangular, Outcome: OutcomeOK},
		{Seq: 2, Op: OpMakeClockboard, Outcome: "INVALID_INPUT"},
		{Seq: 3, Op: OpMakeClockboard, Outcome: OutcomeOK},
		{Seq: 4, Op: OpTriangular, Outcome: OutcomeOK},
	}
}

func TestAssertTraceContains(t *testing.T) {
	trace := sampleTrace()

	assert.NoError(t, assertTraceContains(trace, Assertion{Op: OpMakeClockboard}))
	assert.NoError(t, assertTraceContains(trace, Assertion{Op: OpMakeClockboard, Outcome: "INVALID_INPUT"}))

	err := assertTraceContains(trace, Assertion{Op: OpTriangular, Outcome: "INVALID_INPUT"})
	require.Error(t, err)
	var ae *AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, AssertTraceContains, ae.Type)
	assert.Equal(t, "generate_triangular_sequence -> INVALID_INPUT", ae.Expected)
}

func TestAssertTraceOrder(t *testing.T) {
	trace := sampleTrace()

	tests := []struct {
		name string
		ops  []string
		ok   bool
	}{
		{"single", []string{OpMakeClockboard}, true},
		{"intervening allowed", []string{OpTriangular, OpTriangular}, true},
		{"repeated op", []string{OpMakeClockboard, OpMakeClockboard, OpTriangular}, true},
		{"wrong order", []string{OpMakeClockboard, OpTriangular, OpTriangular}, false},
		{"missing op", []string{"make_grid"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := assertTraceOrder(trace, Assertion{Type: AssertTraceOrder, Ops: tt.ops})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAssertTraceCount(t *testing.T) {
	trace := sampleTrace()

	assert.NoError(t, assertTraceCount(trace, Assertion{Op: OpMakeClockboard, Count: 2}))
	assert.NoError(t, assertTraceCount(trace, Assertion{Op: OpMakeClockboard, Outcome: OutcomeOK, Count: 1}))
	assert.NoError(t, assertTraceCount(trace, Assertion{Op: "make_grid", Count: 0}))

	err := assertTraceCount(trace, Assertion{Op: OpTriangular, Count: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 occurrences")
}

func TestEvaluateAssertions(t *testing.T) {
	result := NewResult()
	result.Trace = sampleTrace()

	errs := EvaluateAssertions(result, []Assertion{
		{Type: AssertTraceContains, Op: OpTriangular},
		{Type: AssertTraceCount, Op: OpTriangular, Count: 5},
		{Type: "final_state"},
	})

	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "trace_count")
	assert.Contains(t, errs[1], `unknown assertion type "final_state"`)
}

func TestAssertionError_ErrorFormat(t *testing.T) {
	err := &AssertionError{
		Type:     AssertTraceCount,
		Expected: "1 occurrences of make_clockboard",
		Actual:   "0 occurrences",
		Trace:    sampleTrace()[:2],
	}

	want := "Assertion failed: trace_count\n" +
		"  Expected: 1 occurrences of make_clockboard\n" +
		"  Actual: 0 occurrences\n" +
		"\nFull trace:\n" +
		"  [1] generate_triangular_sequence -> ok\n" +
		"  [2] make_clockboard -> INVALID_INPUT\n"
	assert.Equal(t, want, err.Error())
}
