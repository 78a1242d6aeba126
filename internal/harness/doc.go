// Package harness runs scripted engine scenarios as executable contract tests.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: leeds_default
//	description: "Default clockboard around Leeds"
//	steps:
//	  - op: make_clockboard
//	    args: { lat: 53.8, lon: -1.5, distances: [1000, 3000], segments: 4 }
//	    expect:
//	      outcome: ok
//	      zones: 8
//	      labels: [A01, B04]
//	  - op: generate_triangular_sequence
//	    args: { n: 4 }
//	    expect:
//	      outcome: ok
//	      sequence: [0, 1, 3, 6]
//	assertions:
//	  - type: trace_count
//	    op: make_clockboard
//	    outcome: ok
//	    count: 1
//
// Rejected calls are not harness failures: the step records the error code
// (INVALID_INPUT, NUMERIC_DEGENERACY) as its outcome and expect clauses
// compare against it.
//
// # Assertion Types
//
//   - trace_contains: an event for op (and outcome, if given) exists
//   - trace_order: ops appear in order, other events may intervene
//   - trace_count: op (and outcome, if given) appears exactly count times
//
// # Deterministic Testing
//
// Every step logs under a fixed run id (scenario.run_id, default
// "test-run-default") and clockboard payloads are canonical, so a trace
// serializes to identical bytes on every run and can be compared against
// a golden file with RunWithGolden.
package harness
