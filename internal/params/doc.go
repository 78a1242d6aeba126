// Package params loads clockboard parameter files.
//
// Two formats are accepted, chosen by file extension:
//
//	.cue         CUE, checked against the #Clockboard definition
//	.yaml, .yml  YAML, decoded strictly (unknown fields are errors)
//
// Both describe the same document:
//
//	clockboard: {
//		center: {lat: 53.8, lon: -1.5}
//		distances: [1000, 3000, 6000]   // or rings: 5, scale: 1000
//		segments:  12
//		arc_step:  3
//		precision: 7
//	}
//
// Omitted fields take their value from the base Params passed to Load.
// Loading only resolves the document; range checks belong to
// clockboard.Validate so callers can report every problem at once.
package params
