// Package engine exposes the two host-facing operations of the zone builder:
//
//	MakeClockboard(lat, lon, distances, numSegments) -> payload text
//	GenerateTriangularSequence(n) -> numbers
//
// Arguments arrive as host numbers (float64) and are checked here before
// being handed to the clockboard and sequence packages. Results are owned by
// the caller: the engine keeps no reference to argument or result slices.
//
// The Engine holds no mutable state. Every call is independent and safe to
// make concurrently from multiple goroutines.
package engine
