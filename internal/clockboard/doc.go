// Package clockboard partitions the area around a center point into
// sector x ring zones and serializes their boundaries.
//
// Conventions:
//   - k distances define k rings; ring 0 spans from the center to the first
//     distance, so the first distance must be strictly positive
//   - sector i spans bearings [i*360/n, (i+1)*360/n) clockwise from north
//   - zones are ordered sector-major, ring-minor
//   - with a single segment every zone is a full annulus; rings past the
//     first carry the inner circle as a hole
//
// Build is pure: identical Params always yield identical zones, and Encode
// yields byte-identical payloads.
package clockboard
