// Package geom provides the Manhattan (L1) geometry kernel used throughout
// clocktree: integer lattice points, normalized rectilinear segments, and
// tilted rectilinear regions (TRRs) — the Minkowski sum of a point or a
// ±1-slope segment with an L1 disk of integer radius.
//
// TRRs are the merging-region primitive of deferred-merge embedding: every
// internal node of a zero-skew clock tree is placed somewhere on the
// intersection of two TRRs grown from its children's cores. This package
// only knows about the plane; it has no notion of capacitance, delay, or
// trees — those live in package dme.
//
// Complexity:
//   - L1 distance point-point: O(1).
//   - L1 distance point-segment: O(1) closed form for ±1-slope segments.
//   - TRR construction: O(1).
//   - TRR intersection: O(1) (16 fixed boundary-edge pairs).
package geom
