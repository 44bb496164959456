package geom

import "errors"

// ErrUnsupportedSlope indicates a point-to-segment distance query against a
// segment whose slope is not one of {0, ±1, ∞}. DME only ever produces
// ±1-slope merging segments; any other slope reaching this package means
// an upstream invariant was violated, so the kernel rejects rather than
// brute-forcing an approximate answer (see spec Open Questions).
var ErrUnsupportedSlope = errors.New("geom: unsupported segment slope for point distance")
