package dme

import "errors"

// ErrStructural indicates an internal topology node does not have exactly
// two children, which deferred-merge embedding requires (the original's
// "last two children seen" handling silently accepted this; here it is an
// error, not a silent truncation).
var ErrStructural = errors.New("dme: internal node does not have exactly two children")

// ErrGeometryInvariant indicates a merge step produced a geometrically
// impossible result: a zero core-to-core distance, a zero denominator in
// the zero-skew equation (zero wire resistance, or no load at all), or two
// merging-region TRRs that fail to intersect at all. Each is a defect in
// the upstream topology or wire data, not a recoverable condition.
var ErrGeometryInvariant = errors.New("dme: geometry invariant violated")
