package geom

// Slope classifies the direction of a Segment. Only SlopePos and SlopeNeg
// arise from deferred-merge embedding (45° Manhattan rotations), but the
// geometry kernel itself also has closed-form distance support for the
// axis-aligned cases (SlopeZero, SlopeInf) since the kernel-level test
// surface (unlike DME) exercises arbitrary segments. Any segment whose
// slope is none of these four is classified SlopeOther and rejected by
// distance queries — the spec's Open Question on the original's broken
// brute-force stepping applies to this case, not to the axis-aligned ones.
type Slope int

const (
	SlopeZero Slope = iota
	SlopePos
	SlopeNeg
	SlopeInf
	SlopeOther
)

// Segment is an ordered pair of points normalized so P1.X <= P2.X. A
// degenerate segment (P1 == P2) is permitted and represents a single point.
type Segment struct {
	P1, P2 Point
}

// NewSegment builds a Segment from two points, normalizing the endpoint
// order so P1.X <= P2.X (and, for vertical segments, P1.Y <= P2.Y).
func NewSegment(a, b Point) Segment {
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
	}

	return Segment{P1: a, P2: b}
}

// isCore marks Segment as a valid TRR core (see Corer).
func (s Segment) isCore() {}

// Degenerate reports whether the segment collapses to a single point.
func (s Segment) Degenerate() bool { return s.P1.Equal(s.P2) }

// Slope classifies the segment's direction among {0, +1, -1, ∞}, or
// SlopeOther if it is none of those (a degenerate segment has no direction
// and classifies as SlopeZero by convention, matching its trivial distance
// formula).
func (s Segment) Slope() Slope {
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	switch {
	case s.Degenerate():
		return SlopeZero
	case dx == 0:
		return SlopeInf
	case dy == 0:
		return SlopeZero
	case dy == dx:
		return SlopePos
	case dy == -dx:
		return SlopeNeg
	default:
		return SlopeOther
	}
}

// line45 returns the 45° line constant for a SlopePos segment (y-x) or a
// SlopeNeg segment (y+x). Only meaningful for those two slopes.
func (s Segment) line45() int64 {
	if s.Slope() == SlopePos {
		return s.P1.Y - s.P1.X
	}

	return s.P1.Y + s.P1.X
}

// clampAxis returns the minimum |v-t| for t ranging over [lo,hi], 0 if v
// already falls inside the range.
func clampAxis(v, lo, hi int64) int64 {
	switch {
	case v < lo:
		return lo - v
	case v > hi:
		return v - hi
	default:
		return 0
	}
}

// DistancePointSegment computes the minimum L1 distance between a point and
// any lattice point on a segment. Degenerate segments reduce to point-point
// distance; SlopeZero/SlopeInf segments reduce to one clamped axis term
// plus a constant offset; SlopePos/SlopeNeg segments use the closed form
// that minimizes |a.X-x|+|b-x| over the segment's x-range, per the
// resolution of the point-to-segment distance Open Question (the original
// brute-forces by stepping a slope-derived delta, which is wrong for
// non-±1 slopes and can loop forever for vertical ones). A segment whose
// slope is none of {0,+1,-1,∞} is rejected with ErrUnsupportedSlope.
func DistancePointSegment(a Point, s Segment) (int64, error) {
	if s.Degenerate() {
		return L1(a, s.P1), nil
	}

	switch s.Slope() {
	case SlopeZero:
		return abs64(a.Y-s.P1.Y) + clampAxis(a.X, s.P1.X, s.P2.X), nil
	case SlopeInf:
		lo, hi := s.P1.Y, s.P2.Y
		if lo > hi {
			lo, hi = hi, lo
		}

		return abs64(a.X-s.P1.X) + clampAxis(a.Y, lo, hi), nil
	case SlopePos, SlopeNeg:
		// Reduce to a 1-D problem: minimize |a.X-x|+|b-x| over x in
		// [x1,x2], where b folds in the line's 45° offset so both
		// diagonal slopes share one derivation.
		c := s.line45()
		var b int64
		if s.Slope() == SlopePos {
			b = a.Y - c
		} else {
			b = c - a.Y
		}

		x1, x2 := s.P1.X, s.P2.X
		lo, hi := a.X, b
		if lo > hi {
			lo, hi = hi, lo
		}

		switch {
		case x2 < lo:
			return f1D(a.X, b, x2), nil
		case x1 > hi:
			return f1D(a.X, b, x1), nil
		default:
			return abs64(a.X - b), nil
		}
	default:
		return 0, ErrUnsupportedSlope
	}
}

// f1D evaluates |ax-x| + |b-x|, the 1-D objective used by
// DistancePointSegment for diagonal segments.
func f1D(ax, b, x int64) int64 {
	return abs64(ax-x) + abs64(b-x)
}

// DistanceSegmentSegment computes the minimum L1 distance between two
// segments as the minimum over the four endpoint-to-segment queries.
func DistanceSegmentSegment(a, b Segment) (int64, error) {
	candidates := []struct {
		p Point
		s Segment
	}{
		{a.P1, b},
		{a.P2, b},
		{b.P1, a},
		{b.P2, a},
	}

	best := int64(-1)
	for _, c := range candidates {
		d, err := DistancePointSegment(c.p, c.s)
		if err != nil {
			return 0, err
		}
		if best == -1 || d < best {
			best = d
		}
	}

	return best, nil
}
