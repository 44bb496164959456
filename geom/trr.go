package geom

// Corer is implemented by the two possible TRR merging-region centers: a
// single Point or a ±1-slope Segment. It replaces the original's tagged
// union (DMECore{Kind, variant<pt_t,seg_t>}) with a small sum-type
// interface, per the Design Notes' tagged-variant guidance.
type Corer interface {
	isCore()
}

// TRR (tilted rectilinear region) is the Minkowski sum of a core (point or
// ±1-slope segment) with an L1 disk of integer radius. It is represented by
// its four apex points rather than computed on demand, since both TRR
// intersection and zero-skew merging only ever need the apices.
type TRR struct {
	Core        Corer
	Radius      int64
	Left, Right Point
	Up, Down    Point
}

// NewTRR builds a TRR from a core and a non-negative radius.
func NewTRR(core Corer, radius int64) TRR {
	moveX := Point{X: radius, Y: 0}
	moveY := Point{X: 0, Y: radius}

	switch c := core.(type) {
	case Point:
		return TRR{
			Core:   core,
			Radius: radius,
			Left:   c.Sub(moveX),
			Right:  c.Add(moveX),
			Up:     c.Add(moveY),
			Down:   c.Sub(moveY),
		}
	case Segment:
		a, b := c.P1, c.P2
		up, down := a, b
		if b.Y > a.Y {
			up, down = b, a
		}
		right, left := a, b
		if b.X > a.X {
			right, left = b, a
		}

		return TRR{
			Core:   core,
			Radius: radius,
			Up:     up.Add(moveY),
			Down:   down.Sub(moveY),
			Right:  right.Add(moveX),
			Left:   left.Sub(moveX),
		}
	default:
		panic("geom: unsupported TRR core type")
	}
}

// boundary returns the TRR's four ±1-slope boundary edges, in the fixed
// order (Right→Down, Up→Right, Left→Up, Down→Left) spec.md names.
func (t TRR) boundary() [4]Segment {
	return [4]Segment{
		NewSegment(t.Right, t.Down),
		NewSegment(t.Up, t.Right),
		NewSegment(t.Left, t.Up),
		NewSegment(t.Down, t.Left),
	}
}

// Intersect computes the intersection of two TRRs' boundaries, returning
// (core, true) when the boundaries meet at a point or along a collinear
// overlap, or (nil, false) when they never touch. Intersection is computed
// by pairwise testing the 16 combinations of the two TRRs' four boundary
// edges; when multiple pairs intersect (possible along a shared edge), any
// one valid intersection is returned, matching spec.md's edge-case note.
func Intersect(a, b TRR) (Corer, bool) {
	aEdges := a.boundary()
	bEdges := b.boundary()

	for _, ea := range aEdges {
		for _, eb := range bEdges {
			if core, ok := segmentIntersect(ea, eb); ok {
				return core, true
			}
		}
	}

	return nil, false
}

// segmentIntersect implements spec.md's collinearity rule: two segments
// intersect only when they share the same ±1 slope and lie on the same 45°
// line, in which case the result is the coordinate-wise x-overlap; a
// degenerate (point) segment is a special case handled by collinearity
// plus x-range containment.
func segmentIntersect(l, r Segment) (Corer, bool) {
	if l.Degenerate() && r.Degenerate() {
		if l.P1.Equal(r.P1) {
			return l.P1, true
		}

		return nil, false
	}
	if l.Degenerate() {
		return pointOnSegment(l.P1, r)
	}
	if r.Degenerate() {
		return pointOnSegment(r.P1, l)
	}

	ls, rs := l.Slope(), r.Slope()
	if ls != rs || (ls != SlopePos && ls != SlopeNeg) {
		return nil, false
	}
	if l.line45() != r.line45() {
		return nil, false
	}

	lo := l.P1.X
	if r.P1.X > lo {
		lo = r.P1.X
	}
	hi := l.P2.X
	if r.P2.X < hi {
		hi = r.P2.X
	}
	if lo > hi {
		return nil, false
	}

	p1 := pointOnLine45(l, lo)
	p2 := pointOnLine45(l, hi)
	if p1.Equal(p2) {
		return p1, true
	}

	return NewSegment(p1, p2), true
}

// pointOnLine45 returns the point at the given x coordinate on the ±1-slope
// line s lies on.
func pointOnLine45(s Segment, x int64) Point {
	c := s.line45()
	if s.Slope() == SlopePos {
		return Point{X: x, Y: x + c}
	}

	return Point{X: x, Y: c - x}
}

// pointOnSegment reports whether p lies on segment s: collinear (same ±1
// slope and line) and within s's x-range, or coincident when s is itself
// degenerate.
func pointOnSegment(p Point, s Segment) (Corer, bool) {
	if s.Degenerate() {
		if p.Equal(s.P1) {
			return p, true
		}

		return nil, false
	}

	switch s.Slope() {
	case SlopePos:
		if p.Y-p.X != s.line45() {
			return nil, false
		}
	case SlopeNeg:
		if p.Y+p.X != s.line45() {
			return nil, false
		}
	default:
		return nil, false
	}

	if p.X < s.P1.X || p.X > s.P2.X {
		return nil, false
	}

	return p, true
}
