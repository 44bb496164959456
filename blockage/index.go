package blockage

import "sort"

// strip is one disjoint x-interval's vertical obstacle profile: the union
// (not necessarily merged — see spec.md §4.B) of y-intervals covered by
// obstacles within that strip.
type strip struct {
	x  Interval
	ys []Interval
}

// Index is a rectilinear obstacle store. The zero value is an empty index
// ready to use. Index is not safe for concurrent insertion and querying;
// callers must serialize access, matching spec.md §5's single-threaded
// resource policy.
type Index struct {
	strips []strip // sorted ascending by x.Lo; strips[i].x.Hi < strips[i+1].x.Lo
}

// NewIndex returns an empty blockage index.
func NewIndex() *Index {
	return &Index{}
}

// Len reports the number of distinct x-intervals currently stored.
func (idx *Index) Len() int { return len(idx.strips) }

// Insert records an obstacle rectangle [x1,x2] x [y1,y2] (inclusive
// bounds). The x-axis partition invariant — stored x-intervals are
// disjoint and ordered — is maintained by splitting any existing
// x-interval that partially overlaps [x1,x2] and absorbing [y1,y2] into
// every strip that lies within [x1,x2], new or split.
func (idx *Index) Insert(x1, y1, x2, y2 int64) error {
	if x1 > x2 || y1 > y2 {
		return ErrInvalidRect
	}
	target := Interval{Lo: x1, Hi: x2}
	yRange := Interval{Lo: y1, Hi: y2}

	// Partition existing strips into those untouched by [x1,x2] and those
	// that overlap it (which may need splitting).
	var untouched []strip
	var touched []strip
	for _, s := range idx.strips {
		if s.x.overlaps(target) {
			touched = append(touched, s)
		} else {
			untouched = append(untouched, s)
		}
	}
	sort.Slice(touched, func(i, j int) bool { return touched[i].x.Lo < touched[j].x.Lo })

	var fresh []strip
	cursor := x1
	for _, s := range touched {
		// Gap between cursor and this strip's start: not covered by any
		// existing obstacle yet, becomes a brand-new strip.
		if s.x.Lo > cursor {
			fresh = append(fresh, strip{x: Interval{Lo: cursor, Hi: s.x.Lo - 1}, ys: []Interval{yRange}})
		}
		// Portion of s before x1: retained unchanged (only the first
		// touched strip can have this).
		if s.x.Lo < x1 {
			fresh = append(fresh, strip{x: Interval{Lo: s.x.Lo, Hi: x1 - 1}, ys: cloneYs(s.ys)})
		}
		// Overlap portion: inherits s's y-set plus the new obstacle's
		// y-range.
		overlapLo, overlapHi := s.x.Lo, s.x.Hi
		if overlapLo < x1 {
			overlapLo = x1
		}
		if overlapHi > x2 {
			overlapHi = x2
		}
		ys := cloneYs(s.ys)
		if !containsInterval(ys, yRange) {
			ys = append(ys, yRange)
		}
		fresh = append(fresh, strip{x: Interval{Lo: overlapLo, Hi: overlapHi}, ys: ys})
		// Portion of s after x2: retained unchanged (only the last
		// touched strip can have this).
		if s.x.Hi > x2 {
			fresh = append(fresh, strip{x: Interval{Lo: x2 + 1, Hi: s.x.Hi}, ys: cloneYs(s.ys)})
		}
		cursor = overlapHi + 1
	}
	if cursor <= x2 {
		fresh = append(fresh, strip{x: Interval{Lo: cursor, Hi: x2}, ys: []Interval{yRange}})
	}

	idx.strips = append(untouched, fresh...)
	sort.Slice(idx.strips, func(i, j int) bool { return idx.strips[i].x.Lo < idx.strips[j].x.Lo })

	return nil
}

func containsInterval(ys []Interval, iv Interval) bool {
	for _, y := range ys {
		if y == iv {
			return true
		}
	}

	return false
}

func cloneYs(ys []Interval) []Interval {
	out := make([]Interval, len(ys))
	copy(out, ys)

	return out
}

// OverlapPerimeter returns the total length of the query rectangle's
// boundary [x1,x2] x [y1,y2] (inclusive) that lies inside or on the edge
// of any stored obstacle. The four sides are handled independently: the
// two horizontal sides (y=y1, y=y2) contribute each x-strip's overlap with
// [x1,x2] (not the strip's full width) for any strip whose y-coverage
// includes that y; the two vertical sides (x=x1, x=x2) contribute the
// strip's merged y-coverage overlap with [y1,y2], counted only for strips
// whose x-range actually touches x1 or x2 respectively.
func (idx *Index) OverlapPerimeter(x1, y1, x2, y2 int64) (int64, error) {
	if x1 > x2 || y1 > y2 {
		return 0, ErrInvalidRect
	}
	query := Interval{Lo: x1, Hi: x2}

	var total int64
	for _, s := range idx.strips {
		if !s.x.overlaps(query) {
			continue
		}

		horizontalLen := s.x.overlapLen(query)
		if yContains(s.ys, y1) {
			total += horizontalLen
		}
		if y2 != y1 && yContains(s.ys, y2) {
			total += horizontalLen
		}

		if s.x.contains(x1) || s.x.contains(x2) {
			qy := Interval{Lo: y1, Hi: y2}
			sideOverlap := mergedOverlapLen(s.ys, qy)
			if s.x.contains(x1) {
				total += sideOverlap
			}
			if s.x.contains(x2) && x2 != x1 {
				total += sideOverlap
			}
		}
	}

	return total, nil
}

func yContains(ys []Interval, y int64) bool {
	for _, iv := range ys {
		if iv.contains(y) {
			return true
		}
	}

	return false
}
