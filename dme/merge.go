package dme

import (
	"fmt"

	"github.com/katalvlaran/clocktree/geom"
)

// coreDistance dispatches to the point/segment L1 distance that matches
// both cores' concrete types.
func coreDistance(a, b geom.Corer) (int64, error) {
	switch av := a.(type) {
	case geom.Point:
		switch bv := b.(type) {
		case geom.Point:
			return geom.L1(av, bv), nil
		case geom.Segment:
			return geom.DistancePointSegment(av, bv)
		}
	case geom.Segment:
		switch bv := b.(type) {
		case geom.Point:
			return geom.DistancePointSegment(bv, av)
		case geom.Segment:
			return geom.DistanceSegmentSegment(av, bv)
		}
	}

	return 0, fmt.Errorf("dme: unsupported core type pair %T/%T", a, b)
}

// elmoreDelay is the per-edge Elmore delay model: the delay from the near
// end of a wire of the given length down to the sinks, where the far end
// carries a subtree with delay subtreeDelay and downstreamCap of
// capacitance.
func elmoreDelay(subtreeDelay float64, length int64, w WireType, downstreamCap float64) float64 {
	l := float64(length)

	return subtreeDelay + l*w.ResPerUnit*(l*w.CapPerUnit/2+downstreamCap)
}

// Merge computes the zero-skew merge of two DME nodes along wire type w. It
// solves for the tapping distance eA on [0, d] (d = core_distance(l, r)),
// builds the two children's TRRs at radii eA and d-eA, and intersects them
// into the parent's merging region. The returned bool reports whether the
// unclamped solution fell outside [0, d] — a detour case, recorded but not
// compensated with extra wire, matching the original's behavior.
func Merge(l, r Node, w WireType) (Node, bool, error) {
	d, err := coreDistance(l.Core, r.Core)
	if err != nil {
		return Node{}, false, err
	}
	if d == 0 {
		return Node{}, false, fmt.Errorf("%w: zero coreDistance", ErrGeometryInvariant)
	}
	df := float64(d)
	c, res := w.CapPerUnit, w.ResPerUnit

	denom := res * (l.LdCap + r.LdCap + c*df)
	if denom == 0 {
		return Node{}, false, fmt.Errorf("%w: zero denominator in the zero-skew equation", ErrGeometryInvariant)
	}

	eA := ((r.Delay - l.Delay) + (df*df*res*c)/2 + df*res*r.LdCap) / denom

	detour := eA < 0 || eA > df
	switch {
	case eA < 0:
		eA = 0
	case eA > df:
		eA = df
	}

	// Radii are integral (geom.TRR.Radius is int64), so eA's continuous
	// solution is truncated here; new_delay's max guards against the
	// resulting rounding error, per spec.md §4.D step 5.
	eALen := int64(eA)
	eBLen := d - eALen
	if eBLen < 0 {
		eBLen = 0
	}

	trrL := geom.NewTRR(l.Core, eALen)
	trrR := geom.NewTRR(r.Core, eBLen)

	newCore, ok := geom.Intersect(trrL, trrR)
	if !ok {
		return Node{}, false, fmt.Errorf("%w: empty TRR intersection", ErrGeometryInvariant)
	}

	delayL := elmoreDelay(l.Delay, eALen, w, l.LdCap)
	delayR := elmoreDelay(r.Delay, eBLen, w, r.LdCap)
	newDelay := delayL
	if delayR > newDelay {
		newDelay = delayR
	}

	newLoad := l.LdCap + r.LdCap + df*c

	return Node{Core: newCore, LdCap: newLoad, Delay: newDelay}, detour, nil
}
