package dme_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/clocktree/dme"
	"github.com/katalvlaran/clocktree/geom"
	"github.com/stretchr/testify/require"
)

func TestMergeZeroSkew(t *testing.T) {
	wire := dme.WireType{CapPerUnit: 0.01, ResPerUnit: 0.1}
	l := dme.Node{Core: geom.Point{X: 0, Y: 0}, LdCap: 2, Delay: 0}
	r := dme.Node{Core: geom.Point{X: 10, Y: 0}, LdCap: 3, Delay: 0}

	merged, detour, err := dme.Merge(l, r, wire)
	require.NoError(t, err)
	require.False(t, detour)
	require.NotNil(t, merged.Core)
	require.Greater(t, merged.LdCap, 0.0)
	require.False(t, math.IsNaN(merged.Delay))

	// Independently recompute each child's post-merge Elmore delay from the
	// merging region's actual geometry (not from dme's own formula) to
	// verify the merge truly balances them, per property 6: any residual
	// skew must come only from eA's continuous solution being truncated to
	// an integer TRR radius, never from an unbalanced closed form.
	core, ok := merged.Core.(geom.Point)
	require.True(t, ok)
	eALen := geom.L1(l.Core.(geom.Point), core)
	eBLen := geom.L1(r.Core.(geom.Point), core)

	delayL := float64(eALen) * wire.ResPerUnit * (float64(eALen)*wire.CapPerUnit/2 + l.LdCap)
	delayR := float64(eBLen) * wire.ResPerUnit * (float64(eBLen)*wire.CapPerUnit/2 + r.LdCap)

	const epsilon = 1.0 // bound on skew from truncating eA to an integer radius
	require.InDelta(t, delayL, delayR, epsilon)
	require.InDelta(t, math.Max(delayL, delayR), merged.Delay, 1e-9)
}

func TestMergeSegmentCore(t *testing.T) {
	wire := dme.WireType{CapPerUnit: 0.01, ResPerUnit: 0.1}
	l := dme.Node{Core: geom.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 5}), LdCap: 1}
	r := dme.Node{Core: geom.Point{X: 20, Y: 0}, LdCap: 1}

	_, _, err := dme.Merge(l, r, wire)
	require.NoError(t, err)
}

func TestMergeZeroLoadZeroDistanceIsInvariantViolation(t *testing.T) {
	wire := dme.WireType{CapPerUnit: 0.01, ResPerUnit: 0.1}
	same := dme.Node{Core: geom.Point{X: 1, Y: 1}, LdCap: 0}

	_, _, err := dme.Merge(same, same, wire)
	require.ErrorIs(t, err, dme.ErrGeometryInvariant)
}

func TestMergeDetourRecordedWhenUnbalanced(t *testing.T) {
	wire := dme.WireType{CapPerUnit: 0.01, ResPerUnit: 0.1}
	// A large delay head start on l forces the unclamped eA below 0.
	l := dme.Node{Core: geom.Point{X: 0, Y: 0}, LdCap: 1, Delay: 1000}
	r := dme.Node{Core: geom.Point{X: 5, Y: 0}, LdCap: 1, Delay: 0}

	merged, detour, err := dme.Merge(l, r, wire)
	require.NoError(t, err)
	require.True(t, detour)
	require.NotNil(t, merged.Core)
}
