package geom_test

import (
	"testing"

	"github.com/katalvlaran/clocktree/geom"
	"github.com/stretchr/testify/require"
)

func TestDistanceSegmentSegment(t *testing.T) {
	a := geom.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 5})
	b := geom.NewSegment(geom.Point{X: 2, Y: 3}, geom.Point{X: 8, Y: 3})

	d, err := geom.DistanceSegmentSegment(a, b)
	require.NoError(t, err)
	require.Equal(t, int64(1), d)
}

func TestDistancePointSegmentDegenerate(t *testing.T) {
	s := geom.NewSegment(geom.Point{X: 3, Y: 3}, geom.Point{X: 3, Y: 3})
	d, err := geom.DistancePointSegment(geom.Point{X: 0, Y: 0}, s)
	require.NoError(t, err)
	require.Equal(t, int64(6), d)
}

func TestDistancePointSegmentUnsupportedSlope(t *testing.T) {
	s := geom.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 6, Y: 2})
	_, err := geom.DistancePointSegment(geom.Point{X: 0, Y: 0}, s)
	require.ErrorIs(t, err, geom.ErrUnsupportedSlope)
}

func TestSlopeClassification(t *testing.T) {
	require.Equal(t, geom.SlopePos, geom.NewSegment(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 5}).Slope())
	require.Equal(t, geom.SlopeNeg, geom.NewSegment(geom.Point{X: 0, Y: 5}, geom.Point{X: 5, Y: 0}).Slope())
	require.Equal(t, geom.SlopeZero, geom.NewSegment(geom.Point{X: 0, Y: 3}, geom.Point{X: 5, Y: 3}).Slope())
	require.Equal(t, geom.SlopeInf, geom.NewSegment(geom.Point{X: 3, Y: 0}, geom.Point{X: 3, Y: 5}).Slope())
}
