package ispd_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/clocktree/geom"
	"github.com/katalvlaran/clocktree/ispd"
	"github.com/stretchr/testify/require"
)

const sampleFile = `0 0 100 100
source clk 50 0 INV_X1
num sink 2
s1 10 10 1.5
s2 90 90 2.0
num wire 1
0 0.01 0.1
num buffer 0
vdd param 1.1 1.2
slew limit 500
cap limit 1000
blockage 20 20 40 40
blockage 60 60 80 80
`

func TestParseFullFile(t *testing.T) {
	in, err := ispd.Parse(strings.NewReader(sampleFile))
	require.NoError(t, err)

	require.Equal(t, geom.Point{X: 0, Y: 0}, in.Floorplan.LL)
	require.Equal(t, geom.Point{X: 100, Y: 100}, in.Floorplan.UR)

	require.Equal(t, "clk", in.Source.Name)
	require.Equal(t, geom.Point{X: 50, Y: 0}, in.Source.Point)
	require.Equal(t, "INV_X1", in.Source.DefaultBuffer)

	require.Len(t, in.Sinks, 2)
	require.Equal(t, "s1", in.Sinks[0].ID)
	require.Equal(t, 1.5, in.Sinks[0].Cap)

	require.Len(t, in.Wires, 1)
	require.InDelta(t, 0.01, in.Wires[0].CapPerUnit, 1e-9)

	require.Empty(t, in.Buffers)

	require.InDelta(t, 1.1, in.Sim.VDDParam1, 1e-9)
	require.Equal(t, int64(500), in.Sim.SlewLimit)
	require.Equal(t, int64(1000), in.Sim.CapLimit)

	require.Len(t, in.Blockages, 2)
	require.Equal(t, ispd.Blockage{X1: 20, Y1: 20, X2: 40, Y2: 40}, in.Blockages[0])
}

func TestParseNoSinks(t *testing.T) {
	const noSinks = `0 0 10 10
source clk 5 0 BUF
num sink 0
num wire 1
0 0.01 0.1
num buffer 0
vdd param 1.0 1.0
slew limit 1
cap limit 1
`
	in, err := ispd.Parse(strings.NewReader(noSinks))
	require.NoError(t, err)
	require.Empty(t, in.Sinks)
	require.Len(t, in.Wires, 1)
}

func TestParseInvalidFloorplan(t *testing.T) {
	_, err := ispd.Parse(strings.NewReader("not a floorplan\n"))
	require.ErrorIs(t, err, ispd.ErrInvalidInput)
}

func TestParseRejectsNegativeCount(t *testing.T) {
	const negativeSinkCount = `0 0 10 10
source clk 5 0 BUF
num sink -3
`
	_, err := ispd.Parse(strings.NewReader(negativeSinkCount))
	require.ErrorIs(t, err, ispd.ErrInvalidInput)
}
