package ispd_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/clocktree/ispd"
	"github.com/stretchr/testify/require"
)

func TestWriteOutput(t *testing.T) {
	rec := ispd.OutputRecord{
		SourceNode: 0,
		SourceName: "clk",
		Nodes:      []ispd.OutputNode{{Idx: 3, X: 5, Y: 5}},
		SinkNodes:  []ispd.OutputSinkTag{{Idx: 1, Tag: "s1"}, {Idx: 2, Tag: "s2"}},
		Wires:      []ispd.OutputWire{{From: 3, To: 1, WireType: 0}, {From: 3, To: 2, WireType: 0}, {From: 0, To: 3, WireType: 0}},
	}

	var buf strings.Builder
	require.NoError(t, ispd.WriteOutput(&buf, rec))

	want := "sourcenode 0 clk\n" +
		"num node 1\n" +
		"3 5 5\n" +
		"num sinknode 2\n" +
		"1 s1\n" +
		"2 s2\n" +
		"num wire 3\n" +
		"3 1 0\n" +
		"3 2 0\n" +
		"0 3 0\n" +
		"num buffer 0\n"

	require.Equal(t, want, buf.String())
}
