package dme_test

import (
	"testing"

	"github.com/katalvlaran/clocktree/dme"
	"github.com/katalvlaran/clocktree/topology"
	"github.com/stretchr/testify/require"
)

func TestEmbedEndToEnd(t *testing.T) {
	sinks := []topology.Sink{
		{ID: "s1", X: 0, Y: 0, LdCap: 1},
		{ID: "s2", X: 10, Y: 0, LdCap: 1},
		{ID: "s3", X: 0, Y: 10, LdCap: 1},
		{ID: "s4", X: 10, Y: 10, LdCap: 1},
	}
	topo, err := topology.Synthesize(
		topology.Source{Name: "clk", X: 5, Y: 5},
		sinks,
		topology.NewSettings(topology.WithDelta(1)),
		nil,
	)
	require.NoError(t, err)

	wire := dme.WireType{CapPerUnit: 0.001, ResPerUnit: 0.01}
	embedded, detours, err := dme.Embed(topo, wire)
	require.NoError(t, err)
	require.Empty(t, detours)

	// Every sink and internal node (everything but the source) must have
	// been embedded.
	for _, n := range topo.Nodes {
		if n.Kind == topology.SourceNode {
			continue
		}
		node, ok := embedded[n.Idx]
		require.Truef(t, ok, "node %d missing from embedding", n.Idx)
		require.NotNil(t, node.Core)
	}
}

func TestEmbedNoSinksIsNoop(t *testing.T) {
	topo, err := topology.Synthesize(
		topology.Source{Name: "clk"}, nil, topology.NewSettings(), nil,
	)
	require.NoError(t, err)

	embedded, detours, err := dme.Embed(topo, dme.WireType{CapPerUnit: 1, ResPerUnit: 1})
	require.NoError(t, err)
	require.Empty(t, embedded)
	require.Empty(t, detours)
}

func TestEmbedRejectsNonBinaryInternalNode(t *testing.T) {
	topo := topology.Result{
		Nodes: []topology.TreeNode{
			{Kind: topology.SourceNode, Idx: 0, X: 0, Y: 0},
			{Kind: topology.SinkNode, Idx: 1, X: 0, Y: 0, LdCap: 1},
			{Kind: topology.SinkNode, Idx: 2, X: 5, Y: 5, LdCap: 1},
			{Kind: topology.SinkNode, Idx: 3, X: 9, Y: 9, LdCap: 1},
			{Kind: topology.InternalNode, Idx: 4, X: 3, Y: 3, LdCap: 3},
		},
		Edges: [][2]int32{{4, 1}, {4, 2}, {4, 3}, {0, 4}},
		Tags:  map[int32]string{0: "clk"},
	}

	_, _, err := dme.Embed(topo, dme.WireType{CapPerUnit: 0.01, ResPerUnit: 0.1})
	require.ErrorIs(t, err, dme.ErrStructural)
}
