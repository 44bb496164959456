package ispd

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOutput serializes rec in the benchmark's output format:
//
//	sourcenode <idx> <name>
//	num node <M>
//	<idx> <x> <y>        (x M)
//	num sinknode <N>
//	<idx> <tag>          (x N)
//	num wire <W>
//	<from> <to> <type>   (x W)
//	num buffer <B>
//	<from> <to> <type>   (x B)
func WriteOutput(w io.Writer, rec OutputRecord) error {
	buf := bufio.NewWriter(w)

	fmt.Fprintf(buf, "sourcenode %d %s\n", rec.SourceNode, rec.SourceName)

	fmt.Fprintf(buf, "num node %d\n", len(rec.Nodes))
	for _, n := range rec.Nodes {
		fmt.Fprintf(buf, "%d %d %d\n", n.Idx, n.X, n.Y)
	}

	fmt.Fprintf(buf, "num sinknode %d\n", len(rec.SinkNodes))
	for _, s := range rec.SinkNodes {
		fmt.Fprintf(buf, "%d %s\n", s.Idx, s.Tag)
	}

	fmt.Fprintf(buf, "num wire %d\n", len(rec.Wires))
	for _, wire := range rec.Wires {
		fmt.Fprintf(buf, "%d %d %d\n", wire.From, wire.To, wire.WireType)
	}

	fmt.Fprintf(buf, "num buffer %d\n", len(rec.Buffers))
	for _, b := range rec.Buffers {
		fmt.Fprintf(buf, "%d %d %d\n", b.From, b.To, b.WireType)
	}

	return buf.Flush()
}
