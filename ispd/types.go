package ispd

import "github.com/katalvlaran/clocktree/geom"

// Floorplan is the chip's bounding rectangle.
type Floorplan struct {
	LL, UR geom.Point
}

// Contains reports whether p lies within the floorplan, inclusive.
func (f Floorplan) Contains(p geom.Point) bool {
	return p.X >= f.LL.X && p.X <= f.UR.X && p.Y >= f.LL.Y && p.Y <= f.UR.Y
}

// Source is the clock driver.
type Source struct {
	Point         geom.Point
	Name          string
	DefaultBuffer string
}

// Sink is a clock-consuming pin.
type Sink struct {
	ID    string
	Point geom.Point
	Cap   float64
}

// WireSpec is one entry of the routing-layer wire library.
type WireSpec struct {
	TypeID     int
	CapPerUnit float64
	ResPerUnit float64
}

// BufferSpec is one entry of the buffer library. This repository performs
// no buffer insertion; buffer specs are parsed (the format requires
// reading past them to reach the blockage records) and passed through
// unused.
type BufferSpec struct {
	ID         int
	Name       string
	Inverted   bool
	InCap      float64
	OutCap     float64
	Resistance float64
}

// Simulation holds the benchmark's timing-analysis parameters. Like
// BufferSpec, these are parsed but not acted on (no SI simulation, no
// slew-limit enforcement — see non-goals).
type Simulation struct {
	VDDParam1 float64
	VDDParam2 float64
	SlewLimit int64
	CapLimit  int64
}

// Blockage is an axis-aligned routing obstacle rectangle, inclusive
// bounds. This record type does not appear in the original's implemented
// parser body (its READ_BLOCKAGE mode constant exists but is never
// handled); it is recovered here because the blockage index is otherwise
// unreachable from a real input file.
type Blockage struct {
	X1, Y1, X2, Y2 int64
}

// InputParams is everything parsed from one ISPD benchmark file.
type InputParams struct {
	Floorplan Floorplan
	Source    Source
	Sinks     []Sink
	Wires     []WireSpec
	Buffers   []BufferSpec
	Sim       Simulation
	Blockages []Blockage
}

// OutputNode is one internal (Steiner) node in the serialized tree.
type OutputNode struct {
	Idx  int32
	X, Y int64
}

// OutputSinkTag maps a sink's tree index back to its original benchmark ID.
type OutputSinkTag struct {
	Idx int32
	Tag string
}

// OutputWire is one edge of the serialized tree, tagged with the wire
// library entry used to route it.
type OutputWire struct {
	From, To int32
	WireType int
}

// OutputRecord is the full synthesized-tree output, ready to serialize.
type OutputRecord struct {
	SourceNode int32
	SourceName string
	Nodes      []OutputNode
	SinkNodes  []OutputSinkTag
	Wires      []OutputWire
	Buffers    []OutputWire // always empty: no buffer insertion is performed.
}
