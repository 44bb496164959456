package dme

import "github.com/katalvlaran/clocktree/geom"

// Node is one embedded point in the deferred-merge tree: a merging region
// (point or ±1-slope segment core), its downstream load capacitance, and
// its Elmore delay from this core to every sink beneath it.
type Node struct {
	Core  geom.Corer
	LdCap float64
	Delay float64
}

// WireType is a routing layer's per-unit-length capacitance and resistance,
// renamed from spec.md's w=(c,r) pair for clarity at call sites.
type WireType struct {
	CapPerUnit float64
	ResPerUnit float64
}
