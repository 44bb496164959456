// Package topology defines core types and functional-option configuration
// for the clock-tree topology synthesizer, in the style of
// dijkstra.Options/prim_kruskal.MSTOptions.
package topology

import (
	"errors"
	"math"
)

// Sentinel errors returned by Synthesize.
var (
	// ErrInvalidInput indicates a sink, source, or cost-function field was
	// non-finite (NaN or ±Inf).
	ErrInvalidInput = errors.New("topology: input contains a non-finite field")

	// ErrBadDelta indicates Delta was configured <= 0, which would make
	// every pass terminate before picking a single pair.
	ErrBadDelta = errors.New("topology: Delta must be positive")

	// ErrBadDNNAParams indicates Alpha, Beta, or Gamma was configured <= 0
	// for DNNA, which would divide by zero in the cost function.
	ErrBadDNNAParams = errors.New("topology: Alpha, Beta, and Gamma must be positive for DNNA")
)

// Algorithm selects the topology generation strategy.
//
//   - NNA:  https://ieeexplore.ieee.org/document/1600293 — plain distance
//     cost, passes bounded by a fixed fraction of active nodes.
//   - DNNA: https://ieeexplore.ieee.org/document/5419850 — cost additionally
//     weighs blockage overlap and load balance; passes bounded by a
//     cost-ratio band.
type Algorithm int

const (
	NNA Algorithm = iota
	DNNA
)

// String renders the algorithm name for logging.
func (a Algorithm) String() string {
	if a == DNNA {
		return "DNNA"
	}

	return "NNA"
}

// Settings configures a synthesis run. Alpha, Beta, and Gamma only matter
// for DNNA; NNA only consults Delta.
type Settings struct {
	Algo               Algorithm
	Alpha, Beta, Gamma float64
	Delta              float64
}

// Option configures Settings.
type Option func(*Settings)

// WithAlgorithm selects NNA or DNNA.
func WithAlgorithm(a Algorithm) Option {
	return func(s *Settings) { s.Algo = a }
}

// WithAlpha sets the DNNA blockage-penalty scale.
func WithAlpha(alpha float64) Option {
	return func(s *Settings) { s.Alpha = alpha }
}

// WithBeta sets the DNNA load-balance-penalty scale.
func WithBeta(beta float64) Option {
	return func(s *Settings) { s.Beta = beta }
}

// WithGamma sets the DNNA total-load-penalty scale.
func WithGamma(gamma float64) Option {
	return func(s *Settings) { s.Gamma = gamma }
}

// WithDelta sets the per-pass termination parameter (fraction for NNA,
// cost-ratio band for DNNA).
func WithDelta(delta float64) Option {
	return func(s *Settings) { s.Delta = delta }
}

// DefaultSettings returns NNA with Delta=0.5, matching the original
// contest entry's default configuration (see Main.cpp).
func DefaultSettings() Settings {
	return Settings{
		Algo:  NNA,
		Delta: 0.5,
	}
}

// NewSettings builds Settings from functional options layered over
// DefaultSettings.
func NewSettings(opts ...Option) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Validate reports ErrBadDelta if Delta is non-positive.
func (s Settings) Validate() error {
	if s.Delta <= 0 || math.IsNaN(s.Delta) || math.IsInf(s.Delta, 0) {
		return ErrBadDelta
	}
	if s.Algo == DNNA && (!isPositiveFinite(s.Alpha) || !isPositiveFinite(s.Beta) || !isPositiveFinite(s.Gamma)) {
		return ErrBadDNNAParams
	}

	return nil
}

// isPositiveFinite reports whether v is a finite number greater than zero,
// rejecting NaN and ±Inf as well as non-positive values.
func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NodeKind tags a TreeNode's role in the tree.
type NodeKind int

const (
	SinkNode NodeKind = iota
	InternalNode
	SourceNode
)

// TreeNode is a node of the abstract topology: a sink, an internal
// (Steiner) node, or the source. Idx uniquely identifies the node: the
// source is 0, sinks are 1..N, internal nodes are N+1..2N-1.
type TreeNode struct {
	Kind  NodeKind
	Idx   int32
	X, Y  int64
	LdCap float64
}

// isFinite reports whether X, Y (always finite as int64) and LdCap are
// usable; LdCap is the only float64 field on TreeNode so it's the only one
// that can be non-finite.
func (n TreeNode) isFinite() bool {
	return !math.IsNaN(n.LdCap) && !math.IsInf(n.LdCap, 0)
}

// NodePair is a candidate merge: two active nodes and the cost of merging
// them. The priority order places the smallest cost first; ties break on
// the lexicographically smaller (min(idx), max(idx)) pair, matching
// spec.md §5's deterministic tie-break rule.
type NodePair struct {
	Cost float64
	A, B TreeNode
}

// less reports whether p sorts before q under the canonical priority
// order: cost ascending, then (min idx, max idx) ascending.
func (p NodePair) less(q NodePair) bool {
	if p.Cost != q.Cost {
		return p.Cost < q.Cost
	}

	pMin, pMax := minMaxIdx(p.A.Idx, p.B.Idx)
	qMin, qMax := minMaxIdx(q.A.Idx, q.B.Idx)
	if pMin != qMin {
		return pMin < qMin
	}

	return pMax < qMax
}

func minMaxIdx(a, b int32) (int32, int32) {
	if a < b {
		return a, b
	}

	return b, a
}

// simpleMerge creates the internal node resulting from merging p.A and
// p.B at array index resIdx: midpoint coordinates, summed load capacitance.
// A smarter capacitance-weighted merge is a known suboptimality (see
// spec.md §9), left as future work.
func (p NodePair) simpleMerge(resIdx int32) TreeNode {
	return TreeNode{
		Kind:  InternalNode,
		Idx:   resIdx,
		X:     (p.A.X + p.B.X) / 2,
		Y:     (p.A.Y + p.B.Y) / 2,
		LdCap: p.A.LdCap + p.B.LdCap,
	}
}

// Result is the output of Synthesize: every node (sinks, internal nodes,
// source) and the tree's edges, plus a map from node index to its original
// tag (sink or source name) for serialization.
type Result struct {
	Nodes []TreeNode
	Edges [][2]int32
	Tags  map[int32]string
}
