package topology

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/clocktree/blockage"
)

// Sink is one terminal the tree must reach.
type Sink struct {
	ID    string
	X, Y  int64
	LdCap float64
}

// Source is the tree's root terminal.
type Source struct {
	Name string
	X, Y int64
}

// Synthesize builds an abstract topology connecting source to every sink,
// via pass-based nearest-neighbor agglomerative clustering. blocks may be
// nil or empty for NNA; DNNA consults it for the blockage-overlap cost term
// B and treats a nil/empty index as B=0 for every pair (§4.B's documented
// optimization: an empty index never contributes overlap).
func Synthesize(source Source, sinks []Sink, settings Settings, blocks *blockage.Index) (Result, error) {
	if err := settings.Validate(); err != nil {
		return Result{}, err
	}
	n := len(sinks)
	if n == 0 {
		return Result{
			Nodes: []TreeNode{{Kind: SourceNode, Idx: 0, X: source.X, Y: source.Y}},
			Tags:  map[int32]string{0: source.Name},
		}, nil
	}

	active := make(map[int32]TreeNode, n)
	tags := make(map[int32]string, n+1)
	tags[0] = source.Name

	for i, s := range sinks {
		idx := int32(i + 1)
		node := TreeNode{Kind: SinkNode, Idx: idx, X: s.X, Y: s.Y, LdCap: s.LdCap}
		if !node.isFinite() {
			return Result{}, ErrInvalidInput
		}
		active[idx] = node
		tags[idx] = s.ID
	}

	allNodes := make([]TreeNode, 0, 2*n)
	for idx := int32(1); idx <= int32(n); idx++ {
		allNodes = append(allNodes, active[idx])
	}
	var edges [][2]int32
	nextIdx := int32(n + 1)
	root := int32(0)

	pq := &pairQueue{}
	heap.Init(pq)
	for a := int32(1); a <= int32(n); a++ {
		for b := a + 1; b <= int32(n); b++ {
			na, nb := active[a], active[b]
			cost, err := pairCost(na, nb, settings, blocks)
			if err != nil {
				return Result{}, err
			}
			heap.Push(pq, NodePair{Cost: cost, A: na, B: nb})
		}
	}

	for pq.Len() > 0 {
		visited := make(map[int32]bool, len(active))
		var picked []NodePair
		activeSize := len(active)
		minCost := math.NaN()

		// Mirrors the original's do-while: a pair is always consumed before
		// the termination predicate is consulted, so the pair that first
		// crosses the threshold is still included as the pass's last pick.
		for pq.Len() > 0 {
			candidate := heap.Pop(pq).(NodePair)
			if visited[candidate.A.Idx] || visited[candidate.B.Idx] ||
				!isActive(active, candidate.A.Idx) || !isActive(active, candidate.B.Idx) {
				continue
			}

			visited[candidate.A.Idx] = true
			visited[candidate.B.Idx] = true
			picked = append(picked, candidate)
			if math.IsNaN(minCost) {
				minCost = candidate.Cost
			}

			var done bool
			if settings.Algo == DNNA {
				done = candidate.Cost > minCost*settings.Delta
			} else {
				done = float64(len(picked)*2) > float64(activeSize)*settings.Delta
			}
			if done {
				break
			}
		}

		if len(picked) == 0 {
			break
		}

		for _, pair := range picked {
			merged := pair.simpleMerge(nextIdx)
			nextIdx++

			delete(active, pair.A.Idx)
			delete(active, pair.B.Idx)
			active[merged.Idx] = merged
			allNodes = append(allNodes, merged)
			edges = append(edges, [2]int32{merged.Idx, pair.A.Idx}, [2]int32{merged.Idx, pair.B.Idx})
			root = merged.Idx

			for otherIdx, other := range active {
				if otherIdx == merged.Idx {
					continue
				}
				cost, err := pairCost(merged, other, settings, blocks)
				if err != nil {
					return Result{}, err
				}
				heap.Push(pq, NodePair{Cost: cost, A: merged, B: other})
			}
		}
	}

	// Normally exactly one node remains active once the queue drains (the
	// final merged root). With a single sink, no pair ever existed to merge
	// it, so root must be read off the active set directly rather than from
	// the last pick.
	for idx := range active {
		root = idx
	}

	edges = append(edges, [2]int32{0, root})
	allNodes = append(allNodes, TreeNode{Kind: SourceNode, Idx: 0, X: source.X, Y: source.Y})

	return Result{Nodes: allNodes, Edges: edges, Tags: tags}, nil
}

func isActive(active map[int32]TreeNode, idx int32) bool {
	_, ok := active[idx]

	return ok
}

// pairCost computes the merge cost of a and b under settings.Algo.
func pairCost(a, b TreeNode, settings Settings, blocks *blockage.Index) (float64, error) {
	d := float64(l1(a, b))

	if settings.Algo == NNA {
		return d, nil
	}

	maxCap := math.Max(a.LdCap, b.LdCap)
	var loadBalance float64
	if maxCap > 0 {
		loadBalance = math.Abs(a.LdCap-b.LdCap) / maxCap
	}
	totalLoad := a.LdCap + b.LdCap

	var overlap float64
	if blocks != nil && blocks.Len() > 0 {
		x1, x2 := a.X, b.X
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		y1, y2 := a.Y, b.Y
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		p, err := blocks.OverlapPerimeter(x1, y1, x2, y2)
		if err != nil {
			return 0, err
		}
		overlap = float64(p)
	}

	cost := d *
		(1 + overlap/settings.Alpha) *
		(1 + loadBalance/settings.Beta) *
		(1 + totalLoad/settings.Gamma)

	return cost, nil
}

func l1(a, b TreeNode) int64 {
	return abs64(a.X-b.X) + abs64(a.Y-b.Y)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
