package dme

import (
	"fmt"

	"github.com/katalvlaran/clocktree/geom"
	"github.com/katalvlaran/clocktree/topology"
)

// Embed walks topo bottom-up from the unique child of the source node
// (index 0) and returns the embedded Node for every sink and internal
// node, plus the indices of internal nodes whose merge was a detour case
// (for the caller to log). Leaves get a point core at their coordinates
// and zero delay; internal nodes are produced by Merge.
func Embed(topo topology.Result, wire WireType) (map[int32]Node, []int32, error) {
	byIdx := make(map[int32]topology.TreeNode, len(topo.Nodes))
	for _, n := range topo.Nodes {
		byIdx[n.Idx] = n
	}

	children := make(map[int32][]int32, len(topo.Nodes))
	for _, e := range topo.Edges {
		parent, child := e[0], e[1]
		children[parent] = append(children[parent], child)
	}

	sourceKids := children[0]
	if len(sourceKids) == 0 {
		return map[int32]Node{}, nil, nil
	}
	if len(sourceKids) != 1 {
		return nil, nil, fmt.Errorf("%w: source has %d children, want exactly 1", ErrStructural, len(sourceKids))
	}
	root := sourceKids[0]

	order := postOrder(root, children)

	embedded := make(map[int32]Node, len(order))
	var detours []int32

	for _, idx := range order {
		node := byIdx[idx]
		switch node.Kind {
		case topology.SinkNode:
			embedded[idx] = Node{
				Core:  geom.Point{X: node.X, Y: node.Y},
				LdCap: node.LdCap,
			}
		case topology.InternalNode:
			kids := children[idx]
			if len(kids) != 2 {
				return nil, nil, fmt.Errorf("%w: node %d has %d children, want exactly 2", ErrStructural, idx, len(kids))
			}
			merged, detour, err := Merge(embedded[kids[0]], embedded[kids[1]], wire)
			if err != nil {
				return nil, nil, err
			}
			embedded[idx] = merged
			if detour {
				detours = append(detours, idx)
			}
		default:
			return nil, nil, fmt.Errorf("%w: node %d has unexpected kind in embedding subtree", ErrStructural, idx)
		}
	}

	return embedded, detours, nil
}

// postOrder returns root's subtree node indices in post-order, using an
// explicit stack of (node, next-child-to-visit) frames rather than
// recursion, so embedding depth is bounded only by heap, not call stack.
func postOrder(root int32, children map[int32][]int32) []int32 {
	type frame struct {
		idx     int32
		nextKid int
	}

	order := make([]int32, 0, len(children)*2+1)
	stack := []frame{{idx: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		kids := children[top.idx]
		if top.nextKid < len(kids) {
			child := kids[top.nextKid]
			top.nextKid++
			stack = append(stack, frame{idx: child})

			continue
		}

		order = append(order, top.idx)
		stack = stack[:len(stack)-1]
	}

	return order
}
