// Package topology synthesizes an abstract clock-tree topology from a
// source and a set of sinks using pass-based nearest-neighbor agglomerative
// clustering. Two variants are supported:
//
//   - NNA:  cost is plain L1 distance; a pass keeps picking pairs until the
//     picked nodes exceed a Delta fraction of the active nodes, and the
//     pair that crosses that threshold is still picked.
//   - DNNA: cost additionally penalizes blockage overlap along a routing
//     corridor and load imbalance between the two nodes; a pass keeps
//     picking pairs until one costs more than Delta times the pass's
//     cheapest pair, and that pair is still picked.
//
// The output is a rooted binary tree over every sink plus the source,
// connected through freshly allocated internal (Steiner) nodes, consumed
// read-only downstream by package dme.
//
// Complexity: O(N² log N) time and O(N²) memory for N sinks, dominated by
// the all-pairs cost enumeration and the priority queue it feeds.
package topology
