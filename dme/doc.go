// Package dme performs deferred-merge embedding: given an abstract topology
// tree (package topology) and a wire type, it computes zero-skew merging
// regions bottom-up and returns, for every sink and internal node, its
// merging-region core (a point or a ±1-slope segment), load, and Elmore
// delay. Choosing one concrete point inside a segment core is left to the
// caller.
//
// Traversal is iterative (an explicit post-order worklist), not recursive,
// so a deeply skewed topology never risks stack exhaustion.
package dme
