// Package clocktree orchestrates the full clock-tree synthesis pipeline:
// parse an ISPD benchmark file, build a blockage index, synthesize an
// abstract topology, embed it with zero-skew deferred-merge embedding, and
// serialize the result.
//
// The pipeline is entirely single-threaded and synchronous: Run either
// completes or returns the first error encountered, and never writes a
// partial output file.
package clocktree
