// Package blockage implements an ordered 2-D interval index over
// axis-aligned obstacle rectangles, supporting incremental insertion and
// overlap-perimeter queries. It is the building block spec.md's DNNA
// topology cost function consults to penalize routing corridors that cross
// placed-down blockages.
//
// The index partitions the x-axis into disjoint intervals; each x-interval
// owns a set of y-intervals describing the union of obstacles within that
// vertical strip. There is no deletion: blockages are loaded once from the
// input file and then queried repeatedly during topology synthesis.
//
// Complexity: with n stored x-intervals, OverlapPerimeter scans every
// stored interval, O(n), and Insert scans and re-sorts all of them,
// O(n log n). Neither operation is bounded by the number of intervals it
// actually touches.
package blockage
