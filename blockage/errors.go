package blockage

import "errors"

// ErrInvalidRect indicates a rectangle with x1 > x2 or y1 > y2 was passed to
// Insert or OverlapPerimeter. Both bounds are inclusive per spec.md §4.B.
var ErrInvalidRect = errors.New("blockage: rectangle bounds must satisfy x1<=x2 and y1<=y2")
