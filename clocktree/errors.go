package clocktree

import "errors"

// ErrOutOfBounds indicates the source or a sink falls outside the input
// file's declared floorplan rectangle.
var ErrOutOfBounds = errors.New("clocktree: terminal falls outside floorplan bounds")

// ErrNoWires indicates the input file's wire library is empty, so no wire
// type exists for DME to use.
var ErrNoWires = errors.New("clocktree: wire library is empty")

// ErrBadWireIndex indicates Config.WireIndex is out of range for the
// input file's wire library.
var ErrBadWireIndex = errors.New("clocktree: WireIndex out of range")
