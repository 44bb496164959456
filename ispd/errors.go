package ispd

import "errors"

// ErrInvalidInput indicates a record was missing fields or had a
// non-numeric field where a number was expected.
var ErrInvalidInput = errors.New("ispd: malformed input record")
