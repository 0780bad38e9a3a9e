package maze

import "errors"

var (
	// ErrInvalidDimensions reports a lattice request with a non-positive
	// width, height or floor count.
	ErrInvalidDimensions = errors.New("maze: dimensions must be positive")

	// ErrOutOfBounds reports a position outside the lattice.
	ErrOutOfBounds = errors.New("maze: position outside the grid")

	// ErrNotAdjacent reports a connect request toward a side with no
	// in-bounds neighbor behind it.
	ErrNotAdjacent = errors.New("maze: cells are not adjacent")
)
