package maze

import "errors"

var (
	// ErrInvalidSize is returned when the grid size is not positive.
	ErrInvalidSize = errors.New("invalid maze size")

	// ErrExhaustedRandomSource is returned when the random source cannot
	// produce another draw.
	ErrExhaustedRandomSource = errors.New("random source exhausted")

	// ErrNotSpanningTree is returned by Verify when the passages do not form
	// a spanning tree of the grid.
	ErrNotSpanningTree = errors.New("passages do not form a spanning tree")
)
