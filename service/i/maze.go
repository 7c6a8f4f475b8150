package i

import (
	"context"

	dmn "github.com/beka-birhanu/frontier-maze/domain"
)

// MazeGenerator builds mazes on request.
type MazeGenerator interface {
	// Generate builds a size×size maze. A nil seed selects the
	// non-reproducible source.
	Generate(ctx context.Context, size int, seed *uint64) (*dmn.GeneratedMaze, error)

	// DefaultSize is the size used when a caller does not pick one.
	DefaultSize() int
}
