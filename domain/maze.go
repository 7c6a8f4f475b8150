// Package dmn holds the records the services hand to the API layer.
package dmn

import (
	"time"

	"github.com/beka-birhanu/frontier-maze/maze"
	"github.com/google/uuid"
)

// GeneratedMaze is a maze built on request, together with how it was built.
type GeneratedMaze struct {
	ID        uuid.UUID
	Seed      *uint64 // nil when the maze came from the non-seedable source
	CreatedAt time.Time
	Maze      *maze.Maze
}
