// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/frontier-maze/maze"
	"github.com/google/uuid"
)

// CreateMazeRequest asks for a new maze. Omitted fields take the server defaults.
type CreateMazeRequest struct {
	Size *int    `json:"size"`
	Seed *uint64 `json:"seed"`
}

// MazeResponse describes a generated maze.
type MazeResponse struct {
	ID        uuid.UUID     `json:"id"`
	Size      int           `json:"size"`
	Seed      *uint64       `json:"seed,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	Edges     [][2]int      `json:"edges"`
	Grid      [][]maze.Cell `json:"grid"`
	Rendering string        `json:"rendering"`
}
