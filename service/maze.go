package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/frontier-maze/domain"
	"github.com/beka-birhanu/frontier-maze/maze"
	"github.com/beka-birhanu/frontier-maze/service/i"
	"github.com/google/uuid"
)

var (
	// ErrSizeTooLarge is returned when a request exceeds the configured maximum size.
	ErrSizeTooLarge = errors.New("maze size exceeds the configured maximum")
)

// MazeOptions configures a MazeService.
type MazeOptions struct {
	DefaultSize int
	MaxSize     int
	Logger      i.Logger
}

// MazeService builds and checks mazes for the API and the CLI.
type MazeService struct {
	defaultSize int
	maxSize     int
	logger      i.Logger
	now         func() time.Time
}

// NewMazeService validates opts and returns a MazeService.
func NewMazeService(opts MazeOptions) (*MazeService, error) {
	if opts.DefaultSize <= 0 {
		opts.DefaultSize = maze.DefaultSize
	}
	if opts.MaxSize < opts.DefaultSize {
		return nil, fmt.Errorf("max size %d is below default size %d", opts.MaxSize, opts.DefaultSize)
	}
	if opts.Logger == nil {
		return nil, errors.New("maze service requires a logger")
	}

	return &MazeService{
		defaultSize: opts.DefaultSize,
		maxSize:     opts.MaxSize,
		logger:      opts.Logger,
		now:         time.Now,
	}, nil
}

// DefaultSize implements i.MazeGenerator.
func (s *MazeService) DefaultSize() int {
	return s.defaultSize
}

// Generate implements i.MazeGenerator.
func (s *MazeService) Generate(ctx context.Context, size int, seed *uint64) (*dmn.GeneratedMaze, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if size > s.maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrSizeTooLarge, size, s.maxSize)
	}

	var src maze.RandomSource = maze.NewCryptoSource()
	if seed != nil {
		src = maze.NewSeededSource(*seed)
	}

	start := s.now()
	m, err := maze.New(size, maze.WithRandomSource(src))
	if err != nil {
		if errors.Is(err, maze.ErrExhaustedRandomSource) {
			s.logger.Error("random source failed while building maze", "size", size, "error", err)
		}
		return nil, err
	}

	if err := m.Verify(); err != nil {
		s.logger.Error("built maze is not a spanning tree", "size", size, "error", err)
		return nil, err
	}

	generated := &dmn.GeneratedMaze{
		ID:        uuid.New(),
		Seed:      seed,
		CreatedAt: start,
		Maze:      m,
	}
	s.logger.Info("maze generated",
		"id", generated.ID,
		"size", size,
		"passages", m.Passages().Len(),
		"elapsed", s.now().Sub(start),
	)

	return generated, nil
}
