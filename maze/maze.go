/*
Package maze generates perfect mazes over square grids and renders them as text.

A maze is grown from cell 0 by randomized frontier growth: a cell is drawn at
random from the active frontier, one of its unvisited neighbours is drawn at
random and a passage is carved to it. Cells with no unvisited neighbours leave
the frontier. The resulting passages form a spanning tree of the grid.

The procedure has historically been called "Kruskal's maze", but it does not
sort or sample edges with union-find. It behaves like randomized Prim's
algorithm and produces that algorithm's distribution of mazes.
*/
package maze

import (
	"fmt"
)

const (
	// DefaultSize is the grid size used when none is given.
	DefaultSize = 30

	// MaxSize is the largest grid side New accepts. It keeps size² and the
	// per-cell bookkeeping well inside int and memory limits.
	MaxSize = 4096
)

// Maze is a built maze. It is immutable once New returns.
type Maze struct {
	size     int
	passages Passages
}

// Option configures the builder.
type Option func(*builder)

// WithRandomSource sets the source used for both random draws.
func WithRandomSource(rnd RandomSource) Option {
	return func(b *builder) {
		b.rnd = rnd
	}
}

// WithPicker replaces the frontier cell selection step.
func WithPicker(p Picker) Option {
	return func(b *builder) {
		b.pick = p
	}
}

// WithRemover replaces the frontier removal step.
func WithRemover(r Remover) Option {
	return func(b *builder) {
		b.remove = r
	}
}

// builder holds the state that only lives while the maze is grown.
type builder struct {
	size     int
	rnd      RandomSource
	pick     Picker
	remove   Remover
	visited  []bool
	active   *Frontier
	passages Passages
}

// New builds a size×size maze. It returns ErrInvalidSize if size is not in
// [1, MaxSize], and any error raised by the random source.
func New(size int, opts ...Option) (*Maze, error) {
	if size <= 0 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidSize, size, MaxSize)
	}

	cells := size * size
	b := &builder{
		size:     size,
		rnd:      NewCryptoSource(),
		pick:     PickUniform,
		remove:   RemoveCell,
		visited:  make([]bool, cells),
		active:   NewFrontier(cells),
		passages: newPassages(cells - 1),
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.build(); err != nil {
		return nil, err
	}

	return &Maze{
		size:     size,
		passages: b.passages,
	}, nil
}

// build runs frontier growth until the frontier is empty.
func (b *builder) build() error {
	b.visited[0] = true
	b.active.Add(0)

	// Every iteration either removes a cell or visits one, so a correct
	// run never needs more than 2·N² iterations.
	limit := 2 * len(b.visited)
	for iter := 0; b.active.Len() > 0; iter++ {
		if iter >= limit {
			return fmt.Errorf("frontier did not drain after %d iterations", limit)
		}

		target, err := b.pick(b.active, b.rnd)
		if err != nil {
			return fmt.Errorf("picking frontier cell: %w", err)
		}
		if !b.active.Contains(target) {
			return fmt.Errorf("picked cell %d is not in the frontier", target)
		}

		unvisited := b.unvisitedNeighbors(target)
		if len(unvisited) == 0 {
			b.remove(b.active, target)
			continue
		}

		i, err := b.rnd.Intn(len(unvisited))
		if err != nil {
			return fmt.Errorf("picking neighbour of %d: %w", target, err)
		}
		next := unvisited[i]

		b.visited[next] = true
		b.active.Add(next)
		b.passages.add(target, next)
	}

	return nil
}

func (b *builder) unvisitedNeighbors(cell int) []int {
	var result []int
	for _, n := range Neighbors(cell, b.size) {
		if !b.visited[n] {
			result = append(result, n)
		}
	}
	return result
}

// Size returns the number of cells along each side.
func (m *Maze) Size() int {
	return m.size
}

// Passages returns the carved passages.
func (m *Maze) Passages() Passages {
	return m.passages
}
