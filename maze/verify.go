package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// Verify checks that the passages form a spanning tree of the grid: every
// passage joins two distinct adjacent cells, no passage is repeated, no
// passage closes a cycle and every cell is reachable from cell 0.
func (m *Maze) Verify() error {
	cells := m.size * m.size
	edges := m.passages.Edges()

	if len(edges) != cells-1 {
		return fmt.Errorf("%w: %d passages for %d cells", ErrNotSpanningTree, len(edges), cells)
	}

	sets := make([]*disjoint.Element, cells)
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}

	for _, e := range edges {
		if e.Parent < 0 || e.Parent >= cells || e.Child < 0 || e.Child >= cells {
			return fmt.Errorf("%w: passage %d-%d leaves the grid", ErrNotSpanningTree, e.Parent, e.Child)
		}
		if e.Parent == e.Child {
			return fmt.Errorf("%w: self loop at %d", ErrNotSpanningTree, e.Parent)
		}
		if !adjacent(e.Parent, e.Child, m.size) {
			return fmt.Errorf("%w: cells %d and %d are not adjacent", ErrNotSpanningTree, e.Parent, e.Child)
		}
		// A repeated passage is also caught here since its ends already share a set.
		if sets[e.Parent].Find() == sets[e.Child].Find() {
			return fmt.Errorf("%w: passage %d-%d closes a cycle", ErrNotSpanningTree, e.Parent, e.Child)
		}
		disjoint.Union(sets[e.Parent], sets[e.Child])
	}

	root := sets[0].Find()
	for cell, s := range sets {
		if s.Find() != root {
			return fmt.Errorf("%w: cell %d is unreachable", ErrNotSpanningTree, cell)
		}
	}

	return nil
}
