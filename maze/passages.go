package maze

import "slices"

// Edge is an open passage recorded while the maze was grown. Parent is the
// frontier cell that was active when the passage was carved.
type Edge struct {
	Parent int
	Child  int
}

// Passages maps each parent cell to the cells it opened a passage to.
// It is filled once by the builder and only read afterwards.
type Passages struct {
	children map[int][]int
	edges    []Edge
}

func newPassages(capacity int) Passages {
	return Passages{
		children: make(map[int][]int),
		edges:    make([]Edge, 0, capacity),
	}
}

func (p *Passages) add(parent, child int) {
	p.children[parent] = append(p.children[parent], child)
	p.edges = append(p.edges, Edge{Parent: parent, Child: child})
}

// Children returns the cells parent opened passages to, in carve order.
func (p Passages) Children(parent int) []int {
	return slices.Clone(p.children[parent])
}

// Connected reports whether a passage joins a and b, whichever of the two
// was the parent.
func (p Passages) Connected(a, b int) bool {
	return slices.Contains(p.children[a], b) || slices.Contains(p.children[b], a)
}

// Edges returns every passage in carve order.
func (p Passages) Edges() []Edge {
	return slices.Clone(p.edges)
}

// Len returns the number of passages.
func (p Passages) Len() int {
	return len(p.edges)
}
