package maze

import "fmt"

// Frontier is the set of visited cells that may still have unvisited
// neighbours. Membership is tracked with a position index so removal is O(1).
type Frontier struct {
	cells []int
	pos   map[int]int
}

// NewFrontier returns an empty frontier with room for capacity cells.
func NewFrontier(capacity int) *Frontier {
	return &Frontier{
		cells: make([]int, 0, capacity),
		pos:   make(map[int]int, capacity),
	}
}

// Len returns the number of cells in the frontier.
func (f *Frontier) Len() int {
	return len(f.cells)
}

// At returns the cell stored at index i, 0 <= i < Len().
func (f *Frontier) At(i int) int {
	return f.cells[i]
}

// Contains reports whether cell is in the frontier.
func (f *Frontier) Contains(cell int) bool {
	_, ok := f.pos[cell]
	return ok
}

// Add inserts cell. Adding a cell that is already present is a no-op.
func (f *Frontier) Add(cell int) {
	if f.Contains(cell) {
		return
	}
	f.pos[cell] = len(f.cells)
	f.cells = append(f.cells, cell)
}

// Remove deletes cell by swapping the last element into its slot.
func (f *Frontier) Remove(cell int) {
	i, ok := f.pos[cell]
	if !ok {
		return
	}
	last := len(f.cells) - 1
	moved := f.cells[last]
	f.cells[i] = moved
	f.pos[moved] = i
	f.cells = f.cells[:last]
	delete(f.pos, cell)
}

// Picker selects the next frontier cell to grow from.
type Picker func(f *Frontier, rnd RandomSource) (int, error)

// Remover drops a cell whose neighbours have all been visited.
type Remover func(f *Frontier, cell int)

// PickUniform draws a frontier cell uniformly at random.
func PickUniform(f *Frontier, rnd RandomSource) (int, error) {
	if f.Len() == 0 {
		return 0, fmt.Errorf("pick from empty frontier")
	}
	i, err := rnd.Intn(f.Len())
	if err != nil {
		return 0, err
	}
	return f.At(i), nil
}

// RemoveCell removes cell from the frontier.
func RemoveCell(f *Frontier, cell int) {
	f.Remove(cell)
}
