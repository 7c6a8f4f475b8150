package maze

// Index returns the cell index of the given row and column.
func Index(row, col, size int) int {
	return size*row + col
}

// Position returns the row and column of a cell.
func Position(cell, size int) (row, col int) {
	return cell / size, cell % size
}

// Neighbors returns the orthogonal neighbours of cell that lie inside a
// size×size grid, in the order top, right, left, bottom.
func Neighbors(cell, size int) []int {
	result := make([]int, 0, 4)

	if top := cell - size; top >= 0 {
		result = append(result, top)
	}
	if right := cell + 1; right%size != 0 {
		result = append(result, right)
	}
	if cell%size != 0 {
		result = append(result, cell-1)
	}
	if bottom := cell + size; bottom < size*size {
		result = append(result, bottom)
	}

	return result
}

// adjacent reports whether a and b share a side.
func adjacent(a, b, size int) bool {
	for _, n := range Neighbors(a, size) {
		if n == b {
			return true
		}
	}
	return false
}
