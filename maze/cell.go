package maze

// Cell describes the walls around a single room of a built maze.
type Cell struct {
	// NorthWall indicates whether there is a wall on the north side of the cell.
	NorthWall bool `json:"north_wall"`
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool `json:"south_wall"`
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool `json:"east_wall"`
	// WestWall indicates whether there is a wall on the west side of the cell.
	WestWall bool `json:"west_wall"`
}

// Grid returns the wall layout of the maze, indexed by row then column.
// Grid borders are always walled.
func (m *Maze) Grid() [][]Cell {
	grid := make([][]Cell, m.size)
	for row := range grid {
		grid[row] = make([]Cell, m.size)
		for col := range grid[row] {
			cell := Index(row, col, m.size)
			grid[row][col] = Cell{
				NorthWall: row == 0 || !m.passages.Connected(cell, cell-m.size),
				SouthWall: row == m.size-1 || !m.passages.Connected(cell, cell+m.size),
				EastWall:  col == m.size-1 || !m.passages.Connected(cell, cell+1),
				WestWall:  col == 0 || !m.passages.Connected(cell, cell-1),
			}
		}
	}
	return grid
}
