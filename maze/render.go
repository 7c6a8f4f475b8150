package maze

import (
	"io"
	"strings"
)

const (
	room             = "◊"
	horizontalPath   = "—"
	noHorizontalPath = " "
	verticalPath     = "| "
	noVerticalPath   = "  "
)

// String renders the maze, one line per row of rooms and one line per row of
// vertical connectors between them. The result has 2·size−1 lines, each
// ending in a line break.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow((2*m.size - 1) * 4 * m.size)

	for row := 0; row < m.size-1; row++ {
		m.writeRooms(&sb, row)
		m.writeVerticalPaths(&sb, row)
	}
	m.writeRooms(&sb, m.size-1)

	return sb.String()
}

// WriteTo writes the rendered maze to w.
func (m *Maze) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}

func (m *Maze) writeRooms(sb *strings.Builder, row int) {
	for col := 0; col < m.size-1; col++ {
		sb.WriteString(room)
		current := Index(row, col, m.size)
		if m.passages.Connected(current, current+1) {
			sb.WriteString(horizontalPath)
		} else {
			sb.WriteString(noHorizontalPath)
		}
	}
	sb.WriteString(room)
	sb.WriteByte('\n')
}

func (m *Maze) writeVerticalPaths(sb *strings.Builder, row int) {
	for col := 0; col < m.size; col++ {
		current := Index(row, col, m.size)
		if m.passages.Connected(current, current+m.size) {
			sb.WriteString(verticalPath)
		} else {
			sb.WriteString(noVerticalPath)
		}
	}
	sb.WriteByte('\n')
}
