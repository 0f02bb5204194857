// internal/defs/obstacles.go
package defs

// Cell is a block position inside a shape template, in template units.
type Cell struct {
	Row, Col int
}

// ParseShape returns the cells marked with 'x' (or 'X') row by row.
func ParseShape(template []string) []Cell {
	var cells []Cell
	for row, line := range template {
		for col, ch := range line {
			if ch == 'x' || ch == 'X' {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// ShapeWidth is the length of the widest template row.
func ShapeWidth(template []string) int {
	width := 0
	for _, line := range template {
		if len(line) > width {
			width = len(line)
		}
	}
	return width
}
