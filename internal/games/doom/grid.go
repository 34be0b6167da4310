package doom

import "math"

// Grid is an immutable occupancy map indexed as cells[y][x].
// Any non-zero cell blocks both movement and rays.
type Grid struct {
	cells [][]uint8
	w, h  int
}

// NewGrid copies rows into a grid. Rows shorter than the widest row are
// padded with walls.
func NewGrid(rows [][]uint8) Grid {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}

	cells := make([][]uint8, len(rows))
	for y, row := range rows {
		cells[y] = make([]uint8, w)
		for x := range cells[y] {
			if x < len(row) {
				cells[y][x] = row[x]
			} else {
				cells[y][x] = 1
			}
		}
	}
	return Grid{cells: cells, w: w, h: len(rows)}
}

// DefaultGrid returns the arena the game is played in.
func DefaultGrid() Grid {
	return NewGrid([][]uint8{
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 1, 0, 0, 1, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 1, 0, 0, 1, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
	})
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g Grid) Height() int { return g.h }

// Cell reports whether the cell at column cx, row cy blocks.
// Cells outside the grid always block.
func (g Grid) Cell(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= g.w || cy >= g.h {
		return true
	}
	return g.cells[cy][cx] != 0
}

// Blocked reports whether the world position (x, y) lies in a blocking cell.
func (g Grid) Blocked(x, y float64) bool {
	return g.Cell(int(math.Floor(x)), int(math.Floor(y)))
}
