package systems

// SpatialGrid buckets particle indices into square cells so neighbour
// queries only visit the surrounding 3x3 block. The cell size must be at
// least the query radius.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	cells    [][]int // flat grid of particle index lists
}

// NewSpatialGrid creates a spatial grid covering the given bounds.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]int, cols*rows)
	for i := range cells {
		cells[i] = make([]int, 0, 8) // pre-allocate small capacity
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Clear removes all indices from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds a particle index at the given position.
func (g *SpatialGrid) Insert(idx int, x, y float32) {
	c := g.cellIndex(x, y)
	g.cells[c] = append(g.cells[c], idx)
}

// NearbyAfter appends to dst every index greater than after that lies in the
// 3x3 block of cells around (x, y). Candidates are not distance filtered.
func (g *SpatialGrid) NearbyAfter(dst []int, x, y float32, after int) []int {
	centerCol, centerRow := g.cellCoords(x, y)

	for dr := -1; dr <= 1; dr++ {
		row := centerRow + dr
		if row < 0 || row >= g.rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			col := centerCol + dc
			if col < 0 || col >= g.cols {
				continue
			}
			for _, idx := range g.cells[row*g.cols+col] {
				if idx > after {
					dst = append(dst, idx)
				}
			}
		}
	}
	return dst
}

// Size returns the grid dimensions in cells.
func (g *SpatialGrid) Size() (cols, rows int) {
	return g.cols, g.rows
}

func (g *SpatialGrid) cellCoords(x, y float32) (col, row int) {
	col = int(x / g.cellSize)
	row = int(y / g.cellSize)

	// Clamp to valid range
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}

// cellIndex returns the flat index for a position.
func (g *SpatialGrid) cellIndex(x, y float32) int {
	col, row := g.cellCoords(x, y)
	return row*g.cols + col
}
