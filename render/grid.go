package render

// Cell is the state of one grid position
type Cell uint8

const (
	CellBlank Cell = iota
	CellMark
)

// Grid is a fixed-size raster of cells with a centered logical origin
// Storage is row-major: rows run along the vertical axis, columns along the horizontal
// Logical (x, y) maps to column x+cols/2, row y+rows/2; anything outside is dropped
type Grid struct {
	cells []Cell
	rows  int
	cols  int
}

// NewGrid creates a blank grid, non-positive dimensions yield an empty grid that clips everything
func NewGrid(rows, cols int) *Grid {
	rows = max(rows, 0)
	cols = max(cols, 0)
	// CellBlank is the zero value, make already fills the buffer
	return &Grid{
		cells: make([]Cell, rows*cols),
		rows:  rows,
		cols:  cols,
	}
}

// Bounds returns grid dimensions as (rows, cols)
func (g *Grid) Bounds() (rows, cols int) {
	return g.rows, g.cols
}

// Origin returns the storage (row, col) of logical (0, 0)
func (g *Grid) Origin() (row, col int) {
	return g.rows / 2, g.cols / 2
}

// index maps a logical cell to its storage index, ok is false when clipped
// Single place where the centering offset and bounds check happen
func (g *Grid) index(x, y int) (idx int, ok bool) {
	col := x + g.cols/2
	row := y + g.rows/2
	if !g.inBounds(row, col) {
		return 0, false
	}
	return row*g.cols + col, true
}

// inBounds returns true if storage coordinates are inside the grid
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Plot marks the logical cell (x, y); out-of-range writes are silently discarded
func (g *Grid) Plot(x, y int) {
	if idx, ok := g.index(x, y); ok {
		g.cells[idx] = CellMark
	}
}

// Marked reports whether logical cell (x, y) is marked, false when out of range
func (g *Grid) Marked(x, y int) bool {
	idx, ok := g.index(x, y)
	return ok && g.cells[idx] == CellMark
}

// At returns the cell at storage coordinates, CellBlank when out of range
func (g *Grid) At(row, col int) Cell {
	if !g.inBounds(row, col) {
		return CellBlank
	}
	return g.cells[row*g.cols+col]
}

// Count returns the number of marked cells
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c == CellMark {
			n++
		}
	}
	return n
}
