// Package landscape synthesizes the rectangular fuel grid and per-cell
// attribute table consumed by the external fire-spread simulator, and stages
// the shared template inputs next to them.
package landscape

import "fmt"

// Grid describes the fixed dimensions of one scenario landscape.
// Cells are addressed (row, col), 0-indexed, row-major. Dimensions never
// change for the lifetime of a scenario run.
type Grid struct {
	Rows int
	Cols int
}

// New validates and returns grid dimensions.
func New(rows, cols int) (Grid, error) {
	if rows < 1 || cols < 1 {
		return Grid{}, fmt.Errorf("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// CellCount returns the total number of cells.
func (g Grid) CellCount() int {
	return g.Rows * g.Cols
}

// String returns a summary of the grid.
func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Rows, g.Cols)
}
