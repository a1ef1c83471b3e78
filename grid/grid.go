// Package grid - immutable rectangular grid: construction and O(1) queries.
//
// Design:
//   - New deep-copies its input; the Grid never aliases caller memory.
//   - Buildings are normalized to zero cranes at construction.
//   - Get panics out of bounds; use InBounds first when unsure.
package grid

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeCranes if an EMPTY cell has a negative count and
// ErrBadCellKind if a cell is neither Empty nor Building.
// Building cells are normalized to carry zero cranes.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cp[r] = slices.Clone(cells[r])
		for c := range cp[r] {
			switch cp[r][c].Kind {
			case Empty:
				if cp[r][c].Cranes < 0 {
					return nil, fmt.Errorf("%w: cell (%d,%d) has %d", ErrNegativeCranes, r, c, cp[r][c].Cranes)
				}
			case Building:
				cp[r][c].Cranes = 0
			default:
				return nil, fmt.Errorf("%w: cell (%d,%d) has kind %d", ErrBadCellKind, r, c, int(cp[r][c].Kind))
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cp}, nil
}

// FromCounts builds a Grid from integer counts: BuildingMark marks a
// building, any other value is an EMPTY cell with that many cranes.
// Errors are those of New.
func FromCounts(counts [][]int) (*Grid, error) {
	cells := make([][]Cell, len(counts))
	for r, row := range counts {
		cells[r] = make([]Cell, len(row))
		for c, v := range row {
			if v == BuildingMark {
				cells[r][c] = BuildingCell()
			} else {
				cells[r][c] = EmptyCell(v)
			}
		}
	}
	return New(cells)
}

// Rows returns the number of rows (R ≥ 1).
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns (C ≥ 1).
func (g *Grid) Columns() int { return g.cols }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Get returns the cell at (r,c). It panics when (r,c) is out of bounds;
// callers are expected to check InBounds first.
// Complexity: O(1).
func (g *Grid) Get(r, c int) Cell {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("grid: Get(%d,%d) out of bounds %dx%d", r, c, g.rows, g.cols))
	}
	return g.cells[r][c]
}

// Kind returns the classification of (r,c).
func (g *Grid) Kind(r, c int) CellKind { return g.Get(r, c).Kind }

// Cranes returns the crane count of (r,c); zero for buildings.
func (g *Grid) Cranes(r, c int) int { return g.Get(r, c).Cranes }

// IsBuilding reports whether (r,c) is a building.
func (g *Grid) IsBuilding(r, c int) bool { return g.Get(r, c).Kind == Building }

// Equal reports whether g and other have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := 0; r < g.rows; r++ {
		if !slices.Equal(g.cells[r], other.cells[r]) {
			return false
		}
	}
	return true
}

// String renders the grid in the text form accepted by Parse:
// one line per row, space-separated tokens, "X" for buildings.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.token(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// token formats a single cell for String.
func (g *Grid) token(r, c int) string {
	cell := g.cells[r][c]
	if cell.Kind == Building {
		return "X"
	}
	return strconv.Itoa(cell.Cranes)
}

// Coordinate converts a row‑major index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}
