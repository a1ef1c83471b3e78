// Package grid - cell kinds, sentinel errors and generator options.
//
// Every error New, Parse and Random return wraps one of the sentinels below,
// so callers match with errors.Is.
package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeCranes indicates an EMPTY cell with a negative crane count.
	ErrNegativeCranes = errors.New("grid: crane count must be non-negative")
	// ErrBadToken indicates an unparsable cell token in the text form.
	ErrBadToken = errors.New("grid: unrecognized cell token")
	// ErrBadProbability indicates a building probability outside [0,1].
	ErrBadProbability = errors.New("grid: building probability must be in [0,1]")
	// ErrBadMaxCranes indicates RandomOptions.MaxCranes outside [0, math.MaxInt).
	ErrBadMaxCranes = errors.New("grid: max cranes must be in [0, math.MaxInt)")
	// ErrBadCellKind indicates a Cell.Kind other than Empty or Building.
	ErrBadCellKind = errors.New("grid: cell kind must be empty or building")
)

// BuildingMark is the value FromCounts interprets as a BUILDING cell.
const BuildingMark = -1

// CellKind classifies a cell as EMPTY or BUILDING.
type CellKind int

const (
	// Empty cells may be visited and contribute their crane count.
	Empty CellKind = iota
	// Building cells block any path.
	Building
)

// String returns "empty" or "building".
func (k CellKind) String() string {
	if k == Building {
		return "building"
	}
	return "empty"
}

// Cell is a single grid cell. Cranes is meaningful only for Empty cells and
// is always zero for buildings.
type Cell struct {
	Kind   CellKind
	Cranes int
}

// EmptyCell returns an EMPTY cell holding n cranes.
func EmptyCell(n int) Cell { return Cell{Kind: Empty, Cranes: n} }

// BuildingCell returns a BUILDING cell.
func BuildingCell() Cell { return Cell{Kind: Building} }

// Grid is an immutable rectangular crane map. cells[r][c] holds row r, column c;
// row 0 is the north edge and column 0 the west edge.
type Grid struct {
	rows, cols int
	cells      [][]Cell
}

// RandomOptions tunes Random.
type RandomOptions struct {
	// BuildingProbability is the chance in [0,1] that a non-origin cell is a building.
	BuildingProbability float64
	// MaxCranes bounds the crane count of EMPTY cells: counts are drawn from [0, MaxCranes].
	MaxCranes int
	// Seed selects the random stream; 0 means the fixed default seed.
	Seed int64
}

// DefaultRandomOptions returns BuildingProbability=0.2, MaxCranes=9, Seed=0.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		BuildingProbability: 0.2,
		MaxCranes:           9,
		Seed:                0,
	}
}
