// Package unload - algorithm selection, options and sentinel errors.
package unload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/cranes/path"
)

// Sentinel errors for the solvers.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to a solver.
	ErrNilGrid = errors.New("unload: grid must be non-nil")
	// ErrPathTooLong indicates R+C-2 ≥ MaxExhaustiveSteps for the exhaustive search.
	ErrPathTooLong = errors.New("unload: maximum path length too large for exhaustive search")
	// ErrBadMemoryMode indicates an unknown DP memory mode.
	ErrBadMemoryMode = errors.New("unload: unknown memory mode")
	// ErrUnsupportedAlgorithm indicates an unknown Algorithm in Options.
	ErrUnsupportedAlgorithm = errors.New("unload: unsupported algorithm")
)

// MaxExhaustiveSteps bounds R+C-2 for Exhaustive (exclusive).
const MaxExhaustiveSteps = 64

// MemoryMode controls how DynamicProgramming stores its table.
//
//   - FullTable — keep all R×C entries.
//   - TwoRows   — keep only the previous and current row. The answer is
//     identical because each entry owns a persistent path history.
type MemoryMode int

const (
	// FullTable stores every row of the DP table.
	FullTable MemoryMode = iota
	// TwoRows keeps a rolling pair of rows.
	TwoRows
)

// DPOptions configures DynamicProgramming.
type DPOptions struct {
	MemoryMode MemoryMode
}

// DefaultDPOptions returns MemoryMode=FullTable.
func DefaultDPOptions() DPOptions {
	return DPOptions{MemoryMode: FullTable}
}

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// DynProg runs DynamicProgramming.
	DynProg Algorithm = iota
	// ExhaustiveSearch runs Exhaustive.
	ExhaustiveSearch
)

// String returns "dynprog" or "exhaustive".
func (a Algorithm) String() string {
	switch a {
	case DynProg:
		return "dynprog"
	case ExhaustiveSearch:
		return "exhaustive"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "dynprog"/"dp" and "exhaustive" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dynprog", "dp":
		return DynProg, nil
	case "exhaustive":
		return ExhaustiveSearch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Options configures Solve.
type Options struct {
	// Algo picks the solver.
	Algo Algorithm
	// MemoryMode is forwarded to DynamicProgramming; ignored by Exhaustive.
	MemoryMode MemoryMode
}

// DefaultOptions returns Algo=DynProg, MemoryMode=FullTable.
func DefaultOptions() Options {
	return Options{Algo: DynProg, MemoryMode: FullTable}
}

// Result holds the outcome of Solve.
type Result struct {
	// Path is the best route found; Path.TotalCranes is its score.
	Path path.Path
	// Algo is the solver that produced Path.
	Algo Algorithm
}
