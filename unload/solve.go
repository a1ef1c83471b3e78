// Package unload - dispatcher routing a grid to the selected algorithm.
package unload

import "github.com/katalvlaran/cranes/grid"

// Solve routes g to the solver selected by opts.Algo.
//
// Contracts:
//   - g must be non-nil; grid.New already guarantees R ≥ 1 and C ≥ 1.
//   - ExhaustiveSearch additionally requires R+C-2 < MaxExhaustiveSteps.
//
// Errors: ErrNilGrid, ErrPathTooLong, ErrBadMemoryMode, ErrUnsupportedAlgorithm.
//
// Complexity: per chosen algorithm (see Exhaustive and DynamicProgramming).
func Solve(g *grid.Grid, opts Options) (Result, error) {
	switch opts.Algo {
	case DynProg:
		p, err := DynamicProgramming(g, &DPOptions{MemoryMode: opts.MemoryMode})
		if err != nil {
			return Result{}, err
		}
		return Result{Path: p, Algo: DynProg}, nil

	case ExhaustiveSearch:
		p, err := Exhaustive(g)
		if err != nil {
			return Result{}, err
		}
		return Result{Path: p, Algo: ExhaustiveSearch}, nil

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
