// Package grid - seeded random grid generator.
//
// Determinism: equal (rows, cols, RandomOptions) always yield equal grids;
// Seed == 0 maps onto defaultRNGSeed. The origin is always EMPTY.
package grid

import (
	"math"
	"math/rand"
)

// defaultRNGSeed is the fixed seed used when callers pass Seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// Random generates a rows×cols grid. Every cell except the origin becomes a
// building with probability opts.BuildingProbability; EMPTY cells get a
// uniform crane count in [0, opts.MaxCranes]. The origin is always EMPTY.
//
// The same options always produce the same grid.
//
// Errors: ErrEmptyGrid, ErrBadProbability, ErrBadMaxCranes (negative or math.MaxInt).
// Complexity: O(R×C).
func Random(rows, cols int, opts RandomOptions) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if opts.BuildingProbability < 0 || opts.BuildingProbability > 1 {
		return nil, ErrBadProbability
	}
	if opts.MaxCranes < 0 || opts.MaxCranes == math.MaxInt {
		return nil, ErrBadMaxCranes
	}

	rng := rngFromSeed(opts.Seed)
	g := &Grid{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
	}
	// Draw in row-major order so the stream layout is stable.
	for idx := 0; idx < rows*cols; idx++ {
		r, c := g.Coordinate(idx)
		if idx != 0 && rng.Float64() < opts.BuildingProbability {
			g.cells[r][c] = BuildingCell()
			continue
		}
		g.cells[r][c] = EmptyCell(rng.Intn(opts.MaxCranes + 1))
	}

	return g, nil
}
