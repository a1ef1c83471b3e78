// Package unload - dynamic programming solver.
//
// Policy:
//   - best(r,c) comes from above when it ties with the left neighbour.
//   - The global best is replaced only on a strictly greater score,
//     so the earliest row-major cell wins ties.
//   - FullTable keeps R×C entries; TwoRows keeps two rows plus shared path links.
package unload

import (
	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/path"
)

// entry is one DP cell: the best path reaching (r,c), if any.
type entry struct {
	p  path.Path
	ok bool
}

// DynamicProgramming solves crane unloading in O(R·C).
//
// Algorithm Outline:
//  1. A[0][0] = origin-only path. If the origin is a building, that blocked
//     path (score 0) is the answer.
//  2. For every other (r,c) in row-major order:
//     building          → A[r][c] empty (unreachable)
//     fromAbove = A[r-1][c] + South, if A[r-1][c] is populated
//     fromLeft  = A[r][c-1] + East,  if A[r][c-1] is populated
//     A[r][c]   = the candidate with more cranes; fromAbove wins ties.
//  3. Track the first cell whose entry strictly beats the running maximum
//     and return its path.
//
// Every route to (r,c) has the same length and each cell adds a fixed
// amount, so the best route to (r,c) always extends the best route to one
// of its two predecessors.
//
// Memory Modes:
//   - FullTable — R×C entries.
//   - TwoRows   — two rows of C entries; paths share history links.
//
// Complexity:
//
//	Time   = O(R·C)
//	Memory = O(R·C) (FullTable) or O(C) table + shared path links (TwoRows)
//
// Errors:
//   - ErrNilGrid       — g is nil.
//   - ErrBadMemoryMode — opts.MemoryMode is unknown.
func DynamicProgramming(g *grid.Grid, opts *DPOptions) (path.Path, error) {
	if g == nil {
		return path.Path{}, ErrNilGrid
	}
	o := DefaultDPOptions()
	if opts != nil {
		o = *opts
	}
	if o.MemoryMode != FullTable && o.MemoryMode != TwoRows {
		return path.Path{}, ErrBadMemoryMode
	}

	origin := path.New(g)
	if origin.Blocked() {
		return origin, nil
	}

	rows, cols := g.Rows(), g.Columns()
	var table [][]entry
	if o.MemoryMode == FullTable {
		table = make([][]entry, rows)
	} else {
		table = make([][]entry, 2)
	}
	for i := range table {
		table[i] = make([]entry, cols)
	}
	row := func(r int) []entry {
		if o.MemoryMode == FullTable {
			return table[r]
		}
		return table[r%2]
	}

	best := origin
	for r := 0; r < rows; r++ {
		curr := row(r)
		for c := 0; c < cols; c++ {
			if r == 0 && c == 0 {
				curr[0] = entry{p: origin, ok: true}
				continue
			}
			if g.IsBuilding(r, c) {
				curr[c] = entry{}
				continue
			}

			var fromAbove, fromLeft entry
			if r > 0 {
				if up := row(r - 1)[c]; up.ok {
					fromAbove.p, fromAbove.ok = up.p.Extend(path.South)
				}
			}
			if c > 0 {
				if left := curr[c-1]; left.ok {
					fromLeft.p, fromLeft.ok = left.p.Extend(path.East)
				}
			}

			switch {
			case fromAbove.ok && fromLeft.ok:
				if fromAbove.p.TotalCranes() >= fromLeft.p.TotalCranes() {
					curr[c] = fromAbove
				} else {
					curr[c] = fromLeft
				}
			case fromAbove.ok:
				curr[c] = fromAbove
			case fromLeft.ok:
				curr[c] = fromLeft
			default:
				curr[c] = entry{}
			}

			if curr[c].ok && curr[c].p.TotalCranes() > best.TotalCranes() {
				best = curr[c].p
			}
		}
	}

	return best, nil
}
