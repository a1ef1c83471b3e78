// Package unload - exhaustive search over every step ordering.
//
// Every east/south sequence of length R+C-2 is replayed from the origin and
// truncated at its first invalid step; only a strictly better score replaces
// the running best. Cost: O(2^(R+C-2) × (R+C)), so R+C-2 ≥ MaxExhaustiveSteps
// is rejected up front.
package unload

import (
	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/path"
	"golang.org/x/exp/slices"
)

// Exhaustive solves crane unloading by brute force.
//
// Algorithm Outline:
//  1. maxSteps = R + C - 2; require maxSteps < MaxExhaustiveSteps.
//  2. For east = 0..maxSteps, start from the sorted arrangement
//     [East × east, South × (maxSteps-east)] and visit every distinct
//     permutation in lexicographic order.
//  3. Replay each arrangement from the origin, stopping at the first step
//     that leaves the grid or enters a building. Shorter routes are
//     therefore covered by the prefixes of full-length arrangements.
//  4. Keep the replay with strictly more cranes than the current best;
//     the origin-only path is the default answer.
//
// Complexity:
//
//	Time   = O(2^maxSteps · maxSteps)
//	Memory = O(maxSteps)
//
// Errors:
//   - ErrNilGrid     — g is nil.
//   - ErrPathTooLong — maxSteps ≥ MaxExhaustiveSteps.
func Exhaustive(g *grid.Grid) (path.Path, error) {
	if g == nil {
		return path.Path{}, ErrNilGrid
	}
	maxSteps := g.Rows() + g.Columns() - 2
	if maxSteps >= MaxExhaustiveSteps {
		return path.Path{}, ErrPathTooLong
	}

	best := path.New(g)
	directions := make([]path.Step, maxSteps)
	for east := 0; east <= maxSteps; east++ {
		for i := range directions {
			if i < east {
				directions[i] = path.East
			} else {
				directions[i] = path.South
			}
		}
		for {
			current := replay(g, directions)
			if current.TotalCranes() > best.TotalCranes() {
				best = current
			}
			if !nextPermutation(directions) {
				break
			}
		}
	}

	return best, nil
}

// replay walks directions from the origin and stops at the first invalid step.
func replay(g *grid.Grid, directions []path.Step) path.Path {
	current := path.New(g)
	for _, s := range directions {
		next, ok := current.Extend(s)
		if !ok {
			break
		}
		current = next
	}
	return current
}

// nextPermutation rearranges a into the lexicographically next greater
// permutation and reports true, or leaves a sorted ascending and reports
// false when a was already the last permutation. Equal elements are not
// permuted among themselves, so every distinct arrangement is visited once.
//
// Complexity: O(len(a)).
func nextPermutation(a []path.Step) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		slices.Reverse(a)
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	slices.Reverse(a[i+1:])
	return true
}

