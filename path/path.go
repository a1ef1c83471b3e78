// Package path - monotone east/south path with shared persistent history.
//
// Extend returns a new Path in O(1); the original is left untouched and
// both share their common prefix. Steps and Cells materialize in O(L).
package path

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cranes/grid"
	"golang.org/x/exp/slices"
)

// Path is a monotone route from the origin of a grid.
//
// The zero value is not usable; construct with New. Copies are cheap and
// independent: extending one copy never affects another.
type Path struct {
	g        *grid.Grid
	row, col int
	total    int
	length   int
	tail     *node // most recent step; nil for the origin-only path
	blocked  bool  // origin is a building
}

// New returns the single-cell path at the origin of g.
// If the origin is a building, the path is blocked: it scores 0 and
// no step from it is valid.
// Complexity: O(1).
func New(g *grid.Grid) Path {
	p := Path{g: g}
	if g.IsBuilding(0, 0) {
		p.blocked = true
		return p
	}
	p.total = g.Cranes(0, 0)
	return p
}

// Grid returns the grid the path walks on.
func (p Path) Grid() *grid.Grid { return p.g }

// Row returns the current row.
func (p Path) Row() int { return p.row }

// Col returns the current column.
func (p Path) Col() int { return p.col }

// Len returns the number of steps taken.
func (p Path) Len() int { return p.length }

// TotalCranes returns the sum of crane counts over every visited cell.
func (p Path) TotalCranes() int { return p.total }

// Blocked reports whether the origin is a building.
func (p Path) Blocked() bool { return p.blocked }

// IsStepValid reports whether s stays within bounds and lands on a non-building cell.
// Complexity: O(1).
func (p Path) IsStepValid(s Step) bool {
	if p.blocked || (s != East && s != South) {
		return false
	}
	dr, dc := s.Offset()
	r, c := p.row+dr, p.col+dc
	return p.g.InBounds(r, c) && !p.g.IsBuilding(r, c)
}

// Extend returns a copy of p advanced by s and true, or p unchanged and
// false when s is not valid. The receiver is never modified.
// Complexity: O(1).
func (p Path) Extend(s Step) (Path, bool) {
	if !p.IsStepValid(s) {
		return p, false
	}
	dr, dc := s.Offset()
	p.row += dr
	p.col += dc
	p.total += p.g.Cranes(p.row, p.col)
	p.length++
	p.tail = &node{step: s, parent: p.tail}
	return p, true
}

// AddStep advances p in place by s. Callers must check IsStepValid first;
// an invalid step is a contract violation and panics.
func (p *Path) AddStep(s Step) {
	next, ok := p.Extend(s)
	if !ok {
		panic(fmt.Sprintf("path: invalid step %s from (%d,%d)", s, p.row, p.col))
	}
	*p = next
}

// Steps returns the moves from the origin in order.
// Complexity: O(Len) time and memory.
func (p Path) Steps() []Step {
	steps := make([]Step, 0, p.length)
	for n := p.tail; n != nil; n = n.parent {
		steps = append(steps, n.step)
	}
	slices.Reverse(steps)
	return steps
}

// Cells returns every visited cell as {row, col}, origin first.
// Complexity: O(Len).
func (p Path) Cells() [][2]int {
	cells := make([][2]int, 0, p.length+1)
	r, c := 0, 0
	cells = append(cells, [2]int{r, c})
	for _, s := range p.Steps() {
		dr, dc := s.Offset()
		r, c = r+dr, c+dc
		cells = append(cells, [2]int{r, c})
	}
	return cells
}

// Validate replays the steps against the grid and reports the first
// violated invariant: bad step, out of bounds, building, or a cached
// position/total that disagrees with the replay.
// Complexity: O(Len).
func (p Path) Validate() error {
	steps := p.Steps()
	if p.g.IsBuilding(0, 0) {
		if len(steps) != 0 {
			return fmt.Errorf("%w: origin", ErrBuilding)
		}
		if p.total != 0 {
			return fmt.Errorf("%w: blocked origin scores %d", ErrScoreMismatch, p.total)
		}
		return nil
	}

	r, c, total := 0, 0, p.g.Cranes(0, 0)
	for i, s := range steps {
		if s != East && s != South {
			return fmt.Errorf("%w: step %d", ErrBadStep, i)
		}
		dr, dc := s.Offset()
		r, c = r+dr, c+dc
		if !p.g.InBounds(r, c) {
			return fmt.Errorf("%w: step %d to (%d,%d)", ErrOutOfBounds, i, r, c)
		}
		if p.g.IsBuilding(r, c) {
			return fmt.Errorf("%w: step %d to (%d,%d)", ErrBuilding, i, r, c)
		}
		total += p.g.Cranes(r, c)
	}
	if r != p.row || c != p.col || total != p.total || len(steps) != p.length {
		return fmt.Errorf("%w: replay ends at (%d,%d) with %d", ErrScoreMismatch, r, c, total)
	}
	return nil
}

// Render draws the grid with visited cells replaced by "*".
func (p Path) Render() string {
	visited := make(map[[2]int]bool, p.length+1)
	if !p.blocked {
		for _, rc := range p.Cells() {
			visited[rc] = true
		}
	}
	var sb strings.Builder
	for r := 0; r < p.g.Rows(); r++ {
		for c := 0; c < p.g.Columns(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			switch {
			case visited[[2]int{r, c}]:
				sb.WriteByte('*')
			case p.g.IsBuilding(r, c):
				sb.WriteByte('X')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String summarizes the path for logs.
func (p Path) String() string {
	return fmt.Sprintf("path{steps=%d end=(%d,%d) cranes=%d}", p.length, p.row, p.col, p.total)
}
