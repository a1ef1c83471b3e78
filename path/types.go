// Package path - step kinds and validation sentinels.
package path

import "errors"

// Sentinel errors reported by Validate.
var (
	// ErrBadStep indicates a step that is neither East nor South.
	ErrBadStep = errors.New("path: step must be east or south")
	// ErrOutOfBounds indicates a step that leaves the grid.
	ErrOutOfBounds = errors.New("path: step leaves the grid")
	// ErrBuilding indicates a visited cell that is a building.
	ErrBuilding = errors.New("path: path enters a building")
	// ErrScoreMismatch indicates the cached total or position disagrees with a replay.
	ErrScoreMismatch = errors.New("path: cached state disagrees with replay")
)

// Step is a single monotone move.
type Step uint8

const (
	// East increases the column by one.
	East Step = iota
	// South increases the row by one.
	South
)

// String returns "east" or "south".
func (s Step) String() string {
	switch s {
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "invalid"
	}
}

// Offset returns the (row, column) delta of s.
func (s Step) Offset() (dr, dc int) {
	if s == South {
		return 1, 0
	}
	return 0, 1
}

// node is one link of the persistent move history.
type node struct {
	step   Step
	parent *node
}
