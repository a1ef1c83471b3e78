package unload_test

import (
	"testing"

	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/path"
	"github.com/katalvlaran/cranes/unload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const X = grid.BuildingMark

// solver adapts both algorithms to a single signature for table tests.
type solver struct {
	name string
	run  func(*grid.Grid) (path.Path, error)
}

var solvers = []solver{
	{"Exhaustive", unload.Exhaustive},
	{"DPFullTable", func(g *grid.Grid) (path.Path, error) {
		return unload.DynamicProgramming(g, &unload.DPOptions{MemoryMode: unload.FullTable})
	}},
	{"DPTwoRows", func(g *grid.Grid) (path.Path, error) {
		return unload.DynamicProgramming(g, &unload.DPOptions{MemoryMode: unload.TwoRows})
	}},
}

// mustGrid builds a grid from counts or fails the test.
func mustGrid(t testing.TB, counts [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.FromCounts(counts)
	require.NoError(t, err)
	return g
}

// TestSolvers_KnownGrids runs every solver over hand-checked grids.
func TestSolvers_KnownGrids(t *testing.T) {
	cases := []struct {
		name   string
		counts [][]int
		score  int
		steps  []path.Step // nil means "only the score is asserted"
	}{
		{
			name:   "Trivial1x1",
			counts: [][]int{{5}},
			score:  5,
			steps:  []path.Step{},
		},
		{
			name:   "BlockedOrigin",
			counts: [][]int{{X, 5}, {5, 5}},
			score:  0,
			steps:  []path.Step{},
		},
		{
			name:   "RowCorridor",
			counts: [][]int{{1, 2, 0, X, 4}},
			score:  3,
		},
		{
			name:   "ColumnCorridor",
			counts: [][]int{{1}, {2}, {3}},
			score:  6,
			steps:  []path.Step{path.South, path.South},
		},
		{
			name:   "BlockingForcesDetour",
			counts: [][]int{{1, X}, {1, 1}},
			score:  3,
			steps:  []path.Step{path.South, path.East},
		},
		{
			name: "Mixed3x3",
			counts: [][]int{
				{0, 3, 0},
				{2, X, 5},
				{1, 4, 1},
			},
			score: 9,
			steps: []path.Step{path.East, path.East, path.South, path.South},
		},
		{
			name: "BestCellNotCorner",
			counts: [][]int{
				{1, 0, 0},
				{0, 9, X},
				{0, X, X},
			},
			score: 10,
		},
	}
	for _, tc := range cases {
		g := mustGrid(t, tc.counts)
		for _, s := range solvers {
			t.Run(tc.name+"/"+s.name, func(t *testing.T) {
				p, err := s.run(g)
				require.NoError(t, err)
				assert.Equal(t, tc.score, p.TotalCranes())
				assert.NoError(t, p.Validate())
				if tc.steps != nil {
					assert.Equal(t, tc.steps, p.Steps())
				}
			})
		}
	}
}

// TestSolvers_RowCorridorStopsBeforeZeroTail checks that a zero-count tail
// is not appended: improvements must be strict.
func TestSolvers_RowCorridorStopsBeforeZeroTail(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 2, 0, X, 4}})
	for _, s := range solvers {
		t.Run(s.name, func(t *testing.T) {
			p, err := s.run(g)
			require.NoError(t, err)
			assert.Equal(t, []path.Step{path.East}, p.Steps())
		})
	}
}

// TestSolvers_StrictImprovementOnly keeps the origin when nothing scores more.
func TestSolvers_StrictImprovementOnly(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 0, 0}, {0, 0, 0}})
	for _, s := range solvers {
		t.Run(s.name, func(t *testing.T) {
			p, err := s.run(g)
			require.NoError(t, err)
			assert.Equal(t, 1, p.TotalCranes())
			assert.Equal(t, 0, p.Len())
		})
	}
}

// TestSolvers_NilGrid verifies ErrNilGrid from both entry points.
func TestSolvers_NilGrid(t *testing.T) {
	_, err := unload.Exhaustive(nil)
	assert.ErrorIs(t, err, unload.ErrNilGrid)
	_, err = unload.DynamicProgramming(nil, nil)
	assert.ErrorIs(t, err, unload.ErrNilGrid)
}

// TestExhaustive_PathTooLong rejects grids with R+C-2 ≥ 64.
func TestExhaustive_PathTooLong(t *testing.T) {
	g, err := grid.Random(33, 33, grid.DefaultRandomOptions())
	require.NoError(t, err)
	_, err = unload.Exhaustive(g)
	assert.ErrorIs(t, err, unload.ErrPathTooLong)

	g, err = grid.Random(1, 65, grid.DefaultRandomOptions())
	require.NoError(t, err)
	_, err = unload.Exhaustive(g)
	assert.ErrorIs(t, err, unload.ErrPathTooLong)

	// DP has no such limit.
	p, err := unload.DynamicProgramming(g, nil)
	require.NoError(t, err)
	assert.NoError(t, p.Validate())
}

// TestDynamicProgramming_BadMemoryMode rejects unknown modes.
func TestDynamicProgramming_BadMemoryMode(t *testing.T) {
	g := mustGrid(t, [][]int{{1}})
	_, err := unload.DynamicProgramming(g, &unload.DPOptions{MemoryMode: unload.MemoryMode(9)})
	assert.ErrorIs(t, err, unload.ErrBadMemoryMode)
}

// TestDynamicProgramming_TieKeepsFromAbove pins the merge tie-break and the
// global-best scan on a grid whose best cell is interior.
func TestDynamicProgramming_TieKeepsFromAbove(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 0, 0},
		{0, 9, X},
		{0, X, X},
	})
	p, err := unload.DynamicProgramming(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, p.TotalCranes())
	assert.Equal(t, 1, p.Row())
	assert.Equal(t, 1, p.Col())
	// (0,1)+South and (1,0)+East both score 10; the path from above wins.
	assert.Equal(t, []path.Step{path.East, path.South}, p.Steps())
}

// TestDynamicProgramming_UnreachableRegion ignores high counts that no
// monotone path can reach.
func TestDynamicProgramming_UnreachableRegion(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, X, 50},
		{X, 40, 50},
		{30, 50, 50},
	})
	p, err := unload.DynamicProgramming(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalCranes())
	assert.Equal(t, 0, p.Len())
}

// TestSolvers_Deterministic calls each solver repeatedly on the same grid.
func TestSolvers_Deterministic(t *testing.T) {
	g, err := grid.Random(5, 6, grid.RandomOptions{BuildingProbability: 0.25, MaxCranes: 9, Seed: 11})
	require.NoError(t, err)
	for _, s := range solvers {
		t.Run(s.name, func(t *testing.T) {
			first, err := s.run(g)
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				again, err := s.run(g)
				require.NoError(t, err)
				assert.Equal(t, first.TotalCranes(), again.TotalCranes())
				assert.Equal(t, first.Steps(), again.Steps())
			}
		})
	}
}
