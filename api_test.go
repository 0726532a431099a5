package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	astar "github.com/Saint-Jimmy-13/GWPF-GridWorldPathFinder"
	"github.com/Saint-Jimmy-13/GWPF-GridWorldPathFinder/grid"
)

// replay walks a returned path from the problem's start and asserts every
// visited cell is in bounds and off the obstacles, returning the final cell.
func replay(t *testing.T, problem *grid.Problem, path []grid.Move) grid.Cell {
	t.Helper()
	cells := grid.Trace(problem.Start(), path)
	for _, cell := range cells {
		require.GreaterOrEqual(t, cell.Row, 0)
		require.GreaterOrEqual(t, cell.Col, 0)
		require.Less(t, cell.Row, problem.Size())
		require.Less(t, cell.Col, problem.Size())
		require.False(t, problem.IsObstacle(cell), "path touches obstacle %v", cell)
	}
	return cells[len(cells)-1]
}

// bfsShortest is a reference breadth-first search used to check optimality.
// It returns -1 when the goal is unreachable.
func bfsShortest(problem *grid.Problem) int {
	type entry struct {
		cell  grid.Cell
		depth int
	}
	seen := map[grid.Cell]bool{problem.Start(): true}
	queue := []entry{{cell: problem.Start()}}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		if problem.IsGoal(head.cell) {
			return head.depth
		}
		for _, successor := range problem.Successors(head.cell) {
			if !seen[successor.State] {
				seen[successor.State] = true
				queue = append(queue, entry{cell: successor.State, depth: head.depth + 1})
			}
		}
	}
	return -1
}

// TestSearch_StartIsGoal verifies the goal test fires on the start node,
// before any expansion.
func TestSearch_StartIsGoal(t *testing.T) {
	problem, err := grid.NewProblem(1, grid.Cell{}, grid.Cell{}, nil)
	require.NoError(t, err)

	result := astar.Search[grid.Cell, grid.Move](problem, grid.Manhattan)

	assert.True(t, result.Found)
	assert.Empty(t, result.Path)
	assert.Zero(t, result.Cost)
	assert.Zero(t, result.Stats.Expanded)
	assert.Zero(t, result.Stats.Generated)
}

// TestSearch_DetourAroundWall covers the 3x3 instance with a two-cell wall:
// the only shortest paths take four steps around it.
func TestSearch_DetourAroundWall(t *testing.T) {
	obstacles := []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}}
	problem, err := grid.NewProblem(3, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2}, obstacles)
	require.NoError(t, err)

	result := astar.Search[grid.Cell, grid.Move](problem, grid.Manhattan)

	require.True(t, result.Found)
	assert.Len(t, result.Path, 4)
	assert.Equal(t, 4.0, result.Cost)
	assert.LessOrEqual(t, result.Stats.Expanded, 7, "cannot expand more than the free cells")
	end := replay(t, problem, result.Path)
	assert.Equal(t, problem.Goal(), end)
}

// TestSearch_Unsolvable verifies a full wall yields no path and that every
// cell of the start's partition is expanded before giving up.
func TestSearch_Unsolvable(t *testing.T) {
	obstacles := []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}
	problem, err := grid.NewProblem(3, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2}, obstacles)
	require.NoError(t, err)

	result := astar.Search[grid.Cell, grid.Move](problem, grid.Manhattan)

	assert.False(t, result.Found)
	assert.Nil(t, result.Path)
	// Reachable partition: (0,0), (1,0), (2,0).
	assert.Equal(t, 3, result.Stats.Expanded)
}

// TestSearch_EmptyGridShortest checks the closed-form optimum 2(N-1) on
// obstacle-free grids for both bundled heuristics.
func TestSearch_EmptyGridShortest(t *testing.T) {
	heuristics := map[string]astar.Heuristic[grid.Cell]{
		"manhattan": grid.Manhattan,
		"euclidean": grid.Euclidean,
	}
	for name, heuristic := range heuristics {
		t.Run(name, func(t *testing.T) {
			for _, size := range []int{2, 5, 9} {
				problem, err := grid.NewProblem(size, grid.Cell{}, grid.Cell{Row: size - 1, Col: size - 1}, nil)
				require.NoError(t, err)

				result := astar.Search[grid.Cell, grid.Move](problem, heuristic)

				require.True(t, result.Found, "size %d", size)
				assert.Len(t, result.Path, 2*(size-1), "size %d", size)
				assert.Equal(t, problem.Goal(), replay(t, problem, result.Path))
			}
		})
	}
}

// TestSearch_OptimalOnRandomMaps compares path lengths against the BFS
// reference on random solvable instances; Manhattan is consistent on a
// unit-cost grid, so no-reopening still yields optimal paths.
func TestSearch_OptimalOnRandomMaps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	solvable := 0
	for attempt := 0; attempt < 60 && solvable < 12; attempt++ {
		size := 6 + rng.Intn(8)
		problem, err := grid.Random(rng, size, 0.25, grid.Cell{}, grid.Cell{Row: size - 1, Col: size - 1})
		require.NoError(t, err)

		want := bfsShortest(problem)
		result := astar.Search[grid.Cell, grid.Move](problem, grid.Manhattan)

		if want < 0 {
			assert.False(t, result.Found)
			continue
		}
		solvable++
		require.True(t, result.Found)
		assert.Len(t, result.Path, want)
		assert.Equal(t, problem.Goal(), replay(t, problem, result.Path))
	}
	require.Greater(t, solvable, 0, "no solvable instances generated")
}

// TestSearch_Idempotent verifies the search is deterministic: same problem,
// same heuristic, identical path and statistics.
func TestSearch_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	problem, err := grid.Random(rng, 12, 0.2, grid.Cell{}, grid.Cell{Row: 11, Col: 11})
	require.NoError(t, err)

	first := astar.Search[grid.Cell, grid.Move](problem, grid.Manhattan)
	second := astar.Search[grid.Cell, grid.Move](problem, grid.Manhattan)

	assert.Equal(t, first, second)
}

// countingProblem wraps a grid problem and counts successor generations per
// state, to prove closed states are never re-expanded and stale frontier
// entries are discarded rather than expanded.
type countingProblem struct {
	*grid.Problem
	expansions map[grid.Cell]int
}

func (p *countingProblem) Successors(c grid.Cell) []astar.Successor[grid.Cell, grid.Move] {
	p.expansions[c]++
	return p.Problem.Successors(c)
}

func TestSearch_ExpandsEachStateOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	inner, err := grid.Random(rng, 15, 0.3, grid.Cell{}, grid.Cell{Row: 14, Col: 14})
	require.NoError(t, err)
	problem := &countingProblem{Problem: inner, expansions: make(map[grid.Cell]int)}

	result := astar.Search[grid.Cell, grid.Move](problem, grid.Euclidean)

	total := 0
	for cell, count := range problem.expansions {
		assert.Equal(t, 1, count, "state %v expanded more than once", cell)
		total += count
	}
	assert.Equal(t, result.Stats.Expanded, total)
	assert.LessOrEqual(t, result.Stats.Expanded, inner.FreeCells())
}

// TestSearch_StatsShape sanity-checks the counter relationships on a run
// with real work in it.
func TestSearch_StatsShape(t *testing.T) {
	obstacles := []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}}
	problem, err := grid.NewProblem(3, grid.Cell{}, grid.Cell{Row: 2, Col: 2}, obstacles)
	require.NoError(t, err)

	result := astar.Search[grid.Cell, grid.Move](problem, grid.Manhattan)
	stats := result.Stats

	require.True(t, result.Found)
	assert.Positive(t, stats.Expanded)
	assert.GreaterOrEqual(t, stats.Generated, stats.Expanded-1)
	assert.GreaterOrEqual(t, stats.PeakInMemory, stats.Expanded)
	assert.GreaterOrEqual(t, stats.MaxBranching, stats.MinBranching)
	assert.GreaterOrEqual(t, float64(stats.MaxBranching), stats.AvgBranching)
	assert.LessOrEqual(t, float64(stats.MinBranching), stats.AvgBranching)
	assert.LessOrEqual(t, stats.MaxBranching, 4)
}

func TestSearch_CapacityHintDoesNotChangeResult(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	problem, err := grid.Random(rng, 10, 0.2, grid.Cell{}, grid.Cell{Row: 9, Col: 9})
	require.NoError(t, err)

	plain := astar.Search[grid.Cell, grid.Move](problem, grid.Manhattan)
	hinted := astar.Search[grid.Cell, grid.Move](problem, grid.Manhattan, astar.WithCapacityHint(100))

	assert.Equal(t, plain, hinted)
}
