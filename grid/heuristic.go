package grid

import "math"

// Manhattan is the L1 distance between two cells. Admissible and consistent
// for unit-cost four-connected moves.
func Manhattan(from, goal Cell) float64 {
	return float64(abs(from.Row-goal.Row) + abs(from.Col-goal.Col))
}

// Euclidean is the straight-line distance between two cells. Admissible and
// consistent, but a weaker bound than Manhattan on a four-connected grid.
func Euclidean(from, goal Cell) float64 {
	dr := float64(from.Row - goal.Row)
	dc := float64(from.Col - goal.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Zero estimates nothing, degrading the search to uniform-cost.
func Zero(Cell, Cell) float64 { return 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
