package grid

import (
	"fmt"
	"math/rand"
)

// Random builds a grid instance with Bernoulli obstacle placement at the
// given density. Start and goal are scrubbed from the obstacle set before
// construction, so the constructor's obstacle preconditions always hold.
// The instance is deterministic for a given rng state.
//
// No solvability guarantee is made; callers that need a solvable map run
// the search and discard unsolvable instances.
func Random(rng *rand.Rand, size int, density float64, start, goal Cell) (*Problem, error) {
	if density < 0 || density >= 1 {
		return nil, fmt.Errorf("obstacle density must be in [0,1), got %g", density)
	}

	obstacles := make([]Cell, 0, int(float64(size*size)*density))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if rng.Float64() < density {
				cell := Cell{Row: row, Col: col}
				if cell == start || cell == goal {
					continue
				}
				obstacles = append(obstacles, cell)
			}
		}
	}

	return NewProblem(size, start, goal, obstacles)
}
