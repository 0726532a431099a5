// Package grid implements the N x N obstacle-grid pathfinding problem used
// by the experiment harness. A Problem satisfies astar.Problem over Cell
// states and Move actions.
package grid

import (
	"fmt"

	astar "github.com/Saint-Jimmy-13/GWPF-GridWorldPathFinder"
)

// Cell is a grid coordinate. Comparable, usable as a map key.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move is one of the four grid actions.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

// moveOrder is the fixed candidate order for successor generation. Changing
// it changes which of several equal-cost shortest paths the search returns.
var moveOrder = [4]Move{Up, Down, Left, Right}

var moveDeltas = [4][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

var moveNames = [4]string{
	Up:    "UP",
	Down:  "DOWN",
	Left:  "LEFT",
	Right: "RIGHT",
}

func (m Move) String() string {
	if int(m) >= len(moveNames) {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return moveNames[m]
}

// Apply returns the cell reached by taking the move from c.
func (m Move) Apply(c Cell) Cell {
	delta := moveDeltas[m]
	return Cell{Row: c.Row + delta[0], Col: c.Col + delta[1]}
}

// Trace replays a move sequence from a cell and returns every cell visited,
// starting cell included. It does not check bounds or obstacles.
func Trace(start Cell, path []Move) []Cell {
	cells := make([]Cell, 0, len(path)+1)
	cells = append(cells, start)
	current := start
	for _, move := range path {
		current = move.Apply(current)
		cells = append(cells, current)
	}
	return cells
}

// Problem is an immutable grid pathfinding instance. It is read-only after
// construction and safe to share across concurrent searches.
type Problem struct {
	size      int
	start     Cell
	goal      Cell
	obstacles map[Cell]bool
}

// NewProblem validates and builds a grid instance. The size must be
// positive, start and goal must be inside the grid, and neither may sit on
// an obstacle. Obstacle cells outside the grid are tolerated; they can never
// be reached.
func NewProblem(size int, start, goal Cell, obstacles []Cell) (*Problem, error) {
	if size < 1 {
		return nil, fmt.Errorf("grid size must be positive, got %d", size)
	}
	if !inBounds(start, size) {
		return nil, fmt.Errorf("start %v outside %dx%d grid", start, size, size)
	}
	if !inBounds(goal, size) {
		return nil, fmt.Errorf("goal %v outside %dx%d grid", goal, size, size)
	}

	walls := make(map[Cell]bool, len(obstacles))
	for _, cell := range obstacles {
		walls[cell] = true
	}
	if walls[start] {
		return nil, fmt.Errorf("start %v is an obstacle", start)
	}
	if walls[goal] {
		return nil, fmt.Errorf("goal %v is an obstacle", goal)
	}

	return &Problem{size: size, start: start, goal: goal, obstacles: walls}, nil
}

func inBounds(c Cell, size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// Size returns the grid dimension N.
func (p *Problem) Size() int { return p.size }

// Start returns the start cell.
func (p *Problem) Start() Cell { return p.start }

// Goal returns the goal cell.
func (p *Problem) Goal() Cell { return p.goal }

// IsGoal reports whether the cell is the goal.
func (p *Problem) IsGoal(c Cell) bool { return c == p.goal }

// IsObstacle reports whether the cell is blocked.
func (p *Problem) IsObstacle(c Cell) bool { return p.obstacles[c] }

// Obstacles returns a copy of the obstacle cells.
func (p *Problem) Obstacles() []Cell {
	cells := make([]Cell, 0, len(p.obstacles))
	for cell := range p.obstacles {
		cells = append(cells, cell)
	}
	return cells
}

// FreeCells returns the number of traversable cells.
func (p *Problem) FreeCells() int {
	blocked := 0
	for cell := range p.obstacles {
		if inBounds(cell, p.size) {
			blocked++
		}
	}
	return p.size*p.size - blocked
}

// Successors returns the legal moves from a cell, always in the order
// UP, DOWN, LEFT, RIGHT. Neighbors off the grid or on obstacles are
// filtered out, so the search never sees a malformed state.
func (p *Problem) Successors(c Cell) []astar.Successor[Cell, Move] {
	successors := make([]astar.Successor[Cell, Move], 0, 4)
	for _, move := range moveOrder {
		neighbor := move.Apply(c)
		if inBounds(neighbor, p.size) && !p.obstacles[neighbor] {
			successors = append(successors, astar.Successor[Cell, Move]{Action: move, State: neighbor})
		}
	}
	return successors
}

// StepCost is constant 1 for any legal move.
func (p *Problem) StepCost(Cell, Move, Cell) float64 { return 1 }
