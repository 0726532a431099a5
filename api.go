package astar

// Problem describes an implicit search graph. Implementations must be
// deterministic and free of side effects; the engine treats them as
// read-only and never mutates shared state, so a single Problem value is
// safe to share across concurrent searches.
type Problem[StateType comparable, ActionType any] interface {
	Start() StateType
	Goal() StateType
	IsGoal(state StateType) bool
	Successors(state StateType) []Successor[StateType, ActionType]
	StepCost(from StateType, via ActionType, to StateType) float64
}

// Successor is one reachable state together with the action that reaches it.
type Successor[StateType comparable, ActionType any] struct {
	Action ActionType
	State  StateType
}

// Heuristic returns the estimated remaining cost from a state to the goal.
// It must be deterministic, side-effect free and non-negative.
type Heuristic[StateType comparable] func(from StateType, goal StateType) float64

// Stats carries the search-effort counters accumulated during one search.
// They are valid whether or not a path was found.
type Stats struct {
	// Expanded counts closed states: stale frontier pops and the final goal
	// pop are not expansions.
	Expanded int
	// Generated counts child nodes constructed during expansion, including
	// children later dropped because a better frontier entry already existed.
	Generated int
	// PeakInMemory is the maximum of live-frontier size plus explored-set
	// size observed during the search. Stale heap entries are excluded.
	PeakInMemory int
	// Branching statistics are computed over successors actually inserted
	// into (or replacing an entry of) the frontier, per expansion.
	AvgBranching float64
	MaxBranching int
	MinBranching int
}

// Result contains the outcome of a search.
//
// When Found is true, Path replayed from the problem's start state reaches
// the goal in exactly len(Path) steps and Cost is the summed step cost.
// Ties between equal-f frontier entries are broken in heap order, which is
// implementation-defined; callers must not rely on which of several
// equal-cost paths is returned.
type Result[ActionType any] struct {
	Path  []ActionType
	Cost  float64
	Found bool
	Stats Stats
}

// Options defines parameters for the search.
type Options struct {
	CapacityHint int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithCapacityHint pre-sizes the arena, frontier and explored set for
// searches whose rough state count is known up front.
func WithCapacityHint(states int) Option {
	return func(options *Options) { options.CapacityHint = states }
}

const defaultCapacityHint = 64

// Search executes the A* search to completion.
//
// Duplicate states are eliminated through a state-to-live-entry index, and
// expanded states are closed permanently: a cheaper route discovered after a
// state is closed is discarded. With a consistent heuristic this makes no
// difference to optimality; with an inconsistent one the returned path may
// be suboptimal, which is the accepted trade for never reopening.
//
// The loop is single-threaded and has no suspension points; see
// SearchContext for a deadline-bounded variant.
func Search[StateType comparable, ActionType any](
	problem Problem[StateType, ActionType],
	heuristic Heuristic[StateType],
	options ...Option,
) Result[ActionType] {
	eng := newEngine(problem, heuristic, options...)
	for {
		nodeID, outcome := eng.step()
		switch outcome {
		case stepGoal:
			return Result[ActionType]{
				Path:  eng.arena.actionsTo(nodeID),
				Cost:  eng.arena[nodeID].GScore,
				Found: true,
				Stats: eng.tally.stats(),
			}
		case stepExhausted:
			return Result[ActionType]{
				Path:  nil,
				Found: false,
				Stats: eng.tally.stats(),
			}
		}
	}
}

type stepOutcome int

const (
	stepExpanded stepOutcome = iota
	stepGoal
	stepExhausted
)

// engine owns the mutable search state for one invocation. Search and
// Stepper are both thin drivers around engine.step.
type engine[StateType comparable, ActionType any] struct {
	problem   Problem[StateType, ActionType]
	heuristic Heuristic[StateType]
	goal      StateType

	arena  nodeArena[StateType, ActionType]
	open   frontier[StateType]
	index  map[StateType]*frontierItem[StateType]
	closed map[StateType]bool

	tally tally
}

func newEngine[StateType comparable, ActionType any](
	problem Problem[StateType, ActionType],
	heuristic Heuristic[StateType],
	options ...Option,
) *engine[StateType, ActionType] {
	searchOptions := Options{CapacityHint: defaultCapacityHint}
	for _, option := range options {
		option(&searchOptions)
	}
	hint := searchOptions.CapacityHint

	eng := &engine[StateType, ActionType]{
		problem:   problem,
		heuristic: heuristic,
		goal:      problem.Goal(),
		arena:     make(nodeArena[StateType, ActionType], 0, hint),
		open:      make(frontier[StateType], 0, hint),
		index:     make(map[StateType]*frontierItem[StateType], hint),
		closed:    make(map[StateType]bool, hint),
	}

	start := problem.Start()
	startH := heuristic(start, eng.goal)
	startID := eng.arena.add(searchNode[StateType, ActionType]{
		State:  start,
		Parent: noParent,
		GScore: 0,
		HScore: startH,
		FCost:  startH,
	})
	startItem := &frontierItem[StateType]{State: start, NodeID: startID, FCost: startH}
	eng.open.pushItem(startItem)
	eng.index[start] = startItem
	eng.tally.observeMemory(len(eng.index) + len(eng.closed))

	return eng
}

// step pops frontier entries until it performs one expansion, reaches the
// goal, or exhausts the frontier. It returns the arena id of the popped live
// node (noParent on exhaustion).
func (eng *engine[StateType, ActionType]) step() (int, stepOutcome) {
	for eng.open.Len() > 0 {
		item := eng.open.popItem()

		// A popped entry that no longer matches the index was superseded by
		// a cheaper node pushed later; drop it without counting anything.
		if live, ok := eng.index[item.State]; !ok || live != item {
			continue
		}
		delete(eng.index, item.State)

		if eng.problem.IsGoal(item.State) {
			return item.NodeID, stepGoal
		}

		eng.expand(item)
		return item.NodeID, stepExpanded
	}
	return noParent, stepExhausted
}

func (eng *engine[StateType, ActionType]) expand(item *frontierItem[StateType]) {
	eng.closed[item.State] = true
	eng.tally.expanded++

	current := eng.arena[item.NodeID]
	fruitful := 0
	for _, successor := range eng.problem.Successors(current.State) {
		// Closed states are never reopened, even via a cheaper route.
		if eng.closed[successor.State] {
			continue
		}

		childG := current.GScore + eng.problem.StepCost(current.State, successor.Action, successor.State)
		childH := eng.heuristic(successor.State, eng.goal)
		childID := eng.arena.add(searchNode[StateType, ActionType]{
			State:  successor.State,
			Action: successor.Action,
			Parent: item.NodeID,
			GScore: childG,
			HScore: childH,
			FCost:  childG + childH,
		})
		eng.tally.generated++

		if previous, inOpen := eng.index[successor.State]; inOpen && eng.arena[previous.NodeID].GScore <= childG {
			// Existing frontier entry is as good or better; drop the child.
			continue
		}

		childItem := &frontierItem[StateType]{State: successor.State, NodeID: childID, FCost: childG + childH}
		eng.open.pushItem(childItem)
		// Any previous entry for this state is now stale and will be
		// discarded when popped.
		eng.index[successor.State] = childItem
		fruitful++
	}

	eng.tally.observeExpansion(fruitful)
	eng.tally.observeMemory(len(eng.index) + len(eng.closed))
}

// tally accumulates the per-search counters behind Stats.
type tally struct {
	expanded     int
	generated    int
	peakInMemory int

	totalBranching int
	maxBranching   int
	minBranching   int
	haveBranching  bool
}

func (t *tally) observeExpansion(fruitful int) {
	t.totalBranching += fruitful
	if !t.haveBranching {
		t.maxBranching = fruitful
		t.minBranching = fruitful
		t.haveBranching = true
		return
	}
	if fruitful > t.maxBranching {
		t.maxBranching = fruitful
	}
	if fruitful < t.minBranching {
		t.minBranching = fruitful
	}
}

func (t *tally) observeMemory(inMemory int) {
	if inMemory > t.peakInMemory {
		t.peakInMemory = inMemory
	}
}

func (t *tally) stats() Stats {
	stats := Stats{
		Expanded:     t.expanded,
		Generated:    t.generated,
		PeakInMemory: t.peakInMemory,
		MaxBranching: t.maxBranching,
		MinBranching: t.minBranching,
	}
	if t.expanded > 0 {
		stats.AvgBranching = float64(t.totalBranching) / float64(t.expanded)
	}
	return stats
}
