package astar

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot[StateType comparable, ActionType any] struct {
	Current   StateType
	Open      map[StateType]bool
	Closed    map[StateType]bool
	Done      bool
	Found     bool
	Path      []ActionType
	StepIndex int
	Stats     Stats
}

// Stepper drives the same engine as Search one expansion at a time, for
// visual frontends and debugging tools.
type Stepper[StateType comparable, ActionType any] struct {
	eng *engine[StateType, ActionType]

	stepCount int
	done      bool
	found     bool
	path      []ActionType
}

// NewStepper creates a stepper over the given problem and heuristic.
func NewStepper[StateType comparable, ActionType any](
	problem Problem[StateType, ActionType],
	heuristic Heuristic[StateType],
	options ...Option,
) *Stepper[StateType, ActionType] {
	return &Stepper[StateType, ActionType]{
		eng: newEngine(problem, heuristic, options...),
	}
}

// Step advances the search by one node expansion and returns a snapshot.
// Stale frontier entries are skipped inside a single call, so every call
// corresponds to at most one expansion. Once Done is reported, further
// calls return the terminal snapshot unchanged.
func (s *Stepper[StateType, ActionType]) Step() StepSnapshot[StateType, ActionType] {
	if s.done {
		return s.snapshot(s.eng.arena[0].State)
	}

	nodeID, outcome := s.eng.step()
	switch outcome {
	case stepGoal:
		s.done = true
		s.found = true
		s.path = s.eng.arena.actionsTo(nodeID)
		s.stepCount++
		return s.snapshot(s.eng.arena[nodeID].State)
	case stepExhausted:
		s.done = true
		return s.snapshot(s.eng.arena[0].State)
	default:
		s.stepCount++
		return s.snapshot(s.eng.arena[nodeID].State)
	}
}

// Done reports whether the search has terminated.
func (s *Stepper[StateType, ActionType]) Done() bool { return s.done }

func (s *Stepper[StateType, ActionType]) snapshot(current StateType) StepSnapshot[StateType, ActionType] {
	return StepSnapshot[StateType, ActionType]{
		Current:   current,
		Open:      s.openToBoolMap(),
		Closed:    copyBoolMap(s.eng.closed),
		Done:      s.done,
		Found:     s.found,
		Path:      s.path,
		StepIndex: s.stepCount,
		Stats:     s.eng.tally.stats(),
	}
}

func (s *Stepper[StateType, ActionType]) openToBoolMap() map[StateType]bool {
	m := make(map[StateType]bool, len(s.eng.index))
	for state := range s.eng.index {
		m[state] = true
	}
	return m
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
