package astar

// noParent marks the root of the search tree.
const noParent = -1

// searchNode is one entry in the node arena. Nodes are immutable after
// creation: a cheaper route to the same state gets a fresh arena entry
// instead of an in-place update.
type searchNode[StateType comparable, ActionType any] struct {
	State  StateType
	Action ActionType // action that produced this node; zero value for the root
	Parent int        // arena id of the parent, or noParent
	GScore float64
	HScore float64
	FCost  float64
}

// nodeArena stores every node created during one search. Parent links are
// integer ids into the arena, so the tree carries no pointer cycles and path
// reconstruction is a plain index walk.
type nodeArena[StateType comparable, ActionType any] []searchNode[StateType, ActionType]

func (arena *nodeArena[StateType, ActionType]) add(node searchNode[StateType, ActionType]) int {
	*arena = append(*arena, node)
	return len(*arena) - 1
}

// actionsTo rebuilds the action sequence from the root to the given node.
func (arena nodeArena[StateType, ActionType]) actionsTo(id int) []ActionType {
	path := make([]ActionType, 0)
	for current := id; arena[current].Parent != noParent; current = arena[current].Parent {
		path = append(path, arena[current].Action)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
