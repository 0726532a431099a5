package astar

import "container/heap"

// frontierItem is one heap entry. Several items may exist for the same state;
// only the one the engine's index points at is live, the rest are stale.
type frontierItem[StateType comparable] struct {
	State        StateType
	NodeID       int
	FCost        float64
	IndexInQueue int
}

type frontier[StateType comparable] []*frontierItem[StateType]

func (queue frontier[StateType]) Len() int           { return len(queue) }
func (queue frontier[StateType]) Less(i, j int) bool { return queue[i].FCost < queue[j].FCost }
func (queue frontier[StateType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *frontier[StateType]) Push(x any) {
	item := x.(*frontierItem[StateType])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *frontier[StateType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}

func (queue *frontier[StateType]) pushItem(item *frontierItem[StateType]) {
	heap.Push(queue, item)
}

func (queue *frontier[StateType]) popItem() *frontierItem[StateType] {
	return heap.Pop(queue).(*frontierItem[StateType])
}
