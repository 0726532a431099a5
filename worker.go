package astar

import "context"

// SearchContext runs Search in a worker goroutine and returns early if the
// context is cancelled first.
//
// The core loop has no yield points, so cancellation cannot stop a search
// already underway: the worker keeps running to completion and its result is
// discarded. This is the sanctioned way to put a time bound on a search.
func SearchContext[StateType comparable, ActionType any](
	ctx context.Context,
	problem Problem[StateType, ActionType],
	heuristic Heuristic[StateType],
	options ...Option,
) (Result[ActionType], error) {
	results := make(chan Result[ActionType], 1)
	go func() {
		results <- Search(problem, heuristic, options...)
	}()

	select {
	case <-ctx.Done():
		return Result[ActionType]{}, ctx.Err()
	case result := <-results:
		return result, nil
	}
}
