// Package astar provides a generic best-first (A*) search over implicit graphs.
//
// It exposes three main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - SearchContext: the same search bounded by a caller-supplied context.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The library is generic over state and action types. The frontier uses lazy
// deletion instead of decrease-key: a superseded entry stays in the heap and
// is discarded when it is eventually popped. Expanded states are closed
// permanently and never reopened.
package astar
