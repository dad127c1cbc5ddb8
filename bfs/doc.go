// Package bfs implements breadth-first traversal of a valve graph by dense
// index.
//
// Two callers depend on it:
//
//   - search.NewProblem uses Unreached to reject layouts where some valve
//     cannot be reached from the start;
//   - matrix.NewDistancesBFS runs one BFS per valve to build an all-pairs
//     hop table independently of Floyd–Warshall.
//
// Complexity: O(V + E) per call.
//
// Options:
//
//	– WithContext(ctx)   cancellation, checked once per dequeued valve.
//	– WithMaxDepth(d)    stop expanding beyond depth d (0 = unlimited).
//	– WithOnVisit(fn)    callback per visited valve; an error aborts.
//
// Errors (sentinel):
//
//	– ErrGraphNil         nil graph.
//	– ErrStartOutOfRange  start index outside [0, g.Len()).
//	– ErrOptionViolation  negative MaxDepth.
package bfs
