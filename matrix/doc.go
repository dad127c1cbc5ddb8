// Package matrix provides the all-pairs hop-count table used by the search
// engines to jump directly between positive-rate valves.
//
// What:
//
//   - Distances is a dense n×n uint32 table in row-major order, built once
//     from a *core.Graph and never mutated afterwards.
//   - Unreachable (math.MaxUint32) marks pairs with no tunnel path.
//
// Builders:
//
//   - NewDistances: Floyd–Warshall closure in fixed k → i → j order,
//     O(n³) time, O(n²) space. Legs through Unreachable are skipped, so the
//     relaxation never overflows.
//   - NewDistancesBFS: one breadth-first search per valve, O(n·(n+m)).
//     Produces the identical table; useful as a cross-check and for very
//     sparse inputs.
//
// Invariants (tested):
//
//	dist[i][i] == 0
//	dist[i][j] == dist[j][i] for undirected tunnel networks
//	dist[i][j] ≤ dist[i][k] + dist[k][j] whenever both legs are reachable
//
// Errors:
//
//	ErrNilGraph          – nil graph.
//	ErrOutOfRange        – index outside [0,n).
//	ErrDimensionMismatch – a table does not match the graph it is paired with.
package matrix
