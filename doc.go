// Package pressure finds the most value that can be released from a network
// of pressure valves before time runs out, by one actor or by two working
// together.
//
// Every valve has a flow rate and tunnels to its neighbours. Walking a tunnel
// takes one time unit, opening a valve takes one more, and an open valve
// releases its rate for every unit left on the clock.
//
// Layout:
//
//	core/     — immutable valve Graph: dense indices, flow slots, structural errors
//	parse/    — the textual valve report → core declarations
//	bfs/      — breadth-first traversal and reachability over a core.Graph
//	matrix/   — all-pairs hop Distances (Floyd–Warshall, or BFS per valve)
//	search/   — memoised jump search: Solve, SolveDual, SolveStepwise, Problem
//	builder/  — deterministic layouts (grid, cycle, random sparse, reference)
//	config/   — YAML run configuration
//	metrics/  — Prometheus collectors for search effort
//	cmd/pressure — the batch command line
//
// Quick ASCII example:
//
//	    AA───BB(13)
//	    │     │
//	    DD(20)─CC(2)
//
// From AA with 5 time units the best plan opens DD with 3 units left (60),
// then steps to CC and opens it with 1 left (2): 62.
//
//	go run ./cmd/pressure -input report.txt
package pressure
