// Package search computes the maximum total value a single actor, or a pair
// of actors, can release from a valve graph within a time budget.
//
// Model:
//
//	Opening valve j at time-left t releases rate(j)·t in total.
//	Walking one tunnel costs one unit; opening costs one unit.
//
// Engines:
//
//   - Solve: jump search over decisions "walk to unopened valve j and open
//     it", travel = dist[cur][j] + 1, memoised on (pos, timeLeft, mask).
//     The branching factor is the number of positive-rate valves rather than
//     the node degree, and pure repositioning is never a branch.
//   - SolveDual: the same jump search for two actors with independent clocks
//     and one shared mask, memoised on (pos1, time1, pos2, time2, mask).
//   - SolveStepwise: minute-by-minute single-actor search used as an
//     independent oracle for Solve.
//
// Masks address flow slots (core.Graph.FlowSlot), so a graph may hold at
// most core.MaxFlowValves positive-rate valves; core.NewGraph enforces it.
//
// Recursion depth is bounded by the budget (single) or twice the budget
// (dual), since every call consumes at least one unit of some actor's time.
//
// Concurrency:
//
// Every engine owns its memo table; nothing is global. WithWorkers(n) fans
// the first activation decision out over n goroutines (errgroup), each
// branch with a private memo, and merges by max. The graph and the distance
// table are read-only and shared.
//
// Example:
//
//	p, err := search.NewProblem(g)
//	if err != nil {
//	    return err
//	}
//	res, err := p.SolveDual(26, search.WithWorkers(4))
//	fmt.Println(res.Value)
package search
