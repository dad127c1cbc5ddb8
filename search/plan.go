package search

import (
	"fmt"

	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/matrix"
)

// plan is the read-only view shared by every engine of one computation:
// the distance table plus the positive-rate valves in flow-slot order.
type plan struct {
	dist  *matrix.Distances
	flow  []int    // flow slot → dense index
	rates []uint32 // flow slot → rate
}

// newPlan validates the inputs of a jump search and snapshots the flow
// valves. Any mismatch here is a lookup error; past this point every index
// the recursion touches is in range.
func newPlan(g *core.Graph, dist *matrix.Distances, start int) (*plan, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if dist == nil {
		return nil, ErrNilDistances
	}
	if err := dist.CheckGraph(g); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if !g.InRange(start) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, g.Len())
	}

	flow := g.FlowIndices()
	p := &plan{
		dist:  dist,
		flow:  flow,
		rates: make([]uint32, len(flow)),
	}
	for s, i := range flow {
		p.rates[s] = g.Rate(i)
	}

	return p, nil
}

// travel returns the time left after walking d hops and opening the valve,
// and whether that is possible within t.
func travel(d, t uint32) (uint32, bool) {
	if d == matrix.Unreachable || d >= t {
		return 0, false
	}

	return t - d - 1, true
}
