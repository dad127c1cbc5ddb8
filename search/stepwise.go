package search

import (
	"fmt"

	"github.com/katalvlaran/pressure/core"
)

// SolveStepwise is the minute-by-minute single-actor formulation: at every
// time unit the actor either walks one tunnel or opens the valve it stands
// on. It needs no distance table but explores far more states than Solve,
// which it must always agree with. Workers and SymmetryReduction are ignored.
//
// Errors: ErrNilGraph, ErrStartOutOfRange, ErrOptionViolation, context error.
func SolveStepwise(g *core.Graph, start int, budget uint32, opts ...Option) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.InRange(start) {
		return Result{}, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, g.Len())
	}
	if err = o.Ctx.Err(); err != nil {
		return Result{}, err
	}

	e := &stepEngine{graph: g, memo: newMemo[soloKey]()}
	res := Result{Value: e.best(start, budget, 0)}
	res.Stats = Stats{States: e.memo.len(), Hits: e.memo.hits, Calls: e.calls, Branches: 1}
	logFinished(o, Single, budget, res)

	return res, nil
}

type stepEngine struct {
	graph *core.Graph
	memo  *memo[soloKey]
	calls uint64
}

func (e *stepEngine) best(pos int, t uint32, mask Mask) uint32 {
	if t == 0 {
		return 0
	}
	e.calls++
	key := soloKey{pos: int32(pos), time: t, mask: mask}
	if v, ok := e.memo.get(key); ok {
		return v
	}

	var top uint32
	for _, nb := range e.graph.Neighbors(pos) {
		top = max(top, e.best(nb, t-1, mask))
	}
	if slot := e.graph.FlowSlot(pos); slot >= 0 && !mask.Has(slot) {
		top = max(top, e.graph.Rate(pos)*(t-1)+e.best(pos, t-1, mask.With(slot)))
	}
	e.memo.put(key, top)

	return top
}
