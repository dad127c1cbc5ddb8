package search

import (
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/matrix"
)

// Solve returns the maximum value one actor starting at start can release
// within budget time units.
//
// The recursion branches only on "walk to an unopened positive-rate valve j
// and open it": travel time is dist[cur][j] + 1, the valve then releases
// rate(j) for every remaining unit. States (pos, time left, mask) are
// memoised, so different opening orders that reach the same state are
// searched once.
//
// Errors (validation only): ErrNilGraph, ErrNilDistances,
// matrix.ErrDimensionMismatch, ErrStartOutOfRange, ErrOptionViolation, or the
// context error when cancelled between fan-out branches.
//
// Complexity: O(k · n · budget · 2^k) time in the worst case, k = flow valves.
func Solve(g *core.Graph, dist *matrix.Distances, start int, budget uint32, opts ...Option) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	p, err := newPlan(g, dist, start)
	if err != nil {
		return Result{}, err
	}
	if err = o.Ctx.Err(); err != nil {
		return Result{}, err
	}

	var res Result
	if o.Workers > 1 {
		res.Value, res.Stats, err = fanOut(o, p.soloBranches(start, budget))
		if err != nil {
			return Result{}, err
		}
	} else {
		e := newSoloEngine(p)
		res.Value = e.best(start, budget, 0)
		res.Stats = e.stats()
	}
	logFinished(o, Single, budget, res)

	return res, nil
}

// soloBranches splits the search at the first activation decision.
func (p *plan) soloBranches(start int, budget uint32) []branch {
	var out []branch
	row := p.dist.Row(start)
	for s, j := range p.flow {
		left, ok := travel(row[j], budget)
		if !ok {
			continue
		}
		rate, bit, next := p.rates[s], Mask(0).With(s), j
		out = append(out, func() (uint32, Stats) {
			e := newSoloEngine(p)
			v := rate*left + e.best(next, left, bit)

			return v, e.stats()
		})
	}

	return out
}

// soloEngine owns the memo table of one single-actor search.
type soloEngine struct {
	plan  *plan
	memo  *memo[soloKey]
	calls uint64
}

func newSoloEngine(p *plan) *soloEngine {
	return &soloEngine{plan: p, memo: newMemo[soloKey]()}
}

// best is the maximum additional value from (pos, t, mask).
func (e *soloEngine) best(pos int, t uint32, mask Mask) uint32 {
	if t == 0 {
		return 0
	}
	e.calls++
	key := soloKey{pos: int32(pos), time: t, mask: mask}
	if v, ok := e.memo.get(key); ok {
		return v
	}

	var top uint32
	row := e.plan.dist.Row(pos)
	for s, j := range e.plan.flow {
		if mask.Has(s) {
			continue
		}
		left, ok := travel(row[j], t)
		if !ok {
			continue
		}
		if v := e.plan.rates[s]*left + e.best(j, left, mask.With(s)); v > top {
			top = v
		}
	}
	e.memo.put(key, top)

	return top
}

func (e *soloEngine) stats() Stats {
	return Stats{States: e.memo.len(), Hits: e.memo.hits, Calls: e.calls, Branches: 1}
}
