package search

import (
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/matrix"
)

// SolveDual returns the maximum value two actors, both starting at start
// with budget time units each, release together.
//
// Each call tries, for every unopened positive-rate valve, "actor 1 walks
// there and opens it" and "actor 2 walks there and opens it", holding the
// other actor's position and clock. The activation mask is shared, so a
// valve is never opened twice. The memo key is the full five-tuple
// (pos1, time1, pos2, time2, mask); WithSymmetryReduction merges swapped
// actor states into one entry.
//
// Errors: as Solve.
func SolveDual(g *core.Graph, dist *matrix.Distances, start int, budget uint32, opts ...Option) (Result, error) {
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
		res.Value, res.Stats, err = fanOut(o, p.duoBranches(start, budget, o.SymmetryReduction))
		if err != nil {
			return Result{}, err
		}
	} else {
		e := newDuoEngine(p, o.SymmetryReduction)
		res.Value = e.best(start, budget, start, budget, 0)
		res.Stats = e.stats()
	}
	logFinished(o, Dual, budget, res)

	return res, nil
}

// duoBranches splits the search at the first activation decision of either
// actor. Both actors begin in the same state, so with symmetry reduction the
// second actor's first moves mirror the first actor's and are skipped.
func (p *plan) duoBranches(start int, budget uint32, symmetric bool) []branch {
	var out []branch
	row := p.dist.Row(start)
	for s, j := range p.flow {
		left, ok := travel(row[j], budget)
		if !ok {
			continue
		}
		rate, bit, next := p.rates[s], Mask(0).With(s), j
		out = append(out, func() (uint32, Stats) {
			e := newDuoEngine(p, symmetric)
			v := rate*left + e.best(next, left, start, budget, bit)

			return v, e.stats()
		})
		if symmetric {
			continue
		}
		out = append(out, func() (uint32, Stats) {
			e := newDuoEngine(p, symmetric)
			v := rate*left + e.best(start, budget, next, left, bit)

			return v, e.stats()
		})
	}

	return out
}

// duoEngine owns the memo table of one two-actor search.
type duoEngine struct {
	plan      *plan
	memo      *memo[duoKey]
	calls     uint64
	canonical bool
}

func newDuoEngine(p *plan, canonical bool) *duoEngine {
	return &duoEngine{plan: p, memo: newMemo[duoKey](), canonical: canonical}
}

// best is the maximum additional value from (p1, t1, p2, t2, mask). Each
// branch scores the valve it opens; the idle actor's future openings are
// scored by the deeper calls that move it.
func (e *duoEngine) best(p1 int, t1 uint32, p2 int, t2 uint32, mask Mask) uint32 {
	if t1 == 0 && t2 == 0 {
		return 0
	}
	e.calls++
	key := duoKey{pos1: int32(p1), time1: t1, pos2: int32(p2), time2: t2, mask: mask}
	if e.canonical {
		key = key.canonical()
	}
	if v, ok := e.memo.get(key); ok {
		return v
	}

	var top uint32
	row1, row2 := e.plan.dist.Row(p1), e.plan.dist.Row(p2)
	for s, j := range e.plan.flow {
		if mask.Has(s) {
			continue
		}
		next, rate := mask.With(s), e.plan.rates[s]
		if left, ok := travel(row1[j], t1); ok {
			if v := rate*left + e.best(j, left, p2, t2, next); v > top {
				top = v
			}
		}
		if left, ok := travel(row2[j], t2); ok {
			if v := rate*left + e.best(p1, t1, j, left, next); v > top {
				top = v
			}
		}
	}
	e.memo.put(key, top)

	return top
}

func (e *duoEngine) stats() Stats {
	return Stats{States: e.memo.len(), Hits: e.memo.hits, Calls: e.calls, Branches: 1}
}
