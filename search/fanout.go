package search

import (
	"golang.org/x/sync/errgroup"
)

// branch searches one top-level activation decision with its own memo table
// and returns the value of that decision plus the work it took.
type branch func() (uint32, Stats)

// fanOut runs branches on at most o.Workers goroutines and merges by max.
// Branches share only the read-only plan; memo tables stay private.
// Cancellation is observed before each branch starts.
func fanOut(o Options, branches []branch) (uint32, Stats, error) {
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)

	values := make([]uint32, len(branches))
	stats := make([]Stats, len(branches))
	for i, b := range branches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			values[i], stats[i] = b()
			o.Logger.Debug("search branch done",
				"branch", i, "value", values[i], "states", stats[i].States)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, Stats{}, err
	}

	var (
		top   uint32
		total Stats
	)
	for i := range branches {
		top = max(top, values[i])
		total.add(stats[i])
	}

	return top, total, nil
}

// logFinished emits the summary debug record of a search.
func logFinished(o Options, mode Mode, budget uint32, res Result) {
	o.Logger.Debug("search finished",
		"mode", mode.String(),
		"budget", budget,
		"workers", o.Workers,
		"value", res.Value,
		"states", res.Stats.States,
		"hits", res.Stats.Hits,
		"calls", res.Stats.Calls,
		"branches", res.Stats.Branches,
	)
}
