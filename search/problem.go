// File: problem.go
// Role: one-stop facade: graph → distance table → connectivity check → search.
//
// Mirrors the graph-first entry point of a matrix-based solver: callers with
// a *core.Graph never touch the distance table directly.

package search

import (
	"fmt"

	"github.com/katalvlaran/pressure/bfs"
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/matrix"
)

// ProblemOption configures NewProblem.
type ProblemOption func(*problemConfig)

type problemConfig struct {
	allowUnreachable bool
	bfsDistances     bool
}

// AllowUnreachable accepts layouts where some valves cannot be reached from
// the start; the search then simply never opens them.
func AllowUnreachable() ProblemOption {
	return func(c *problemConfig) { c.allowUnreachable = true }
}

// WithBFSDistances builds the table with one BFS per valve instead of
// Floyd–Warshall.
func WithBFSDistances() ProblemOption {
	return func(c *problemConfig) { c.bfsDistances = true }
}

// Problem is a validated graph with its distance table, ready to be solved
// for any budget and mode. It is immutable and safe for concurrent use.
type Problem struct {
	graph *core.Graph
	dist  *matrix.Distances
}

// NewProblem validates g and computes its distance table.
//
// Errors: ErrNilGraph; ErrDisconnected naming the first valve (in index
// order) unreachable from the start unless AllowUnreachable is given.
func NewProblem(g *core.Graph, opts ...ProblemOption) (*Problem, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var cfg problemConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.allowUnreachable {
		missing, err := bfs.Unreached(g, g.Start())
		if err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: %q (from %q, %d unreachable)",
				ErrDisconnected, g.ID(missing[0]), g.StartID(), len(missing))
		}
	}

	build := matrix.NewDistances
	if cfg.bfsDistances {
		build = matrix.NewDistancesBFS
	}
	dist, err := build(g)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	return &Problem{graph: g, dist: dist}, nil
}

// Graph returns the underlying graph.
func (p *Problem) Graph() *core.Graph { return p.graph }

// Distances returns the distance table.
func (p *Problem) Distances() *matrix.Distances { return p.dist }

// Solve runs the single-actor search from the graph's start valve.
func (p *Problem) Solve(budget uint32, opts ...Option) (Result, error) {
	return Solve(p.graph, p.dist, p.graph.Start(), budget, opts...)
}

// SolveDual runs the two-actor search from the graph's start valve.
func (p *Problem) SolveDual(budget uint32, opts ...Option) (Result, error) {
	return SolveDual(p.graph, p.dist, p.graph.Start(), budget, opts...)
}

// Run dispatches on mode.
func (p *Problem) Run(mode Mode, budget uint32, opts ...Option) (Result, error) {
	switch mode {
	case Single:
		return p.Solve(budget, opts...)
	case Dual:
		return p.SolveDual(budget, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}
