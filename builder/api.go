// SPDX-License-Identifier: MIT
// Package: pressure/builder
//
// api.go - public entry points and the shared layout accumulator.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors never panic; they return sentinel errors wrapped with a method tag.
//   - A valve keeps the rate it was given by the first constructor that emitted it.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pressure/core"
)

// Constructor appends valves and tunnels to a layout.
type Constructor func(l *Layout, cfg builderConfig) error

// Layout accumulates declarations in emission order.
type Layout struct {
	decls []core.Declaration
	index map[string]int
	links map[[2]int]struct{}
}

func newLayout() *Layout {
	return &Layout{
		index: make(map[string]int),
		links: make(map[[2]int]struct{}),
	}
}

// valve emits id with the given rate unless it already exists.
func (l *Layout) valve(id string, rate uint32) {
	if _, ok := l.index[id]; ok {
		return
	}
	l.index[id] = len(l.decls)
	l.decls = append(l.decls, core.Declaration{ID: id, Rate: rate})
}

// tunnel links a and b in both directions; duplicates and self-links are dropped.
// Both valves must already exist.
func (l *Layout) tunnel(a, b string) {
	i, j := l.index[a], l.index[b]
	if i == j {
		return
	}
	if _, dup := l.links[[2]int{i, j}]; dup {
		return
	}
	l.links[[2]int{i, j}] = struct{}{}
	l.links[[2]int{j, i}] = struct{}{}
	l.decls[i].Tunnels = append(l.decls[i].Tunnels, b)
	l.decls[j].Tunnels = append(l.decls[j].Tunnels, a)
}

// emit adds n valves named by cfg.idFn with rates from cfg.rateFn and returns
// their identifiers.
func (l *Layout) emit(n int, cfg builderConfig) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		l.valve(ids[i], cfg.rateFn(cfg.rng, i))
	}

	return ids
}

// Build resolves bopts and applies all constructors in order.
//
// Errors: constructor errors wrapped as "Build: %w"; ErrConstructFailed for a
// nil constructor.
func Build(bopts []BuilderOption, cons ...Constructor) ([]core.Declaration, error) {
	cfg := newBuilderConfig(bopts...)
	l := newLayout()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return l.decls, nil
}

// BuildGraph is Build followed by core.NewGraph. An empty start selects the
// first emitted valve.
func BuildGraph(start string, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	decls, err := Build(bopts, cons...)
	if err != nil {
		return nil, err
	}
	if start == "" && len(decls) > 0 {
		start = decls[0].ID
	}

	return core.NewGraph(decls, start, gopts...)
}
