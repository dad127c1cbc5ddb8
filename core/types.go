// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Valve, Declaration, Graph, GraphOption and the structural error set.

package core

import (
	"errors"
	"fmt"
)

// MaxFlowValves is the largest number of positive-rate valves a Graph can
// hold. Activation masks are 64-bit words with one bit per flow slot.
const MaxFlowValves = 64

// Sentinel errors for graph construction.
var (
	// ErrNoValves indicates an empty declaration list.
	ErrNoValves = errors.New("core: no valves declared")

	// ErrEmptyValveID indicates a declaration or tunnel with an empty identifier.
	ErrEmptyValveID = errors.New("core: valve ID is empty")

	// ErrDuplicateValve indicates that an identifier was declared more than once.
	ErrDuplicateValve = errors.New("core: duplicate valve")

	// ErrUnknownTunnel indicates a tunnel that leads to an undeclared valve.
	ErrUnknownTunnel = errors.New("core: tunnel leads to undeclared valve")

	// ErrSelfTunnel indicates a valve listing itself as a neighbour.
	ErrSelfTunnel = errors.New("core: self-tunnel not allowed")

	// ErrStartNotFound indicates that the start identifier is not declared.
	ErrStartNotFound = errors.New("core: start valve not found")

	// ErrTooManyValves indicates more positive-rate valves than MaxFlowValves.
	ErrTooManyValves = errors.New("core: too many positive-rate valves")

	// ErrValveNotFound is returned by lookups of an unknown identifier.
	ErrValveNotFound = errors.New("core: valve not found")
)

// StructuralError reports a malformed declaration list. ID names the
// offending valve (or tunnel target); Err is one of the package sentinels.
type StructuralError struct {
	ID  string
	Err error
}

// Error implements error.
func (e *StructuralError) Error() string {
	if e.ID == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%v: %q", e.Err, e.ID)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *StructuralError) Unwrap() error { return e.Err }

// structural wraps err with the offending identifier.
func structural(err error, id string) error {
	return &StructuralError{ID: id, Err: err}
}

// Declaration is one valve as handed over by an input collaborator.
type Declaration struct {
	// ID uniquely identifies the valve.
	ID string

	// Rate is the value released per remaining time unit once opened.
	Rate uint32

	// Tunnels lists the identifiers of adjacent valves.
	Tunnels []string
}

// Valve is a declared node frozen inside a Graph.
type Valve struct {
	// ID is the unique identifier of the valve.
	ID string

	// Rate is the non-negative flow rate.
	Rate uint32

	// Index is the dense index in [0, Graph.Len()).
	Index int

	// Slot is the flow slot in [0, Graph.FlowCount()), or -1 when Rate == 0.
	Slot int

	// Tunnels lists adjacent identifiers as declared (mirrored ones appended
	// when the graph is undirected).
	Tunnels []string
}

// GraphOption configures graph construction.
type GraphOption func(*graphConfig)

type graphConfig struct {
	undirected  bool
	selfTunnels bool
}

// WithUndirected mirrors every tunnel: a → b implies b → a.
func WithUndirected() GraphOption {
	return func(c *graphConfig) { c.undirected = true }
}

// WithSelfTunnels accepts tunnels from a valve to itself. They carry no
// adjacency (the distance to self is always zero).
func WithSelfTunnels() GraphOption {
	return func(c *graphConfig) { c.selfTunnels = true }
}

// Graph is the immutable valve graph.
//
// valves, adj, rates are indexed by dense index; slots maps a flow slot back
// to its dense index.
type Graph struct {
	valves []Valve
	index  map[string]int
	adj    [][]int
	rates  []uint32
	slots  []int
	start  int
}
