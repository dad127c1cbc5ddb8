package core

// Len returns the number of valves.
func (g *Graph) Len() int { return len(g.valves) }

// Start returns the dense index of the start valve.
func (g *Graph) Start() int { return g.start }

// StartID returns the identifier of the start valve.
func (g *Graph) StartID() string { return g.valves[g.start].ID }

// Index returns the dense index of id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// MustIndex is Index for identifiers known to exist; it panics otherwise.
// Intended for tests and examples.
func (g *Graph) MustIndex(id string) int {
	i, ok := g.index[id]
	if !ok {
		panic(structural(ErrValveNotFound, id))
	}

	return i
}

// InRange reports whether i is a valid dense index.
func (g *Graph) InRange(i int) bool { return i >= 0 && i < len(g.valves) }

// ID returns the identifier at dense index i. i must be in range.
func (g *Graph) ID(i int) string { return g.valves[i].ID }

// Rate returns the flow rate at dense index i. i must be in range.
func (g *Graph) Rate(i int) uint32 { return g.rates[i] }

// Neighbors returns the adjacency of dense index i.
// The returned slice is shared; callers must not modify it.
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// Valve returns a copy of the valve named id.
func (g *Graph) Valve(id string) (Valve, error) {
	i, ok := g.index[id]
	if !ok {
		return Valve{}, structural(ErrValveNotFound, id)
	}
	v := g.valves[i]
	v.Tunnels = append([]string(nil), v.Tunnels...)

	return v, nil
}

// Valves returns copies of all valves in index order.
func (g *Graph) Valves() []Valve {
	out := make([]Valve, len(g.valves))
	for i, v := range g.valves {
		v.Tunnels = append([]string(nil), v.Tunnels...)
		out[i] = v
	}

	return out
}

// FlowCount returns the number of positive-rate valves.
func (g *Graph) FlowCount() int { return len(g.slots) }

// FlowIndices returns the dense indices of positive-rate valves ordered by
// flow slot. The returned slice is shared; callers must not modify it.
func (g *Graph) FlowIndices() []int { return g.slots }

// FlowSlot returns the flow slot of dense index i, or -1 for a zero-rate valve.
func (g *Graph) FlowSlot(i int) int { return g.valves[i].Slot }

// TotalRate sums all flow rates. Useful as an upper bound per time unit.
func (g *Graph) TotalRate() uint64 {
	var sum uint64
	for _, r := range g.rates {
		sum += uint64(r)
	}

	return sum
}

// EdgeCount returns the number of directed adjacency entries.
func (g *Graph) EdgeCount() int {
	m := 0
	for _, nb := range g.adj {
		m += len(nb)
	}

	return m
}

// Declarations rebuilds a declaration list equivalent to the one the graph
// was built from (mirrored tunnels included). NewGraph over the result
// reproduces the same indices.
func (g *Graph) Declarations() []Declaration {
	out := make([]Declaration, len(g.valves))
	for i, v := range g.valves {
		out[i] = Declaration{
			ID:      v.ID,
			Rate:    v.Rate,
			Tunnels: append([]string(nil), v.Tunnels...),
		}
	}

	return out
}
