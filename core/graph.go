// File: graph.go
// Role: Graph construction and structural validation.
//
// Determinism:
//   - Dense indices follow declaration order; flow slots follow index order.
//   - Adjacency keeps the declared tunnel order, mirrored tunnels appended.

package core

// NewGraph freezes decls into a Graph rooted at start.
//
// Implementation:
//   - Stage 1: Assign dense indices in declaration order, rejecting empty and
//     duplicate identifiers.
//   - Stage 2: Resolve tunnels to indices, rejecting undeclared targets and
//     (unless WithSelfTunnels) self-tunnels; mirror when WithUndirected.
//   - Stage 3: Assign flow slots to positive-rate valves (≤ MaxFlowValves).
//   - Stage 4: Resolve the start identifier.
//
// Errors: *StructuralError wrapping ErrNoValves, ErrEmptyValveID,
// ErrDuplicateValve, ErrUnknownTunnel, ErrSelfTunnel, ErrTooManyValves or
// ErrStartNotFound.
//
// Complexity: O(V + E) time and space.
func NewGraph(decls []Declaration, start string, opts ...GraphOption) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(decls) == 0 {
		return nil, structural(ErrNoValves, "")
	}

	n := len(decls)
	g := &Graph{
		valves: make([]Valve, n),
		index:  make(map[string]int, n),
		adj:    make([][]int, n),
		rates:  make([]uint32, n),
	}

	// Stage 1: indices.
	var (
		i  int
		d  Declaration
		ok bool
	)
	for i, d = range decls {
		if d.ID == "" {
			return nil, structural(ErrEmptyValveID, "")
		}
		if _, ok = g.index[d.ID]; ok {
			return nil, structural(ErrDuplicateValve, d.ID)
		}
		g.index[d.ID] = i
		g.rates[i] = d.Rate
		g.valves[i] = Valve{ID: d.ID, Rate: d.Rate, Index: i, Slot: -1}
	}

	// Stage 2: adjacency. seen dedups parallel tunnels per source.
	seen := make([]map[int]struct{}, n)
	link := func(from, to int) {
		if seen[from] == nil {
			seen[from] = make(map[int]struct{})
		}
		if _, dup := seen[from][to]; dup {
			return
		}
		seen[from][to] = struct{}{}
		g.adj[from] = append(g.adj[from], to)
		g.valves[from].Tunnels = append(g.valves[from].Tunnels, g.valves[to].ID)
	}
	for i, d = range decls {
		for _, t := range d.Tunnels {
			if t == "" {
				return nil, structural(ErrEmptyValveID, d.ID)
			}
			j, found := g.index[t]
			if !found {
				return nil, structural(ErrUnknownTunnel, t)
			}
			if j == i {
				if !cfg.selfTunnels {
					return nil, structural(ErrSelfTunnel, t)
				}
				continue
			}
			link(i, j)
			if cfg.undirected {
				link(j, i)
			}
		}
	}

	// Stage 3: flow slots.
	for i = 0; i < n; i++ {
		if g.rates[i] == 0 {
			continue
		}
		if len(g.slots) == MaxFlowValves {
			return nil, structural(ErrTooManyValves, g.valves[i].ID)
		}
		g.valves[i].Slot = len(g.slots)
		g.slots = append(g.slots, i)
	}

	// Stage 4: start.
	if g.start, ok = g.index[start]; !ok {
		return nil, structural(ErrStartNotFound, start)
	}

	return g, nil
}
