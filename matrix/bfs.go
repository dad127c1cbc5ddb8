package matrix

import (
	"fmt"

	"github.com/katalvlaran/pressure/bfs"
	"github.com/katalvlaran/pressure/core"
)

// NewDistancesBFS builds the hop table of g with one BFS per valve.
// The result equals NewDistances(g).
//
// Complexity: Time O(n·(n+m)), Space O(n²).
func NewDistancesBFS(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, fmt.Errorf("NewDistancesBFS: %w", ErrNilGraph)
	}
	d := newDistances(g.Len())
	for i := 0; i < d.n; i++ {
		res, err := bfs.BFS(g, i)
		if err != nil {
			return nil, fmt.Errorf("NewDistancesBFS: source %d: %w", i, err)
		}
		row := d.data[i*d.n : (i+1)*d.n]
		for j, depth := range res.Depth {
			if depth != bfs.Unvisited {
				row[j] = uint32(depth)
			}
		}
	}

	return d, nil
}

// CheckGraph verifies that d is the table for a graph of g's order.
func (d *Distances) CheckGraph(g *core.Graph) error {
	if d == nil {
		return ErrNilMatrix
	}
	if g == nil {
		return ErrNilGraph
	}
	if d.n != g.Len() {
		return fmt.Errorf("table order %d, graph has %d valves: %w", d.n, g.Len(), ErrDimensionMismatch)
	}

	return nil
}
