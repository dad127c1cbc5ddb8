// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) over unit-length tunnels with a
//     deterministic loop order.
//
// Contract:
//   - Unreachable means "no path"; the diagonal is 0 before relaxation.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/pressure/core"
)

// NewDistances builds the hop table of g with Floyd–Warshall.
//
// Implementation:
//   - Stage 1: 0 on the diagonal, 1 per tunnel, Unreachable elsewhere.
//   - Stage 2: relax dist[i][j] = min(dist[i][j], dist[i][k] + dist[k][j])
//     for every intermediate k, skipping Unreachable legs.
//
// Complexity: Time O(n³), Space O(n²).
func NewDistances(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, fmt.Errorf("NewDistances: %w", ErrNilGraph)
	}
	d := newDistances(g.Len())
	for i := 0; i < d.n; i++ {
		for _, j := range g.Neighbors(i) {
			d.data[i*d.n+j] = 1
		}
	}
	floydWarshallInPlace(d)

	return d, nil
}

// floydWarshallInPlace runs the APSP closure on d.
//
// Loop order is fixed (k → i → j). No allocations inside the hot loops.
func floydWarshallInPlace(d *Distances) {
	n := d.n

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj       uint32
		cand         uint32
	)

	data := d.data

	for k = 0; k < n; k++ {
		baseK = k * n

		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Unreachable { // no path via k can improve i→j
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Unreachable {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}
