// SPDX-License-Identifier: MIT
// Package: pressure/builder
//
// impl_grid.go - rows×cols orthogonal grid.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewValves).
//   - Valves are emitted in row-major order; local index r*cols+c feeds idFn and rateFn.
//   - Tunnels: right and bottom neighbour of every cell, in row-major order.
//
// Complexity: O(rows·cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewValves)
		}
		ids := l.emit(rows*cols, cfg)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					l.tunnel(u, ids[r*cols+c+1])
				}
				if r+1 < rows {
					l.tunnel(u, ids[(r+1)*cols+c])
				}
			}
		}

		return nil
	}
}
