// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with context) and
// tests match them via errors.Is. No exported function panics on bad input.

package matrix

import "errors"

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a builder.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrOutOfRange indicates that a row or column index is outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a table whose order differs from the
	// graph (or table) it is used with.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Distances was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
