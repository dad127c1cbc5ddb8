// SPDX-License-Identifier: MIT
// Package: pressure/builder
//
// impl_random_sparse.go - RandomSparse(n, p): a path backbone plus random chords.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewValves); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - The backbone (i-1 — i) keeps every valve reachable from idFn(0).
//
// Determinism:
//   - Chord trials run over unordered pairs {i,j}, i asc then j asc (j > i+1).

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	minRandomSparse    = 2
)

// RandomSparse returns a Constructor sampling chords with probability p over
// a connected path backbone of n valves.
func RandomSparse(n int, p float64) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minRandomSparse {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparse, ErrTooFewValves)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := l.emit(n, cfg)
		for i := 1; i < n; i++ {
			l.tunnel(ids[i-1], ids[i])
		}
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 2; j < n; j++ {
				if p == 1 || cfg.rng.Float64() < p {
					l.tunnel(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
