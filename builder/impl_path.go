package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for a chain 0 — 1 — … — n-1.
func Path(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewValves)
		}
		ids := l.emit(n, cfg)
		for i := 1; i < n; i++ {
			l.tunnel(ids[i-1], ids[i])
		}

		return nil
	}
}

// Cycle returns a Constructor for a ring of n valves.
func Cycle(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewValves)
		}
		ids := l.emit(n, cfg)
		for i := 0; i < n; i++ {
			l.tunnel(ids[i], ids[(i+1)%n])
		}

		return nil
	}
}
