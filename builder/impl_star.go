package builder

import "fmt"

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor with hub idFn(0) linked to n-1 leaves.
func Star(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewValves)
		}
		ids := l.emit(n, cfg)
		for i := 1; i < n; i++ {
			l.tunnel(ids[0], ids[i])
		}

		return nil
	}
}

// Complete returns a Constructor linking every pair of n valves.
func Complete(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewValves)
		}
		ids := l.emit(n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				l.tunnel(ids[i], ids[j])
			}
		}

		return nil
	}
}
