package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. All validation happens before the recursion starts; the
// recursion itself cannot fail.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNilDistances indicates a nil *matrix.Distances.
	ErrNilDistances = errors.New("search: distance table is nil")

	// ErrStartOutOfRange indicates a start index outside [0, g.Len()).
	ErrStartOutOfRange = errors.New("search: start index out of range")

	// ErrDisconnected indicates a valve that cannot be reached from the start.
	ErrDisconnected = errors.New("search: valve unreachable from start")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownMode indicates an unsupported Mode.
	ErrUnknownMode = errors.New("search: unknown mode")
)

// Mask records activated valves, one bit per flow slot (see core.Graph.FlowSlot).
type Mask uint64

// Has reports whether slot is set.
func (m Mask) Has(slot int) bool { return m&(1<<uint(slot)) != 0 }

// With returns m with slot set.
func (m Mask) With(slot int) Mask { return m | 1<<uint(slot) }

// Mode selects the number of actors.
type Mode int

const (
	// Single is one actor.
	Single Mode = 1
	// Dual is two actors sharing one activation mask.
	Dual Mode = 2
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Dual:
		return "dual"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Actors returns the number of actors of m.
func (m Mode) Actors() int { return int(m) }

// ParseMode accepts "single"/"solo"/"1" and "dual"/"pair"/"2".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "solo", "1":
		return Single, nil
	case "dual", "pair", "2":
		return Dual, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// ModeForActors maps an actor count to a Mode.
func ModeForActors(n int) (Mode, error) {
	switch n {
	case 1:
		return Single, nil
	case 2:
		return Dual, nil
	default:
		return 0, fmt.Errorf("%w: %d actors", ErrUnknownMode, n)
	}
}

// Stats describes the work done by one computation.
type Stats struct {
	// States is the number of memoised states (summed over fan-out branches).
	States int

	// Hits counts memo lookups that short-circuited a recursion.
	Hits uint64

	// Calls counts recursive invocations with time left.
	Calls uint64

	// Branches is the number of independent fan-out branches searched;
	// 1 for a sequential run.
	Branches int
}

func (s *Stats) add(o Stats) {
	s.States += o.States
	s.Hits += o.Hits
	s.Calls += o.Calls
	s.Branches += o.Branches
}

// Result is the outcome of a search.
type Result struct {
	// Value is the maximum total value releasable within the budget.
	Value uint32

	// Stats describes the search effort.
	Stats Stats
}
