package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Unreachable marks a pair of valves with no connecting path.
const Unreachable uint32 = math.MaxUint32

// Distances is an immutable n×n hop-count table.
type Distances struct {
	n    int
	data []uint32 // row-major, len n*n
}

// newDistances allocates an n×n table with 0 on the diagonal and
// Unreachable elsewhere.
func newDistances(n int) *Distances {
	d := &Distances{n: n, data: make([]uint32, n*n)}
	for i := range d.data {
		d.data[i] = Unreachable
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 0
	}

	return d
}

// N returns the order of the table.
func (d *Distances) N() int { return d.n }

// At returns the hop count from i to j.
func (d *Distances) At(i, j int) (uint32, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("At(%d,%d) n=%d: %w", i, j, d.n, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Row returns row i without copying. It is the hot-path accessor of the
// search engines; callers must not modify it and must pass a valid i.
func (d *Distances) Row(i int) []uint32 {
	return d.data[i*d.n : (i+1)*d.n : (i+1)*d.n]
}

// Reachable reports whether j can be reached from i. Out-of-range indices
// are unreachable.
func (d *Distances) Reachable(i, j int) bool {
	v, err := d.At(i, j)

	return err == nil && v != Unreachable
}

// Symmetric reports whether dist[i][j] == dist[j][i] for all pairs.
func (d *Distances) Symmetric() bool {
	for i := 0; i < d.n; i++ {
		for j := i + 1; j < d.n; j++ {
			if d.data[i*d.n+j] != d.data[j*d.n+i] {
				return false
			}
		}
	}

	return true
}

// Equal reports whether two tables have the same order and entries.
func (d *Distances) Equal(o *Distances) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.n != o.n {
		return false
	}
	for i := range d.data {
		if d.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Rows copies the table into a [][]uint32.
func (d *Distances) Rows() [][]uint32 {
	out := make([][]uint32, d.n)
	for i := range out {
		out[i] = append([]uint32(nil), d.Row(i)...)
	}

	return out
}

// String renders the table, one row per line, "-" for Unreachable.
func (d *Distances) String() string {
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		for j, v := range d.Row(i) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v == Unreachable {
				sb.WriteByte('-')
				continue
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
