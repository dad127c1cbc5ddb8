package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pressure/builder"
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/matrix"
)

var exampleRows = [][]uint32{
	{0, 1, 2, 1, 2, 3, 4, 5, 1, 2},
	{1, 0, 1, 2, 3, 4, 5, 6, 2, 3},
	{2, 1, 0, 1, 2, 3, 4, 5, 3, 4},
	{1, 2, 1, 0, 1, 2, 3, 4, 2, 3},
	{2, 3, 2, 1, 0, 1, 2, 3, 3, 4},
	{3, 4, 3, 2, 1, 0, 1, 2, 4, 5},
	{4, 5, 4, 3, 2, 1, 0, 1, 5, 6},
	{5, 6, 5, 4, 3, 2, 1, 0, 6, 7},
	{1, 2, 3, 2, 3, 4, 5, 6, 0, 1},
	{2, 3, 4, 3, 4, 5, 6, 7, 1, 0},
}

func TestNewDistances_Example(t *testing.T) {
	g, err := builder.ExampleGraph()
	require.NoError(t, err)

	d, err := matrix.NewDistances(g)
	require.NoError(t, err)
	require.Equal(t, 10, d.N())
	require.Equal(t, exampleRows, d.Rows())
	require.True(t, d.Symmetric())

	v, err := d.At(g.MustIndex("AA"), g.MustIndex("HH"))
	require.NoError(t, err)
	require.Equal(t, uint32(5), v)
	require.NoError(t, d.CheckGraph(g))
}

// Both builders agree on every layout shape, directed or not.
func TestNewDistances_MatchesBFS(t *testing.T) {
	layouts := map[string]builder.Constructor{
		"grid":   builder.Grid(5, 6),
		"cycle":  builder.Cycle(9),
		"star":   builder.Star(7),
		"sparse": builder.RandomSparse(30, 0.08),
	}
	for name, cons := range layouts {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph("", nil, []builder.BuilderOption{builder.WithSeed(3)}, cons)
			require.NoError(t, err)

			fw, err := matrix.NewDistances(g)
			require.NoError(t, err)
			bf, err := matrix.NewDistancesBFS(g)
			require.NoError(t, err)
			require.True(t, fw.Equal(bf), "FW:\n%sBFS:\n%s", fw, bf)
		})
	}
}

// gonum's Floyd–Warshall over the same tunnels serves as an independent oracle.
func TestNewDistances_AgreesWithGonum(t *testing.T) {
	g, err := builder.BuildGraph("", nil,
		[]builder.BuilderOption{builder.WithSeed(11)},
		builder.RandomSparse(25, 0.1))
	require.NoError(t, err)

	dg := simple.NewDirectedGraph()
	for i := 0; i < g.Len(); i++ {
		dg.AddNode(simple.Node(i))
	}
	for i := 0; i < g.Len(); i++ {
		for _, j := range g.Neighbors(i) {
			dg.SetEdge(dg.NewEdge(simple.Node(i), simple.Node(j)))
		}
	}
	all, ok := path.FloydWarshall(dg)
	require.True(t, ok)

	d, err := matrix.NewDistances(g)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		for j := 0; j < g.Len(); j++ {
			want := all.Weight(int64(i), int64(j))
			got, err := d.At(i, j)
			require.NoError(t, err)
			if math.IsInf(want, 1) {
				require.Equal(t, matrix.Unreachable, got, "(%d,%d)", i, j)
				continue
			}
			require.Equal(t, uint32(want), got, "(%d,%d)", i, j)
		}
	}
}

func TestNewDistances_Properties(t *testing.T) {
	g, err := builder.BuildGraph("", nil,
		[]builder.BuilderOption{builder.WithSeed(5)},
		builder.RandomSparse(20, 0.15))
	require.NoError(t, err)
	d, err := matrix.NewDistances(g)
	require.NoError(t, err)

	n := d.N()
	for i := 0; i < n; i++ {
		row := d.Row(i)
		require.Zero(t, row[i])
		for _, j := range g.Neighbors(i) {
			require.Equal(t, uint32(1), row[j])
		}
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				ij, jk := row[j], d.Row(j)[k]
				if ij == matrix.Unreachable || jk == matrix.Unreachable {
					continue
				}
				require.LessOrEqual(t, row[k], ij+jk, "triangle %d→%d→%d", i, j, k)
			}
		}
	}
}

func TestNewDistances_OneWay(t *testing.T) {
	g, err := core.NewGraph([]core.Declaration{
		{ID: "A", Tunnels: []string{"B"}},
		{ID: "B", Rate: 1, Tunnels: []string{"C"}},
		{ID: "C", Rate: 2},
		{ID: "D", Rate: 3},
	}, "A")
	require.NoError(t, err)

	for _, build := range []func(*core.Graph) (*matrix.Distances, error){
		matrix.NewDistances, matrix.NewDistancesBFS,
	} {
		d, err := build(g)
		require.NoError(t, err)
		require.False(t, d.Symmetric())
		require.True(t, d.Reachable(0, 2))
		require.False(t, d.Reachable(2, 0))
		require.False(t, d.Reachable(0, 3))
		require.False(t, d.Reachable(0, 99))
		require.Equal(t, "0 1 2 -\n- 0 1 -\n- - 0 -\n- - - 0\n", d.String())
	}
}

func TestDistances_Errors(t *testing.T) {
	_, err := matrix.NewDistances(nil)
	require.ErrorIs(t, err, matrix.ErrNilGraph)
	_, err = matrix.NewDistancesBFS(nil)
	require.ErrorIs(t, err, matrix.ErrNilGraph)

	g, err := builder.ExampleGraph()
	require.NoError(t, err)
	d, err := matrix.NewDistances(g)
	require.NoError(t, err)

	_, err = d.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = d.At(0, 10)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilD *matrix.Distances
	_, err = nilD.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, nilD.CheckGraph(g), matrix.ErrNilMatrix)
	require.ErrorIs(t, d.CheckGraph(nil), matrix.ErrNilGraph)
	require.True(t, nilD.Equal(nil))
	require.False(t, d.Equal(nil))

	small, err := builder.BuildGraph("", nil, nil, builder.Path(3))
	require.NoError(t, err)
	require.ErrorIs(t, d.CheckGraph(small), matrix.ErrDimensionMismatch)

	other, err := matrix.NewDistances(small)
	require.NoError(t, err)
	require.False(t, d.Equal(other))
}
