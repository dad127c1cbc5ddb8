package parse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pressure/builder"
	"github.com/katalvlaran/pressure/core"
	"github.com/katalvlaran/pressure/parse"
)

func TestParse_Example(t *testing.T) {
	decls, err := parse.ParseString(builder.ExampleInput)
	require.NoError(t, err)
	if diff := cmp.Diff(builder.Example(), decls); diff != "" {
		t.Fatalf("parsed layout differs (-want +got):\n%s", diff)
	}

	g, err := parse.Graph(strings.NewReader(builder.ExampleInput), builder.ExampleStart)
	require.NoError(t, err)
	require.Equal(t, 10, g.Len())
	require.Equal(t, uint64(81), g.TotalRate())
}

func TestLine(t *testing.T) {
	cases := []struct {
		in   string
		want core.Declaration
	}{
		{
			"Valve HH has flow rate=22; tunnel leads to valve GG",
			core.Declaration{ID: "HH", Rate: 22, Tunnels: []string{"GG"}},
		},
		{
			"  Valve AA has flow rate=0; tunnels lead to valves DD, II, BB  ",
			core.Declaration{ID: "AA", Tunnels: []string{"DD", "II", "BB"}},
		},
		{
			"Valve x1 has flow rate=4294967295; tunnels lead to valves y2",
			core.Declaration{ID: "x1", Rate: 4294967295, Tunnels: []string{"y2"}},
		},
	}
	for _, tc := range cases {
		got, err := parse.Line(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		want     error
		wantLine int
	}{
		{"missing rate", "Valve AA has flow rate=; tunnel leads to valve BB", parse.ErrSyntax, 1},
		{"negative rate", "Valve AA has flow rate=-3; tunnel leads to valve BB", parse.ErrSyntax, 1},
		{"no tunnels", "Valve AA has flow rate=3; tunnels lead to valves ", parse.ErrSyntax, 1},
		{"rate overflow", "Valve AA has flow rate=4294967296; tunnel leads to valve BB", parse.ErrRate, 1},
		{
			"third line",
			"Valve AA has flow rate=0; tunnel leads to valve BB\n\nValve BB rate=1\n",
			parse.ErrSyntax, 3,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decls, err := parse.ParseString(tc.in)
			require.Nil(t, decls)
			require.ErrorIs(t, err, tc.want)

			var le *parse.LineError
			require.True(t, errors.As(err, &le))
			require.Equal(t, tc.wantLine, le.Line)
		})
	}
}

func TestParse_BlankInput(t *testing.T) {
	decls, err := parse.ParseString("\n  \n")
	require.NoError(t, err)
	require.Empty(t, decls)

	_, err = parse.Graph(strings.NewReader(""), "AA")
	require.ErrorIs(t, err, core.ErrNoValves)
}

func TestGraph_StructuralErrorsPassThrough(t *testing.T) {
	in := "Valve AA has flow rate=0; tunnel leads to valve ZZ\n"
	_, err := parse.Graph(strings.NewReader(in), "AA")
	require.ErrorIs(t, err, core.ErrUnknownTunnel)

	_, err = parse.Graph(strings.NewReader(builder.ExampleInput), "QQ")
	require.ErrorIs(t, err, core.ErrStartNotFound)
}
