package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pressure/builder"
	"github.com/katalvlaran/pressure/config"
	"github.com/katalvlaran/pressure/search"
)

func TestRun_ReferenceScenarios(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), strings.NewReader(builder.ExampleInput), &out, &logs,
		[]string{"-input", "-", "-workers", "2"})
	require.NoError(t, err)
	require.Equal(t, "single: 1651\ndual: 1707\n", out.String())
	require.Contains(t, logs.String(), `msg="graph loaded"`)
	require.Contains(t, logs.String(), "run=")
}

func TestRun_ConfigAndMetrics(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(input, []byte(builder.ExampleInput), 0o600))
	cfgPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
symmetry_reduction: true
log:
  format: json
scenarios:
  - name: short
    actors: 1
    budget: 10
  - name: pair
    actors: 2
    budget: 10
`), 0o600))
	prom := filepath.Join(dir, "pressure.prom")

	var out, logs bytes.Buffer
	err := run(context.Background(), nil, &out, &logs,
		[]string{"-input", input, "-config", cfgPath, "-metrics-file", prom})
	require.NoError(t, err)
	require.Equal(t, "short: 246\npair: 414\n", out.String())
	require.Contains(t, logs.String(), `"msg":"scenario solved"`)

	raw, err := os.ReadFile(prom)
	require.NoError(t, err)
	require.Contains(t, string(raw), `pressure_search_value{mode="dual",scenario="pair"} 414`)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	var out, logs bytes.Buffer

	err := run(ctx, nil, &out, &logs, nil)
	require.ErrorIs(t, err, errUsage)

	err = run(ctx, nil, &out, &logs, []string{"-h"})
	require.True(t, errors.Is(err, flag.ErrHelp))

	err = run(ctx, strings.NewReader(builder.ExampleInput), &out, &logs,
		[]string{"-input", "-", "-log-level", "loud"})
	require.ErrorIs(t, err, config.ErrInvalid)

	err = run(ctx, nil, &out, &logs, []string{"-input", filepath.Join(t.TempDir(), "nope.txt")})
	require.ErrorIs(t, err, os.ErrNotExist)

	err = run(ctx, strings.NewReader("Valve AA has flow rate=1; tunnel leads to valve BB\n"+
		"Valve BB has flow rate=2; tunnel leads to valve AA\n"+
		"Valve CC has flow rate=3; tunnel leads to valve AA\n"), &out, &logs, []string{"-input", "-"})
	require.ErrorIs(t, err, search.ErrDisconnected)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err = run(cancelled, strings.NewReader(builder.ExampleInput), &out, &logs, []string{"-input", "-"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("warn", "json", &buf)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
}
