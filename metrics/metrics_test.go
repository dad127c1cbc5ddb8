package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pressure/metrics"
	"github.com/katalvlaran/pressure/search"
)

func TestRecorder_Observe(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.Observe("single", search.Single, search.Result{
		Value: 1651,
		Stats: search.Stats{States: 120, Hits: 40, Calls: 300, Branches: 1},
	}, 3*time.Millisecond)
	rec.Observe("dual", search.Dual, search.Result{
		Value: 1707,
		Stats: search.Stats{States: 900, Hits: 500, Calls: 2000, Branches: 1},
	}, 20*time.Millisecond)

	const want = `
# HELP pressure_search_value Optimal value found by the last search of a scenario
# TYPE pressure_search_value gauge
pressure_search_value{mode="dual",scenario="dual"} 1707
pressure_search_value{mode="single",scenario="single"} 1651
# HELP pressure_search_calls_total Recursive search calls with time left
# TYPE pressure_search_calls_total counter
pressure_search_calls_total{mode="dual"} 2000
pressure_search_calls_total{mode="single"} 300
`
	require.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(want),
		"pressure_search_value", "pressure_search_calls_total"))

	n, err := testutil.GatherAndCount(rec.Registry())
	require.NoError(t, err)
	// searches, calls, hits, duration: one series per mode; value, states: one per scenario.
	require.Equal(t, 12, n)
}

func TestRecorder_Isolated(t *testing.T) {
	a, b := metrics.NewRecorder(), metrics.NewRecorder()
	a.Observe("s", search.Single, search.Result{Value: 1}, time.Millisecond)

	n, err := testutil.GatherAndCount(b.Registry())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.Observe("single", search.Single, search.Result{Value: 1651}, time.Millisecond)

	path := filepath.Join(t.TempDir(), "pressure.prom")
	require.NoError(t, rec.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `pressure_search_value{mode="single",scenario="single"} 1651`)
	require.Contains(t, string(raw), `pressure_searches_total{mode="single"} 1`)

	err = rec.WriteTextfile(filepath.Join(t.TempDir(), "no", "such", "dir", "x.prom"))
	require.Error(t, err)
}
