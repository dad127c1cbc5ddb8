// Package metrics exposes search statistics as Prometheus collectors.
//
// The CLI is a batch job, so instead of serving /metrics it writes the
// registry in the node_exporter textfile format after all scenarios ran.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pressure/search"
)

// Recorder owns a private registry so tests and repeated runs never collide
// with the global default registry.
type Recorder struct {
	reg *prometheus.Registry

	searches *prometheus.CounterVec
	calls    *prometheus.CounterVec
	hits     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	value    *prometheus.GaugeVec
	states   *prometheus.GaugeVec
}

// NewRecorder registers all collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,

		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pressure_searches_total",
			Help: "Total number of completed searches",
		}, []string{"mode"}),

		calls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pressure_search_calls_total",
			Help: "Recursive search calls with time left",
		}, []string{"mode"}),

		hits: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pressure_search_memo_hits_total",
			Help: "Memo lookups that short-circuited a recursion",
		}, []string{"mode"}),

		// Buckets span sub-millisecond single-actor runs to multi-second dual runs.
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pressure_search_duration_seconds",
			Help:    "Wall time of one search",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"mode"}),

		value: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pressure_search_value",
			Help: "Optimal value found by the last search of a scenario",
		}, []string{"scenario", "mode"}),

		states: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pressure_search_states",
			Help: "Memoised states of the last search of a scenario",
		}, []string{"scenario", "mode"}),
	}
}

// Registry returns the registry backing r.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe records one finished search.
func (r *Recorder) Observe(scenario string, mode search.Mode, res search.Result, took time.Duration) {
	m := mode.String()
	r.searches.WithLabelValues(m).Inc()
	r.calls.WithLabelValues(m).Add(float64(res.Stats.Calls))
	r.hits.WithLabelValues(m).Add(float64(res.Stats.Hits))
	r.duration.WithLabelValues(m).Observe(took.Seconds())
	r.value.WithLabelValues(scenario, m).Set(float64(res.Value))
	r.states.WithLabelValues(scenario, m).Set(float64(res.Stats.States))
}

// WriteTextfile atomically writes the registry to path in the text
// exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
