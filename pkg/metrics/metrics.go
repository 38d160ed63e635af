// Package metrics instruments the batch run. A batch job has no server for
// Prometheus to scrape, so counters are pushed to a Pushgateway at the end
// of a run when one is configured.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	spotsLoaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:      "spots_loaded_total",
			Subsystem: "surfcast",
			Help:      "Spots whose joined forecast reached the destination table.",
		},
	)
	spotsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:      "spots_skipped_total",
			Subsystem: "surfcast",
			Help:      "Spots skipped because a fetch or normalize step failed.",
		},
	)
	rowsLoaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:      "rows_loaded_total",
			Subsystem: "surfcast",
			Help:      "Joined rows appended to the destination table.",
		},
	)
	fetchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "fetch_latency_seconds",
			Subsystem: "surfcast",
			Help:      "Forecast fetch latencies by kind.",
			Buckets:   []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8, 25.6},
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(
		spotsLoaded,
		spotsSkipped,
		rowsLoaded,
		fetchLatency,
	)
}

// SpotLoaded records one successfully loaded spot and its row count.
func SpotLoaded(rows int) {
	spotsLoaded.Inc()
	rowsLoaded.Add(float64(rows))
}

// SpotSkipped records one spot abandoned for the run.
func SpotSkipped() {
	spotsSkipped.Inc()
}

// ObserveFetch records the latency of one forecast fetch.
func ObserveFetch(kind string, start time.Time) {
	fetchLatency.With(prometheus.Labels{"kind": kind}).
		Observe(time.Since(start).Seconds())
}

// Push sends everything registered so far to a Pushgateway under the
// surfcast job. Call once at the end of a run.
func Push(gatewayURL string) error {
	return push.New(gatewayURL, "surfcast").
		Gatherer(prometheus.DefaultGatherer).
		Push()
}
