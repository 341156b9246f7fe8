/* collector.go
 * Contains the metrics Collector interface and the metric names recorded by the api
 */

// Package stats provides a unified interface for collecting metrics about fetches and exports.
package stats

// Metric names used throughout the api.
const (
	MetricFetches         = "standings_fetches_total"
	MetricFetchFailures   = "standings_fetch_failures_total"
	MetricPlayersAppended = "standings_players_appended_total"
	MetricExports         = "standings_exports_total"
	MetricStorePlayers    = "standings_store_players"
	MetricFetchDuration   = "standings_fetch_duration_seconds"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
