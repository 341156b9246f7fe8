/* prometheus.go
 * Contains the Collector backed by a Prometheus registry, written out as a textfile on exit
 */

// Package prometheus provides a Prometheus-based stats collector. The process is an interactive session rather than
// a long running server, so the registry is written out as a node_exporter textfile instead of being scraped.
package prometheus

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"standings-exporter/api/stats"
)

// Collector implements stats.Collector using Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

var _ stats.Collector = (*Collector)(nil)

// New creates a new Prometheus collector backed by registry.
// If registry is nil, a fresh registry is created.
func New(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return &Collector{
		registry:   registry,
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
}

// Registry returns the registry metrics are registered with.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// IncCounter increments a counter metric.
func (c *Collector) IncCounter(name string, delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	counter, ok := c.counters[name]
	if !ok {
		counter = register(c.registry, prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: name}))
		c.counters[name] = counter
	}
	counter.Add(float64(delta))
}

// SetGauge sets a gauge metric.
func (c *Collector) SetGauge(name string, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	gauge, ok := c.gauges[name]
	if !ok {
		gauge = register(c.registry, prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: name}))
		c.gauges[name] = gauge
	}
	gauge.Set(float64(value))
}

// ObserveHistogram records a value in a histogram.
func (c *Collector) ObserveHistogram(name string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	histogram, ok := c.histograms[name]
	if !ok {
		histogram = register(c.registry, prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    name,
			Help:    name,
			Buckets: prometheus.DefBuckets,
		}))
		c.histograms[name] = histogram
	}
	histogram.Observe(value)
}

// WriteTextfile writes every registered metric to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

// register registers metric, reusing an already registered metric of the same name and type.
func register[T prometheus.Collector](registry prometheus.Registerer, metric T) T {
	if err := registry.Register(metric); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return metric
}
