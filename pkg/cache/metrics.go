package cache

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/ringkit/metric"
)

// cacheMetrics holds Prometheus metrics for cache operations.
type cacheMetrics struct {
	// Counter metrics - directly incremented without stats duplication
	hits         prometheus.Counter
	misses       prometheus.Counter
	loads        prometheus.Counter
	loadFailures prometheus.Counter
	evictions    prometheus.Counter

	// Gauge metrics - updated on operations
	entries     prometheus.Gauge
	weight      prometheus.Gauge
	utilization prometheus.Gauge
}

// newCacheMetrics creates and registers cache metrics with the provided registry.
func newCacheMetrics(registry *metric.MetricsRegistry, prefix string) (*cacheMetrics, error) {
	m := &cacheMetrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "cache",
			Name:        "hits_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "cache",
			Name:        "misses_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of cache misses",
		}),
		loads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "cache",
			Name:        "loads_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of successful resource loads",
		}),
		loadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "cache",
			Name:        "load_failures_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of resource loads that failed after retries",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "cache",
			Name:        "evictions_total",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Total number of entries evicted",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "cache",
			Name:        "entries",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current number of resident entries",
		}),
		weight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "cache",
			Name:        "weight",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Current total weight of resident entries",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringkit",
			Subsystem:   "cache",
			Name:        "utilization",
			ConstLabels: prometheus.Labels{"component": prefix},
			Help:        "Fraction of the weight budget in use (0.0 to 1.0)",
		}),
	}

	// Register all metrics with the registry
	if err := registry.RegisterCounter(prefix, "cache_hits", m.hits); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_misses", m.misses); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_loads", m.loads); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_load_failures", m.loadFailures); err != nil {
		return nil, err
	}
	if err := registry.RegisterCounter(prefix, "cache_evictions", m.evictions); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "cache_entries", m.entries); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "cache_weight", m.weight); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(prefix, "cache_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordHit increments the hit counter.
func (m *cacheMetrics) recordHit() {
	m.hits.Inc()
}

// recordMiss increments the miss counter.
func (m *cacheMetrics) recordMiss() {
	m.misses.Inc()
}

// recordLoad increments the load counter.
func (m *cacheMetrics) recordLoad() {
	m.loads.Inc()
}

// recordLoadFailure increments the load failure counter.
func (m *cacheMetrics) recordLoadFailure() {
	m.loadFailures.Inc()
}

// recordEviction increments the eviction counter.
func (m *cacheMetrics) recordEviction() {
	m.evictions.Inc()
}

// updateSize sets the entry count, weight, and utilization gauges.
func (m *cacheMetrics) updateSize(entries int, weight, maxWeight int64) {
	m.entries.Set(float64(entries))
	m.weight.Set(float64(weight))
	m.utilization.Set(float64(weight) / float64(maxWeight))
}
