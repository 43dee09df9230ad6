package cache

import (
	"log/slog"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/metric"
	"github.com/c360/ringkit/pkg/retry"
)

// Option configures cache behavior using the functional options pattern.
// This provides a clean, extensible API for configuring caches.
type Option[K comparable, V any] func(*cacheOptions[K, V])

// cacheOptions holds internal configuration for cache instances.
// Stats are ALWAYS collected - they are not optional.
// Metrics are optional and exposed via WithMetrics().
type cacheOptions[K comparable, V any] struct {
	// metricsReg is optional - if provided, cache stats are also exposed as Prometheus metrics
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is used as the component label for Prometheus metrics
	metricsPrefix string

	// evictCallback is called when entries leave the cache
	evictCallback EvictCallback[K, V]

	// retryCfg controls backoff for transient loader failures
	retryCfg retry.Config

	// logger receives load failure and eviction diagnostics
	logger *slog.Logger
}

// WithMetrics enables Prometheus metrics export for cache statistics.
// If registry is nil, this option is ignored.
func WithMetrics[K comparable, V any](registry *metric.MetricsRegistry, prefix string) Option[K, V] {
	return func(opts *cacheOptions[K, V]) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithEvictionCallback sets a callback function that is called when entries
// are evicted. The callback receives the key and value of the evicted entry.
func WithEvictionCallback[K comparable, V any](callback EvictCallback[K, V]) Option[K, V] {
	return func(opts *cacheOptions[K, V]) {
		opts.evictCallback = callback
	}
}

// WithRetry sets the backoff configuration used when the loader fails with
// a transient error.
func WithRetry[K comparable, V any](cfg retry.Config) Option[K, V] {
	return func(opts *cacheOptions[K, V]) {
		opts.retryCfg = cfg
	}
}

// WithLogger sets the logger for load failure and eviction diagnostics.
// Defaults to slog.Default().
func WithLogger[K comparable, V any](logger *slog.Logger) Option[K, V] {
	return func(opts *cacheOptions[K, V]) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// applyOptions applies functional options to create final cache configuration.
// This is an internal helper used by cache constructors.
func applyOptions[K comparable, V any](options ...Option[K, V]) *cacheOptions[K, V] {
	opts := &cacheOptions[K, V]{
		// Default values
		retryCfg: errors.DefaultRetryConfig().ToRetryConfig(),
		logger:   slog.Default(),
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
