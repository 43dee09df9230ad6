// Package cache provides a weight-bounded, least-recently-used loading
// cache with built-in statistics and optional Prometheus metrics.
//
// # Overview
//
// A LoadingCache sits in front of an expensive resource loader (decoded
// textures, parsed files, remote blobs) and answers Get calls from memory
// when it can. Misses invoke the caller's Loader function, retrying
// transient failures with exponential backoff; loaded entries are inserted
// as most recent. Each entry carries a caller-assigned weight, and the
// cache is bounded by total weight rather than entry count, so a handful
// of heavy resources and thousands of light ones fit the same budget.
//
// Recency order lives in an arena-backed linked list (pkg/list): every
// entry stores the stable offset of its list node, so a cache hit bumps
// recency with one O(1) relink instead of a search.
//
// # Quick Start
//
//	loadTexture := func(ctx context.Context, id uint32) ([]byte, int64, error) {
//		data, err := readTexture(id)
//		return data, int64(len(data)), err
//	}
//
//	c, err := cache.New[uint32, []byte](64<<20, loadTexture,
//		cache.WithEvictionCallback[uint32, []byte](func(id uint32, data []byte) {
//			releaseTexture(id)
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tex, err := c.Get(ctx, 42) // loads on first call, cached afterwards
//
// With metrics and a custom retry policy:
//
//	c, err := cache.New[string, *Model](1<<30, loadModel,
//		cache.WithMetrics[string, *Model](registry, "model_cache"),
//		cache.WithRetry[string, *Model](retry.Quick()),
//	)
//
// # Eviction
//
// When an insert pushes the total weight over the budget, the cache evicts
// from the cold end of the recency list until the total drops to half the
// budget. Shrinking to half rather than just under the budget amortizes
// eviction work across inserts instead of evicting one entry on every
// insert at the boundary. The most recent entry is never evicted by the
// shrink pass, so an entry heavier than the whole budget stays resident
// (alone) until a later insert displaces it.
//
// The eviction callback - the place to release external resources - runs
// for entries leaving via shrink, Remove, and Clear, and is always invoked
// outside the cache lock.
//
// # Load Failures
//
// Loader errors are classified with the errors package: transient failures
// are retried per the configured retry.Config, while invalid and fatal
// failures fail the Get immediately. Either way the original loader error
// remains reachable through errors.Is/As on the returned error, and the
// failure is counted in statistics and logged through the configured
// slog.Logger.
//
// # Observability
//
// Statistics (hits, misses, loads, load failures, evictions, size, weight)
// are always collected and available via Stats(). Prometheus metrics are
// optional, enabled with WithMetrics(), and track the same events under
// the ringkit_cache_* namespace with a per-instance component label.
//
// # Concurrency
//
// The cache is safe for concurrent use. Concurrent misses on the same key
// may each invoke the loader; exactly one loaded value becomes resident,
// every Get returns that resident value, and the rest are handed to the
// eviction callback for release.
package cache
