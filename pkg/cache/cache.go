package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/pkg/list"
	"github.com/c360/ringkit/pkg/retry"
)

// Loader loads the resource for a missing key, returning the value and its
// weight. The weight is the entry's cost against the cache budget (bytes,
// pixels, row count - whatever the caller meters). Load failures propagate
// unchanged to the Get caller; transient ones are retried first.
type Loader[K comparable, V any] func(ctx context.Context, key K) (value V, weight int64, err error)

// EvictCallback is called with entries leaving the cache - evictions under
// weight pressure, Remove, and Clear. It is always invoked outside the cache
// lock and is the place to release external resources tied to the value.
type EvictCallback[K comparable, V any] func(key K, value V)

// cacheEntry carries a cached value, its weight, and the offset of its node
// in the recency list.
type cacheEntry[V any] struct {
	value   V
	weight  int64
	recency int
}

// LoadingCache is a weight-bounded, least-recently-used loading cache.
// Misses are loaded through the caller's Loader; hits bump recency in O(1)
// via the entry's stable node offset in the recency list. When the total
// weight exceeds the budget, entries are evicted from the cold end until
// the total drops to half the budget.
//
// Unlike the single-threaded containers it is built on, the cache is
// mutex-protected and safe for concurrent use.
type LoadingCache[K comparable, V any] struct {
	mu          sync.Mutex
	maxWeight   int64
	totalWeight int64
	loader      Loader[K, V]
	entries     map[K]*cacheEntry[V]
	recency     *list.List[K] // head = most recently used
	stats       *Statistics   // ALWAYS initialized for observability
	metrics     *cacheMetrics // Optional Prometheus metrics
	evictFn     EvictCallback[K, V]
	retryCfg    retry.Config
	logger      *slog.Logger
}

// New creates a loading cache with the given weight budget and loader.
// Returns a classified error for a nil loader, a non-positive budget, or a
// failed metrics registration.
func New[K comparable, V any](maxWeight int64, loader Loader[K, V], options ...Option[K, V]) (*LoadingCache[K, V], error) {
	if loader == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "cache", "New", "loader is required")
	}
	if maxWeight <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig, "cache", "New",
			fmt.Sprintf("max weight must be positive, got %d", maxWeight))
	}

	opts := applyOptions(options...)

	// Stats are ALWAYS initialized - observability is not optional
	stats := NewStatistics()

	var metrics *cacheMetrics
	// Optionally expose stats as Prometheus metrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newCacheMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.WrapTransient(err, "cache", "New", "metrics registration")
		}
	}

	return &LoadingCache[K, V]{
		maxWeight: maxWeight,
		loader:    loader,
		entries:   make(map[K]*cacheEntry[V]),
		recency:   list.New[K](16),
		stats:     stats,   // ALWAYS present
		metrics:   metrics, // Optional
		evictFn:   opts.evictCallback,
		retryCfg:  opts.retryCfg,
		logger:    opts.logger,
	}, nil
}

// NewFromConfig creates a loading cache from a validated Config. Functional
// options still apply on top; WithRetry overrides the config's retry fields.
func NewFromConfig[K comparable, V any](cfg Config, loader Loader[K, V], options ...Option[K, V]) (*LoadingCache[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := []Option[K, V]{WithRetry[K, V](cfg.RetryConfig())}
	return New(cfg.MaxWeight, loader, append(base, options...)...)
}

// Get returns the value for key, loading it on a miss. A hit bumps the
// entry's recency; a miss invokes the loader (retrying transient failures),
// inserts the loaded entry as most recent, and evicts cold entries while
// the total weight exceeds the budget.
//
// Concurrent misses on the same key may each invoke the loader; one value
// wins and is returned to every caller, while losing values are handed to
// the eviction callback for release.
func (c *LoadingCache[K, V]) Get(ctx context.Context, key K) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.recency.MoveHead(e.recency)
		v := e.value
		c.mu.Unlock()

		// ALWAYS track in stats
		c.stats.Hit()
		// ALSO track in metrics if enabled
		if c.metrics != nil {
			c.metrics.recordHit()
		}
		return v, nil
	}
	c.mu.Unlock()

	// ALWAYS track in stats
	c.stats.Miss()
	// ALSO track in metrics if enabled
	if c.metrics != nil {
		c.metrics.recordMiss()
	}

	value, weight, err := c.load(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}

	// insert returns the resident value: ours, or the winner's if another
	// goroutine raced us here. Never return a value that is also in the
	// evicted slice - the callback may free it.
	resident, evicted := c.insert(key, value, weight)

	// Release losers and evictees outside the lock.
	if c.evictFn != nil {
		for _, ev := range evicted {
			c.evictFn(ev.key, ev.value)
		}
	}

	return resident, nil
}

// load runs the loader with retry on transient failures only.
func (c *LoadingCache[K, V]) load(ctx context.Context, key K) (V, int64, error) {
	type loaded struct {
		value  V
		weight int64
	}

	res, err := retry.DoWithResult(ctx, c.retryCfg, func() (loaded, error) {
		v, w, err := c.loader(ctx, key)
		if err != nil {
			if !errors.IsTransient(err) {
				// Invalid and fatal loads fail immediately.
				return loaded{}, retry.NonRetryable(err)
			}
			return loaded{}, err
		}
		return loaded{value: v, weight: w}, nil
	})
	if err != nil {
		// ALWAYS track in stats
		c.stats.LoadFailure()
		// ALSO track in metrics if enabled
		if c.metrics != nil {
			c.metrics.recordLoadFailure()
		}
		c.logger.Warn("resource load failed", "key", key, "error", err)

		var zero V
		return zero, 0, errors.Wrap(err, "LoadingCache", "Get", "resource load")
	}

	// ALWAYS track in stats
	c.stats.Load()
	// ALSO track in metrics if enabled
	if c.metrics != nil {
		c.metrics.recordLoad()
	}

	return res.value, res.weight, nil
}

// evictedEntry pairs a key and value pending release outside the lock.
type evictedEntry[K comparable, V any] struct {
	key   K
	value V
}

// insert stores a freshly loaded entry as most recent and shrinks the cache
// under weight pressure. It returns the value now resident for key alongside
// the entries to hand to the eviction callback: when another goroutine won
// the load race, the resident value is the winner's and ours joins the
// evicted slice for release.
func (c *LoadingCache[K, V]) insert(key K, value V, weight int64) (V, []evictedEntry[K, V]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		// Lost a load race: the caller gets the resident value, ours is
		// released through the callback.
		c.recency.MoveHead(e.recency)
		return e.value, []evictedEntry[K, V]{{key: key, value: value}}
	}

	off := c.recency.PushHead(key)
	c.entries[key] = &cacheEntry[V]{value: value, weight: weight, recency: off}
	c.totalWeight += weight

	evicted := c.shrink(nil)

	c.updateSizeLocked()
	return value, evicted
}

// shrink evicts from the cold end while the total weight exceeds half the
// budget, always keeping the most recent entry resident. Must be called
// with the lock held.
func (c *LoadingCache[K, V]) shrink(evicted []evictedEntry[K, V]) []evictedEntry[K, V] {
	for c.totalWeight > c.maxWeight/2 && c.recency.Len() > 1 {
		coldKey := *c.recency.Back()
		e := c.entries[coldKey]

		c.recency.PopBack()
		delete(c.entries, coldKey)
		c.totalWeight -= e.weight

		// ALWAYS track in stats
		c.stats.Eviction()
		// ALSO track in metrics if enabled
		if c.metrics != nil {
			c.metrics.recordEviction()
		}
		c.logger.Debug("evicted cold entry", "key", coldKey, "weight", e.weight)

		evicted = append(evicted, evictedEntry[K, V]{key: coldKey, value: e.value})
	}
	return evicted
}

// Peek returns the value for key without bumping recency or counting a
// hit or miss. It never invokes the loader.
func (c *LoadingCache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is resident, without bumping recency.
func (c *LoadingCache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Remove evicts key if resident, invoking the eviction callback. Returns
// true if the key was resident.
func (c *LoadingCache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return false
	}

	c.recency.Erase(e.recency)
	delete(c.entries, key)
	c.totalWeight -= e.weight

	// ALWAYS track in stats
	c.stats.Eviction()
	// ALSO track in metrics if enabled
	if c.metrics != nil {
		c.metrics.recordEviction()
	}
	c.updateSizeLocked()
	c.mu.Unlock()

	// Call eviction callback outside lock to prevent deadlock
	if c.evictFn != nil {
		c.evictFn(key, e.value)
	}
	return true
}

// Clear evicts every entry, invoking the eviction callback for each.
func (c *LoadingCache[K, V]) Clear() {
	var evicted []evictedEntry[K, V]

	c.mu.Lock()
	if c.evictFn != nil {
		evicted = make([]evictedEntry[K, V], 0, len(c.entries))
		for key, e := range c.entries {
			evicted = append(evicted, evictedEntry[K, V]{key: key, value: e.value})
		}
	}

	c.entries = make(map[K]*cacheEntry[V])
	c.recency.Clear()
	c.totalWeight = 0
	c.updateSizeLocked()
	c.mu.Unlock()

	// Call eviction callbacks outside lock to prevent deadlock
	for _, ev := range evicted {
		c.evictFn(ev.key, ev.value)
	}
}

// Len returns the number of resident entries.
func (c *LoadingCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Weight returns the total weight of resident entries.
func (c *LoadingCache[K, V]) Weight() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalWeight
}

// MaxWeight returns the weight budget. Immutable, so no lock needed.
func (c *LoadingCache[K, V]) MaxWeight() int64 {
	return c.maxWeight
}

// Keys returns the resident keys in recency order, most recently used first.
func (c *LoadingCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.entries))
	for p := c.recency.Begin(); p != c.recency.End(); p = c.recency.Next(p) {
		keys = append(keys, *c.recency.At(p))
	}
	return keys
}

// Stats returns cache statistics (always available for observability).
func (c *LoadingCache[K, V]) Stats() *Statistics {
	return c.stats
}

// updateSizeLocked pushes current size and weight into stats and metrics.
// Must be called with the lock held.
func (c *LoadingCache[K, V]) updateSizeLocked() {
	c.stats.UpdateSize(int64(len(c.entries)))
	c.stats.UpdateWeight(c.totalWeight)
	if c.metrics != nil {
		c.metrics.updateSize(len(c.entries), c.totalWeight, c.maxWeight)
	}
}
