package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks cache performance metrics.
type Statistics struct {
	// Atomic counters for thread-safe updates
	hits         int64
	misses       int64
	loads        int64
	loadFailures int64
	evictions    int64

	// Protected by mutex
	mu            sync.RWMutex
	startTime     time.Time
	currentSize   int64
	peakSize      int64
	currentWeight int64
	peakWeight    int64 // Heaviest the cache has been
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Hit records a cache hit.
func (s *Statistics) Hit() {
	atomic.AddInt64(&s.hits, 1)
}

// Miss records a cache miss.
func (s *Statistics) Miss() {
	atomic.AddInt64(&s.misses, 1)
}

// Load records a successful resource load.
func (s *Statistics) Load() {
	atomic.AddInt64(&s.loads, 1)
}

// LoadFailure records a resource load that failed after retries.
func (s *Statistics) LoadFailure() {
	atomic.AddInt64(&s.loadFailures, 1)
}

// Eviction records a cache eviction.
func (s *Statistics) Eviction() {
	atomic.AddInt64(&s.evictions, 1)
}

// UpdateSize updates the current entry count.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.peakSize {
		s.peakSize = size
	}
	s.mu.Unlock()
}

// UpdateWeight updates the current total weight.
func (s *Statistics) UpdateWeight(weight int64) {
	s.mu.Lock()
	s.currentWeight = weight
	if weight > s.peakWeight {
		s.peakWeight = weight
	}
	s.mu.Unlock()
}

// Hits returns the total number of cache hits.
func (s *Statistics) Hits() int64 {
	return atomic.LoadInt64(&s.hits)
}

// Misses returns the total number of cache misses.
func (s *Statistics) Misses() int64 {
	return atomic.LoadInt64(&s.misses)
}

// Loads returns the total number of successful loads.
func (s *Statistics) Loads() int64 {
	return atomic.LoadInt64(&s.loads)
}

// LoadFailures returns the total number of failed loads.
func (s *Statistics) LoadFailures() int64 {
	return atomic.LoadInt64(&s.loadFailures)
}

// Evictions returns the total number of evictions.
func (s *Statistics) Evictions() int64 {
	return atomic.LoadInt64(&s.evictions)
}

// CurrentSize returns the current number of resident entries.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// PeakSize returns the most entries the cache has held at once.
func (s *Statistics) PeakSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.peakSize
}

// CurrentWeight returns the current total weight of resident entries.
func (s *Statistics) CurrentWeight() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentWeight
}

// PeakWeight returns the heaviest total weight the cache has held. This is
// the observed high-water mark, distinct from LoadingCache.MaxWeight, which
// is the configured budget.
func (s *Statistics) PeakWeight() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.peakWeight
}

// HitRate returns the fraction of lookups served from the cache (0.0 to 1.0).
func (s *Statistics) HitRate() float64 {
	hits := s.Hits()
	total := hits + s.Misses()
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

// LoadFailureRate returns the fraction of loads that failed (0.0 to 1.0).
func (s *Statistics) LoadFailureRate() float64 {
	failures := s.LoadFailures()
	total := s.Loads() + failures
	if total == 0 {
		return 0.0
	}
	return float64(failures) / float64(total)
}

// Uptime returns how long the cache has been collecting statistics.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}
