// Package ringkit provides fixed-capacity, in-memory container primitives for
// recent-history tracking and resource caching.
//
// # Overview
//
// RingKit is a small library of allocation-conscious containers:
//
//   - pkg/deque: a generic, fixed-capacity, double-ended circular deque with
//     overwrite-on-full semantics. The core primitive of the library.
//   - pkg/list: an arena-backed doubly-linked list with stable integer node
//     offsets and an internal free list.
//   - pkg/cache: a weight-bounded loading cache (LRU) built on pkg/list,
//     loading misses through a caller-supplied handler.
//   - pkg/window: running statistics (mean, variance, stddev) over a sliding
//     window of samples, built on pkg/deque.
//
// # Design
//
// The deque and list are strictly single-threaded and perform no allocation
// after construction (the list grows its arena only when pushed beyond
// capacity). They never return errors from their hot paths: out-of-range
// positional access wraps by contract, and end accessors on an empty
// container read unspecified storage rather than panicking. Callers that
// want checked access opt in explicitly (deque.AtChecked).
//
// The loading cache is the concurrent, observable layer: it is
// mutex-protected, always collects statistics, optionally exports Prometheus
// metrics through the metric registry, and retries transient load failures
// with exponential backoff.
//
// RingKit MUST NOT contain:
//   - Dynamic growth or reallocation of the deque's backing storage
//   - Serialization, persistence, or any wire surface
//   - Hidden synchronization inside the single-threaded primitives
//
// # Quick Start
//
//	d := deque.New[int](3)
//	d.PushBack(1)
//	d.PushBack(2)
//	d.PushBack(3)
//	d.PushBack(4) // full: overwrites the front, sequence is now [2 3 4]
//
//	c, err := cache.New[uint32, []byte](1<<20, loadTexture,
//		cache.WithEvictionCallback[uint32, []byte](releaseTexture),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tex, err := c.Get(ctx, 42)
package ringkit
