// Package deque provides a generic, fixed-capacity, double-ended circular
// deque with overwrite-on-full semantics.
//
// # Overview
//
// The deque owns a backing array of C slots allocated once at construction,
// a head offset, and a length. Every operation is index arithmetic over that
// array: the logical element at position i lives at physical slot
// (head+i) mod C. Pushing into a full deque evicts the element at the
// opposite end rather than failing or growing storage, which makes the deque
// a natural sliding-window primitive for recent-history tracking and
// lookahead/lookbehind buffers.
//
// # Quick Start
//
//	d := deque.New[int](3)
//	d.PushBack(1)
//	d.PushBack(2)
//	d.PushBack(3)  // full: [1 2 3]
//	d.PushBack(4)  // overwrites the front: [2 3 4]
//
//	first := *d.Head()   // 2
//	last := *d.Back()    // 4
//	mid := *d.At(1)      // 3
//
//	d.Rotate(1)          // [3 4 2]
//	d.Rotate(-1)         // [2 3 4]
//
// # Access Contract
//
// The default accessors are unchecked by design:
//
//   - Head and Back read unspecified storage when the deque is empty. They
//     never panic (the head slot always exists), but the value is stale or
//     zero. Callers gate on IsEmpty.
//   - At wraps any position into the valid slot range via modulo, so
//     positions at or beyond Len silently alias into stale slots. Only
//     positions below Len are meaningful.
//
// Callers that want errors instead of the raw contract opt in through
// AtChecked, which returns a classified error for positions outside
// [0, Len()). The unchecked accessors are the contract, not a bug: bounds
// checks on the hot path would change observable behavior for existing
// callers that rely on wrapping.
//
// # Concurrency
//
// The deque is strictly single-threaded. It holds no locks, spawns no
// goroutines, and has no blocking operations, so there is no cancellation
// or timeout concept. Sharing a deque across goroutines without external
// synchronization is a data race. The higher-level cache package shows the
// intended layering: synchronization and observability live in the wrapper,
// never in the container.
//
// # Element Lifecycle
//
// Pops and Clear adjust offsets only; they never zero vacated slots. A
// deque of pointers therefore keeps evicted elements reachable until the
// slot is overwritten by a later push. Callers holding large values through
// pointer types and sensitive to GC retention should overwrite via At
// before popping, or size the deque so slots recycle quickly.
package deque
