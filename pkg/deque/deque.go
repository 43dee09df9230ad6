package deque

import (
	"fmt"

	"github.com/c360/ringkit/errors"
)

// Deque is a fixed-capacity, double-ended circular deque with
// overwrite-on-full semantics. The backing storage is allocated once at
// construction and never reallocated, so pointers returned by Head, Back,
// and At remain valid for the lifetime of the deque.
//
// The logical element at position i lives at physical slot
// (head+i) mod capacity. Slots outside the logical range hold stale values;
// pops never clear them.
//
// A Deque is strictly single-threaded: it performs no internal locking and
// provides no safety guarantees under concurrent mutation. Callers sharing
// one across goroutines must synchronize externally.
type Deque[T any] struct {
	data []T
	head int
	size int
}

// New creates a deque with the given capacity. Capacity is fixed for the
// deque's lifetime; values below 1 are clamped to 1.
func New[T any](capacity int) *Deque[T] {
	if capacity < 1 {
		capacity = 1 // Minimum capacity
	}
	return &Deque[T]{
		data: make([]T, capacity),
	}
}

// Capacity returns the maximum number of elements the deque can hold.
func (d *Deque[T]) Capacity() int {
	return len(d.data)
}

// Len returns the current number of logically valid elements.
func (d *Deque[T]) Len() int {
	return d.size
}

// IsEmpty returns true if the deque contains no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

// IsFull returns true if the deque is at capacity.
func (d *Deque[T]) IsFull() bool {
	return d.size == len(d.data)
}

// slot maps a logical position to a physical slot, wrapping any int
// (including negatives) into [0, capacity).
func (d *Deque[T]) slot(i int) int {
	c := len(d.data)
	s := (d.head + i) % c
	if s < 0 {
		s += c
	}
	return s
}

// Head returns a pointer to the logical first element. The pointed-to value
// is unspecified when the deque is empty; Head never panics since the head
// slot always exists.
func (d *Deque[T]) Head() *T {
	return &d.data[d.head]
}

// Back returns a pointer to the logical last element, at slot
// (head+size-1) mod capacity. Unspecified when the deque is empty.
func (d *Deque[T]) Back() *T {
	return &d.data[d.slot(d.size-1)]
}

// PushHead inserts v as the new logical front. When full, the previous
// logical back element is overwritten and unrecoverable; size stays at
// capacity.
func (d *Deque[T]) PushHead(v T) {
	if d.size == 0 {
		d.head = 0
		d.data[0] = v
		d.size = 1
		return
	}

	d.head = d.slot(-1)
	d.data[d.head] = v
	// Never increment past capacity: the offset invariant depends on it.
	if d.size < len(d.data) {
		d.size++
	}
}

// PushBack inserts v as the new logical back. When full, the slot at the
// current front is overwritten and the head advances, evicting the old
// front; size stays at capacity.
func (d *Deque[T]) PushBack(v T) {
	switch {
	case d.size == 0:
		d.head = 0
		d.data[0] = v
		d.size = 1
	case d.size == len(d.data):
		d.data[d.head] = v
		d.head = d.slot(1)
	default:
		d.data[d.slot(d.size)] = v
		d.size++
	}
}

// PopHead removes the logical front element. No-op on an empty deque.
// The vacated slot is not cleared.
func (d *Deque[T]) PopHead() {
	if d.size > 0 {
		d.head = d.slot(1)
		d.size--
	}
}

// PopBack removes the logical back element. No-op on an empty deque.
// The vacated slot is not cleared.
func (d *Deque[T]) PopBack() {
	if d.size > 0 {
		d.size--
	}
}

// Clear resets the deque to empty without touching storage contents.
func (d *Deque[T]) Clear() {
	d.head = 0
	d.size = 0
}

// Reset physically rotates the backing storage in place so that the element
// currently at the head lands in slot 0, then sets the head to 0. The
// logical sequence and length are unchanged; this only matters to callers
// inspecting raw slot offsets.
func (d *Deque[T]) Reset() {
	if d.head == 0 {
		return
	}
	// In-place left rotation by head via three reversals.
	reverse(d.data[:d.head])
	reverse(d.data[d.head:])
	reverse(d.data)
	d.head = 0
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Rotate cyclically shifts the logical sequence by n positions: positive n
// moves the front to the back n times, negative n moves the back to the
// front. Length and membership are unchanged. No-op when empty or n == 0.
// The shift is reduced modulo Len first, so the result is the same for any
// int n (including math.MinInt, where negating n would overflow).
func (d *Deque[T]) Rotate(n int) {
	if d.size == 0 || n == 0 {
		return
	}

	// size >= 1, so the remainder is well defined and |n| < size after
	// reduction; -n can no longer overflow.
	n %= d.size
	if n > 0 {
		for i := 0; i < n; i++ {
			v := *d.Head()
			d.PopHead()
			d.PushBack(v)
		}
		return
	}
	for i := 0; i < -n; i++ {
		v := *d.Back()
		d.PopBack()
		d.PushHead(v)
	}
}

// At returns a pointer to the logical element at position i, computed as
// slot (head+i) mod capacity with no bounds check against Len: positions at
// or beyond Len alias into stale or otherwise-valid-looking slots, and any
// int wraps via modulo into the valid range. Only 0 <= i < Len() is
// meaningful; the caller owns that contract. Use AtChecked for checked
// access.
func (d *Deque[T]) At(i int) *T {
	return &d.data[d.slot(i)]
}

// AtChecked returns a pointer to the logical element at position i, or a
// classified invalid-argument error when i is outside [0, Len()). It is the
// explicit opt-in alternative to At and does not change At's contract.
func (d *Deque[T]) AtChecked(i int) (*T, error) {
	if i < 0 || i >= d.size {
		return nil, errors.WrapInvalid(errors.ErrIndexOutOfRange, "Deque", "AtChecked",
			fmt.Sprintf("position %d with length %d", i, d.size))
	}
	return &d.data[d.slot(i)], nil
}

// HeadOffset returns the raw physical slot index of the current head.
func (d *Deque[T]) HeadOffset() int {
	return d.head
}

// BackOffset returns the raw physical slot index of the current back,
// (head+size-1) mod capacity. Unspecified when the deque is empty.
func (d *Deque[T]) BackOffset() int {
	return d.slot(d.size - 1)
}

// Values returns a copy of the logical sequence in front-to-back order.
// This allocates; it is a diagnostic and test convenience, not a hot-path
// accessor.
func (d *Deque[T]) Values() []T {
	out := make([]T, d.size)
	for i := 0; i < d.size; i++ {
		out[i] = d.data[d.slot(i)]
	}
	return out
}
