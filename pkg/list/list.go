// Package list provides an arena-backed doubly-linked list with stable
// integer node offsets.
//
// Nodes live in a growable arena indexed by offset rather than pointer, with
// erased nodes recycled through an internal free list. An offset stays valid
// from the insert that returned it until the node is erased, which lets
// callers store offsets in side structures (the cache package keeps one per
// entry for O(1) recency bumps via MoveHead).
//
// Like the deque, the list is strictly single-threaded: no internal locking,
// no goroutines, caller synchronizes if shared.
package list

import (
	"fmt"
	"io"
)

// None is the nil node offset. Next and Prev return it past either end, and
// it terminates Begin/Next iteration.
const None = -1

type node[T any] struct {
	prev  int
	next  int
	value T
}

// List is a doubly-linked list over an arena of nodes. The zero value is not
// usable; construct with New.
type List[T any] struct {
	nodes []node[T]
	head  int // first used node, None when empty
	back  int // last used node, None when empty
	free  int // head of the free chain, None when exhausted
	size  int
}

// New creates a list with arena space reserved for capacity nodes. The arena
// grows beyond capacity on demand; capacity only pre-sizes the allocation.
func New[T any](capacity int) *List[T] {
	l := &List[T]{
		head: None,
		back: None,
		free: None,
	}
	if capacity > 0 {
		l.nodes = make([]node[T], 0, capacity)
	}
	return l
}

// Capacity returns the number of nodes the arena can hold before growing.
func (l *List[T]) Capacity() int {
	return cap(l.nodes)
}

// Len returns the number of nodes in the used chain.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty returns true if the list holds no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// alloc takes a node from the free chain, or extends the arena when none is
// available, and stores v in it.
func (l *List[T]) alloc(v T) int {
	if l.free != None {
		idx := l.free
		l.free = l.nodes[idx].next
		l.nodes[idx].value = v
		return idx
	}
	l.nodes = append(l.nodes, node[T]{value: v})
	return len(l.nodes) - 1
}

// release puts an unlinked node on the free chain and clears its value so
// the arena doesn't retain references.
func (l *List[T]) release(idx int) {
	var zero T
	l.nodes[idx].value = zero
	l.nodes[idx].prev = None
	l.nodes[idx].next = l.free
	l.free = idx
}

// unlink removes a node from the used chain without releasing it.
func (l *List[T]) unlink(pos int) {
	n := l.nodes[pos]
	if n.prev != None {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != None {
		l.nodes[n.next].prev = n.prev
	} else {
		l.back = n.prev
	}
}

// PushHead inserts v as the new first node and returns its offset.
func (l *List[T]) PushHead(v T) int {
	idx := l.alloc(v)
	l.nodes[idx].prev = None
	l.nodes[idx].next = l.head

	if l.head != None {
		l.nodes[l.head].prev = idx
	} else {
		l.back = idx
	}
	l.head = idx
	l.size++
	return idx
}

// PushBack inserts v as the new last node and returns its offset.
func (l *List[T]) PushBack(v T) int {
	idx := l.alloc(v)
	l.nodes[idx].prev = l.back
	l.nodes[idx].next = None

	if l.back != None {
		l.nodes[l.back].next = idx
	} else {
		l.head = idx
	}
	l.back = idx
	l.size++
	return idx
}

// PopHead removes the first node. No-op on an empty list.
func (l *List[T]) PopHead() {
	if l.head == None {
		return
	}
	idx := l.head
	l.unlink(idx)
	l.size--
	l.release(idx)
}

// PopBack removes the last node. No-op on an empty list.
func (l *List[T]) PopBack() {
	if l.back == None {
		return
	}
	idx := l.back
	l.unlink(idx)
	l.size--
	l.release(idx)
}

// Insert places v immediately before pos and returns the new node's offset.
// Inserting before None appends at the back, mirroring insertion before the
// end of iteration.
func (l *List[T]) Insert(pos int, v T) int {
	if pos == None {
		return l.PushBack(v)
	}
	if pos == l.head {
		return l.PushHead(v)
	}

	idx := l.alloc(v)
	prev := l.nodes[pos].prev
	l.nodes[idx].prev = prev
	l.nodes[idx].next = pos
	l.nodes[prev].next = idx
	l.nodes[pos].prev = idx
	l.size++
	return idx
}

// Erase removes the node at pos and returns the offset of the node that
// followed it (None if pos was the back). pos must be a live offset.
func (l *List[T]) Erase(pos int) int {
	next := l.nodes[pos].next
	l.unlink(pos)
	l.size--
	l.release(pos)
	return next
}

// MoveHead relinks the node at pos to the front of the used chain without
// touching its value. No-op when pos is already the head. pos must be a
// live offset.
func (l *List[T]) MoveHead(pos int) {
	if pos == l.head {
		return
	}
	l.unlink(pos)
	l.nodes[pos].prev = None
	l.nodes[pos].next = l.head
	if l.head != None {
		l.nodes[l.head].prev = pos
	} else {
		l.back = pos
	}
	l.head = pos
}

// MoveBack relinks the node at pos to the back of the used chain without
// touching its value. No-op when pos is already the back. pos must be a
// live offset.
func (l *List[T]) MoveBack(pos int) {
	if pos == l.back {
		return
	}
	l.unlink(pos)
	l.nodes[pos].next = None
	l.nodes[pos].prev = l.back
	if l.back != None {
		l.nodes[l.back].next = pos
	} else {
		l.head = pos
	}
	l.back = pos
}

// Head returns a pointer to the first node's value. Precondition: the list
// is non-empty. The pointer is invalidated if a later insert grows the
// arena; the offset from HeadOffset is not.
func (l *List[T]) Head() *T {
	return &l.nodes[l.head].value
}

// Back returns a pointer to the last node's value. Precondition: the list
// is non-empty.
func (l *List[T]) Back() *T {
	return &l.nodes[l.back].value
}

// At returns a pointer to the value at a live offset.
func (l *List[T]) At(pos int) *T {
	return &l.nodes[pos].value
}

// Next returns the offset after pos in the used chain, None past the back.
func (l *List[T]) Next(pos int) int {
	return l.nodes[pos].next
}

// Prev returns the offset before pos in the used chain, None before the head.
func (l *List[T]) Prev(pos int) int {
	return l.nodes[pos].prev
}

// HeadOffset returns the offset of the first node, None when empty.
func (l *List[T]) HeadOffset() int {
	return l.head
}

// BackOffset returns the offset of the last node, None when empty.
func (l *List[T]) BackOffset() int {
	return l.back
}

// Begin returns the offset to start iteration from, None when empty.
//
//	for p := l.Begin(); p != l.End(); p = l.Next(p) {
//		visit(*l.At(p))
//	}
func (l *List[T]) Begin() int {
	return l.head
}

// End returns the offset terminating iteration.
func (l *List[T]) End() int {
	return None
}

// Clear removes every node. Values are released for GC; all offsets become
// invalid.
func (l *List[T]) Clear() {
	for l.head != None {
		l.PopHead()
	}
}

// Dump writes the used and free chains to w for diagnostics.
func (l *List[T]) Dump(w io.Writer) {
	fmt.Fprintf(w, "head: %d\n", l.head)
	fmt.Fprintf(w, "back: %d\n", l.back)
	fmt.Fprintf(w, "size: %d\n", l.size)
	fmt.Fprintf(w, "arena: %d/%d\n", len(l.nodes), cap(l.nodes))

	for pos, i := l.head, 0; pos != None; pos, i = l.nodes[pos].next, i+1 {
		fmt.Fprintf(w, "used[%d]: offset=%d prev=%d next=%d\n",
			i, pos, l.nodes[pos].prev, l.nodes[pos].next)
	}
	for pos, i := l.free, 0; pos != None; pos, i = l.nodes[pos].next, i+1 {
		fmt.Fprintf(w, "free[%d]: offset=%d next=%d\n", i, pos, l.nodes[pos].next)
	}
}
