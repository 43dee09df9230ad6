// Package window maintains running statistics over a sliding window of the
// most recent N samples.
//
// # Overview
//
// A Window wraps a fixed-capacity deque of float64 samples and keeps running
// sums alongside it. Pushing a sample into a full window subtracts the
// evicted sample's contribution before adding the new one, so Sum, Mean,
// Variance and StdDev stay O(1) regardless of window size. Min and Max scan
// the resident samples.
//
// # Quick Start
//
//	w := window.New(64)
//	for _, sample := range samples {
//		w.Push(sample)
//	}
//	fmt.Println(w.Mean(), w.StdDev())
//
// # Concurrency
//
// Window carries the same contract as the deque it wraps: it is not safe
// for concurrent use. Callers that share a window across goroutines must
// provide their own synchronization.
package window

import (
	"math"

	"github.com/c360/ringkit/pkg/deque"
)

// Window accumulates running statistics over the most recent samples.
// Statistical accessors on an empty window return 0.
type Window struct {
	samples    *deque.Deque[float64]
	sum        float64
	sumSquares float64
}

// New creates a window holding up to capacity samples. A capacity below 1
// is treated as 1.
func New(capacity int) *Window {
	return &Window{
		samples: deque.New[float64](capacity),
	}
}

// Push records a sample. When the window is full the oldest sample's
// contribution is removed before the new one is added.
func (w *Window) Push(v float64) {
	if w.samples.IsFull() {
		oldest := *w.samples.Head()
		w.sum -= oldest
		w.sumSquares -= oldest * oldest
	}
	w.samples.PushBack(v)
	w.sum += v
	w.sumSquares += v * v
}

// Len returns the number of resident samples.
func (w *Window) Len() int {
	return w.samples.Len()
}

// Capacity returns the maximum number of resident samples.
func (w *Window) Capacity() int {
	return w.samples.Capacity()
}

// Sum returns the sum of the resident samples.
func (w *Window) Sum() float64 {
	return w.sum
}

// Mean returns the arithmetic mean of the resident samples.
func (w *Window) Mean() float64 {
	n := w.samples.Len()
	if n == 0 {
		return 0
	}
	return w.sum / float64(n)
}

// Variance returns the population variance of the resident samples.
// Floating-point cancellation in the running sums can produce a slightly
// negative value; it is clamped to 0.
func (w *Window) Variance() float64 {
	n := w.samples.Len()
	if n == 0 {
		return 0
	}
	mean := w.sum / float64(n)
	v := w.sumSquares/float64(n) - mean*mean
	if v < 0 {
		return 0
	}
	return v
}

// StdDev returns the population standard deviation of the resident samples.
func (w *Window) StdDev() float64 {
	return math.Sqrt(w.Variance())
}

// Min returns the smallest resident sample, scanning the window.
func (w *Window) Min() float64 {
	n := w.samples.Len()
	if n == 0 {
		return 0
	}
	min := *w.samples.At(0)
	for i := 1; i < n; i++ {
		if s := *w.samples.At(i); s < min {
			min = s
		}
	}
	return min
}

// Max returns the largest resident sample, scanning the window.
func (w *Window) Max() float64 {
	n := w.samples.Len()
	if n == 0 {
		return 0
	}
	max := *w.samples.At(0)
	for i := 1; i < n; i++ {
		if s := *w.samples.At(i); s > max {
			max = s
		}
	}
	return max
}

// Values returns the resident samples oldest-first.
func (w *Window) Values() []float64 {
	return w.samples.Values()
}

// Reset discards all samples and zeroes the running sums.
func (w *Window) Reset() {
	w.samples.Clear()
	w.sum = 0
	w.sumSquares = 0
}
