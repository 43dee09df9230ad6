package window

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestWindowInitialState(t *testing.T) {
	w := New(8)

	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 8, w.Capacity())
	assert.Zero(t, w.Sum())
	assert.Zero(t, w.Mean())
	assert.Zero(t, w.Variance())
	assert.Zero(t, w.StdDev())
	assert.Zero(t, w.Min())
	assert.Zero(t, w.Max())
	assert.Empty(t, w.Values())
}

func TestWindowCapacityClamp(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		w := New(capacity)
		require.Equal(t, 1, w.Capacity(), "capacity %d", capacity)
	}
}

func TestWindowPartialFill(t *testing.T) {
	w := New(5)
	for _, v := range []float64{2, 4, 6} {
		w.Push(v)
	}

	assert.Equal(t, 3, w.Len())
	assert.InDelta(t, 12, w.Sum(), epsilon)
	assert.InDelta(t, 4, w.Mean(), epsilon)
	// Population variance of {2,4,6}: ((4)+(0)+(4))/3
	assert.InDelta(t, 8.0/3.0, w.Variance(), epsilon)
	assert.InDelta(t, math.Sqrt(8.0/3.0), w.StdDev(), epsilon)
	assert.InDelta(t, 2, w.Min(), epsilon)
	assert.InDelta(t, 6, w.Max(), epsilon)

	if diff := cmp.Diff([]float64{2, 4, 6}, w.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestWindowSlidesWhenFull(t *testing.T) {
	w := New(3)
	for _, v := range []float64{1, 2, 3} {
		w.Push(v)
	}
	require.InDelta(t, 6, w.Sum(), epsilon)

	// Evicts 1, window becomes {2,3,10}.
	w.Push(10)

	assert.Equal(t, 3, w.Len())
	assert.InDelta(t, 15, w.Sum(), epsilon)
	assert.InDelta(t, 5, w.Mean(), epsilon)
	assert.InDelta(t, 2, w.Min(), epsilon)
	assert.InDelta(t, 10, w.Max(), epsilon)

	if diff := cmp.Diff([]float64{2, 3, 10}, w.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestWindowStatsMatchDirectComputation(t *testing.T) {
	w := New(4)
	samples := []float64{3.5, -1.25, 0, 7.75, 2.5, -4, 9.125, 0.5}
	for _, v := range samples {
		w.Push(v)
	}

	// Only the last 4 samples are resident.
	resident := samples[len(samples)-4:]
	var sum float64
	for _, v := range resident {
		sum += v
	}
	mean := sum / float64(len(resident))
	var variance float64
	for _, v := range resident {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(resident))

	assert.InDelta(t, sum, w.Sum(), epsilon)
	assert.InDelta(t, mean, w.Mean(), epsilon)
	assert.InDelta(t, variance, w.Variance(), epsilon)
	assert.InDelta(t, math.Sqrt(variance), w.StdDev(), epsilon)
}

func TestWindowVarianceNeverNegative(t *testing.T) {
	w := New(16)
	// Identical samples: exact variance is 0, running sums may cancel
	// imperfectly.
	for i := 0; i < 100; i++ {
		w.Push(0.1)
	}

	require.GreaterOrEqual(t, w.Variance(), 0.0)
	require.GreaterOrEqual(t, w.StdDev(), 0.0)
	assert.InDelta(t, 0, w.Variance(), 1e-6)
}

func TestWindowReset(t *testing.T) {
	w := New(3)
	for _, v := range []float64{1, 2, 3, 4} {
		w.Push(v)
	}

	w.Reset()

	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 3, w.Capacity())
	assert.Zero(t, w.Sum())
	assert.Zero(t, w.Mean())

	// Usable after a reset with clean sums.
	w.Push(5)
	assert.InDelta(t, 5, w.Sum(), epsilon)
	assert.InDelta(t, 5, w.Mean(), epsilon)
	assert.InDelta(t, 0, w.Variance(), epsilon)
}

func TestWindowCapacityOne(t *testing.T) {
	w := New(1)
	w.Push(3)
	w.Push(8)

	assert.Equal(t, 1, w.Len())
	assert.InDelta(t, 8, w.Sum(), epsilon)
	assert.InDelta(t, 8, w.Mean(), epsilon)
	assert.InDelta(t, 0, w.Variance(), epsilon)
	assert.InDelta(t, 8, w.Min(), epsilon)
	assert.InDelta(t, 8, w.Max(), epsilon)
}
