package parallel

import (
	"slices"
	"sync/atomic"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		total, parts int
		want         []Span
	}{
		{0, 4, nil},
		{-3, 4, nil},
		{5, 0, []Span{{0, 5}}},
		{5, 1, []Span{{0, 5}}},
		{10, 3, []Span{{0, 4}, {4, 7}, {7, 10}}},
		{3, 8, []Span{{0, 1}, {1, 2}, {2, 3}}},
	}
	for _, tt := range tests {
		if got := Split(tt.total, tt.parts); !slices.Equal(got, tt.want) {
			t.Errorf("Split(%d, %d) = %v, want %v", tt.total, tt.parts, got, tt.want)
		}
	}
}

func TestForEachCoversRange(t *testing.T) {
	for _, workers := range []int{0, 1, 4, 64} {
		hits := make([]int32, 50)
		ForEach(workers, len(hits), func(s Span) {
			for i := s.Start; i < s.End; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("workers=%d: index %d visited %d times", workers, i, h)
			}
		}
	}
}

func TestPool(t *testing.T) {
	for _, workers := range []int{1, 3} {
		pool := Start(workers)
		if pool.Size() != workers {
			t.Errorf("size = %d, want %d", pool.Size(), workers)
		}

		var done atomic.Int64
		for range 20 {
			pool.Do(func() { done.Add(1) })
		}
		pool.Wait(true)
		pool.Cancel()

		if n := done.Load(); n != 20 {
			t.Errorf("workers=%d: ran %d functions, want 20", workers, n)
		}
	}
}
