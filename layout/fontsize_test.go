package layout

import (
	"math"
	"testing"
)

func TestFindFontSizeReturnsLargestFit(t *testing.T) {
	var tried []float64
	size, ok := findFontSize(5, 11, 0.1, func(s float64) bool {
		tried = append(tried, s)
		return s <= 8.35
	})
	if !ok {
		t.Fatal("expected a size to fit")
	}
	if math.Abs(size-8.3) > 1e-6 {
		t.Errorf("size = %v, want 8.3", size)
	}
	// Candidates descend from max and stop at the first success.
	for i := 1; i < len(tried); i++ {
		if tried[i] >= tried[i-1] {
			t.Fatalf("candidates not strictly descending: %v", tried)
		}
	}
	if last := tried[len(tried)-1]; math.Abs(last-8.3) > 1e-6 {
		t.Errorf("search continued past the first success: last tried %v", last)
	}
}

func TestFindFontSizeNothingFits(t *testing.T) {
	calls := 0
	_, ok := findFontSize(5, 11, 0.1, func(float64) bool {
		calls++
		return false
	})
	if ok {
		t.Fatal("expected no size to fit")
	}
	// All 61 candidates from 11.0 down to 5.0 are probed.
	if calls != 61 {
		t.Errorf("probed %d candidates, want 61", calls)
	}
}

func TestFindFontSizeMaxFitsImmediately(t *testing.T) {
	size, ok := findFontSize(3, 16, 0.1, func(s float64) bool { return true })
	if !ok || size != 16 {
		t.Fatalf("got (%v, %v), want (16, true)", size, ok)
	}
}
