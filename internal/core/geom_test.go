package core

import (
	"math"
	"testing"
)

func TestSpanContainsOpen(t *testing.T) {
	s := SpanOf(100, 50)

	tests := []struct {
		name     string
		x        float64
		expected bool
	}{
		{"inside", 120, true},
		{"leading edge (exclusive)", 100, false},
		{"trailing edge (exclusive)", 150, false},
		{"just inside leading edge", 100.001, true},
		{"left of span", 99, false},
		{"right of span", 151, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.ContainsOpen(tc.x); got != tc.expected {
				t.Errorf("ContainsOpen(%v) = %v, expected %v", tc.x, got, tc.expected)
			}
		})
	}
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected bool
	}{
		{"overlapping", SpanOf(0, 10), SpanOf(5, 10), true},
		{"adjacent (no overlap)", SpanOf(0, 10), SpanOf(10, 10), false},
		{"disjoint", SpanOf(0, 10), SpanOf(20, 10), false},
		{"contained", SpanOf(0, 100), SpanOf(40, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}

	if w := SpanOf(3, 7).Width(); w != 7 {
		t.Errorf("Width() = %v, expected 7", w)
	}
}

func TestCircleTouches(t *testing.T) {
	ball := Circle{Center: Vec{X: 0, Y: 0}, R: 15}

	tests := []struct {
		name     string
		other    Circle
		expected bool
	}{
		{"overlapping", Circle{Center: Vec{X: 20, Y: 0}, R: 10}, true},
		{"exactly touching (not a hit)", Circle{Center: Vec{X: 25, Y: 0}, R: 10}, false},
		{"apart", Circle{Center: Vec{X: 30, Y: 30}, R: 10}, false},
		{"diagonal overlap", Circle{Center: Vec{X: 15, Y: 15}, R: 10}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ball.Touches(tc.other); got != tc.expected {
				t.Errorf("Touches() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDist(t *testing.T) {
	if d := Dist(Vec{X: 0, Y: 0}, Vec{X: 3, Y: 4}); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}

	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
