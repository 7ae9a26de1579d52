package core

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", RectF{0, 0, 10, 10}, RectF{5, 5, 10, 10}, true},
		{"disjoint horizontal", RectF{0, 0, 10, 10}, RectF{15, 0, 10, 10}, false},
		{"disjoint vertical", RectF{0, 0, 10, 10}, RectF{0, 15, 10, 10}, false},
		{"touching right edge", RectF{0, 0, 10, 10}, RectF{10, 0, 10, 10}, false},
		{"touching bottom edge", RectF{0, 0, 10, 10}, RectF{0, 10, 10, 10}, false},
		{"contained", RectF{0, 0, 20, 20}, RectF{5, 5, 5, 5}, true},
		{"fractional overlap", RectF{0, 0, 1, 1}, RectF{0.99, 0.99, 1, 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.a, tc.b
			if got := Overlaps(a.X, a.Y, a.W, a.H, b.X, b.Y, b.W, b.H); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := b.Intersects(a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	if !NewRect(0, 0, 10, 10).Intersects(NewRect(9, 9, 10, 10)) {
		t.Error("single cell overlap should intersect")
	}
	if NewRect(0, 0, 10, 10).Intersects(NewRect(10, 0, 10, 10)) {
		t.Error("adjacent rects should not intersect")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectFUnion(t *testing.T) {
	u := RectF{0, 0, 2, 2}.Union(RectF{5, 1, 1, 4})
	if u != (RectF{0, 0, 6, 5}) {
		t.Errorf("Union() = %+v, expected {0 0 6 5}", u)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
