package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(5, 10, 20, 15).Inset(2, 1)

	if r != NewRect(3, 9, 24, 17) {
		t.Errorf("Inset(2, 1) = %+v, expected {X:3 Y:9 W:24 H:17}", r)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestCentered(t *testing.T) {
	tests := []struct {
		name             string
		w, h, sw, sh     int
		expectX, expectY int
	}{
		{"fits", 20, 10, 80, 24, 30, 7},
		{"exact", 80, 24, 80, 24, 0, 0},
		{"too wide", 100, 10, 80, 24, 0, 7},
		{"too tall", 20, 30, 80, 24, 30, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Centered(tc.w, tc.h, tc.sw, tc.sh)
			if r.X != tc.expectX || r.Y != tc.expectY {
				t.Errorf("Centered() origin = (%d, %d), expected (%d, %d)", r.X, r.Y, tc.expectX, tc.expectY)
			}
			if r.W != tc.w || r.H != tc.h {
				t.Errorf("Centered() size = %dx%d, expected %dx%d", r.W, r.H, tc.w, tc.h)
			}
		})
	}
}
