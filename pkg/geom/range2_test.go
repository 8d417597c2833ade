package geom

import (
	"math"
	"testing"
)

func TestRange2SizeCenter(t *testing.T) {
	tests := []struct {
		name       string
		r          Range2
		wantSize   Vec2
		wantCenter Vec2
	}{
		{"unit", R2(V2(0, 0), V2(1, 1)), V2(1, 1), V2(0.5, 0.5)},
		{"centered filmback", R2(V2(-10.4775, -7.6454), V2(10.4775, 7.6454)), V2(20.955, 15.2908), V2(0, 0)},
		{"offset", R2(V2(2, 3), V2(6, 11)), V2(4, 8), V2(4, 7)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			size := tc.r.Size()
			if math.Abs(size.X-tc.wantSize.X) > 1e-9 || math.Abs(size.Y-tc.wantSize.Y) > 1e-9 {
				t.Errorf("size = %v, want %v", size, tc.wantSize)
			}
			center := tc.r.Center()
			if math.Abs(center.X-tc.wantCenter.X) > 1e-9 || math.Abs(center.Y-tc.wantCenter.Y) > 1e-9 {
				t.Errorf("center = %v, want %v", center, tc.wantCenter)
			}
		})
	}
}

func TestRange2Div(t *testing.T) {
	// Filmback scaled by a focal length keeps the center.
	r := R2(V2(-1, -0.75), V2(1, 0.75)).Div(2)

	if r.Min != V2(-0.5, -0.375) || r.Max != V2(0.5, 0.375) {
		t.Errorf("got %v", r)
	}
}

func TestRange2IsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		r        Range2
		expected bool
	}{
		{"normal", R2(V2(0, 0), V2(1, 1)), false},
		{"zero size", R2(V2(1, 1), V2(1, 1)), false},
		{"inverted x", R2(V2(2, 0), V2(1, 1)), true},
		{"inverted y", R2(V2(0, 2), V2(1, 1)), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.IsEmpty(); got != tc.expected {
				t.Errorf("IsEmpty() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestRange2Contains(t *testing.T) {
	outer := R2(V2(-2, -1), V2(2, 1))

	tests := []struct {
		name     string
		inner    Range2
		expected bool
	}{
		{"itself", outer, true},
		{"strictly inside", R2(V2(-1, -0.5), V2(1, 0.5)), true},
		{"sticks out left", R2(V2(-3, 0), V2(0, 0.5)), false},
		{"sticks out top", R2(V2(0, 0), V2(1, 2)), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.Contains(tc.inner); got != tc.expected {
				t.Errorf("Contains(%v) = %v, want %v", tc.inner, got, tc.expected)
			}
		})
	}
}
