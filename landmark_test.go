package smartface

import (
	"testing"
)

// pointsEqual compares two landmark points within epsilon
func pointsEqual(a, b Point, epsilon float32) bool {

	diff := func(x, y float32) float32 {
		if x > y {
			return x - y
		}
		return y - x
	}

	return diff(a.X, b.X) <= epsilon && diff(a.Y, b.Y) <= epsilon &&
		diff(a.Z, b.Z) <= epsilon
}

func TestGetOutOfRange(t *testing.T) {

	lms := Landmarks{
		{X: 0.1, Y: 0.2, Z: -0.05},
		{X: 0.3, Y: 0.4, Z: -0.06},
	}

	if got := lms.Get(1); !pointsEqual(got, lms[1], 0) {
		t.Errorf("expected point %v, got %v", lms[1], got)
	}

	// out of range indexes degrade to a zero point
	for _, idx := range []int{-1, 2, 467} {
		if got := lms.Get(idx); got != (Point{}) {
			t.Errorf("expected zero point for index %d, got %v", idx, got)
		}
	}

	var empty Landmarks

	if got := empty.Get(0); got != (Point{}) {
		t.Errorf("expected zero point for empty set, got %v", got)
	}
}

func TestBounds(t *testing.T) {

	tests := []struct {
		name     string
		lms      Landmarks
		expected [4]float32 // minX, minY, maxX, maxY
	}{
		{
			name: "spread",
			lms: Landmarks{
				{X: 0.25, Y: 0.5},
				{X: 0.75, Y: 0.25},
				{X: 0.5, Y: 0.75},
			},
			expected: [4]float32{0.25, 0.25, 0.75, 0.75},
		},
		{
			// a set where every point is identical degenerates to a
			// zero size box
			name: "identical points",
			lms: Landmarks{
				{X: 0.5, Y: 0.5},
				{X: 0.5, Y: 0.5},
			},
			expected: [4]float32{0.5, 0.5, 0.5, 0.5},
		},
		{
			// the box tightens from the full [0,1] extents, so points
			// outside [0,1] only move the max side out
			name: "point outside unit range",
			lms: Landmarks{
				{X: 1.5, Y: 0.5},
			},
			expected: [4]float32{1.0, 0.5, 1.5, 0.5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			minX, minY, maxX, maxY := tc.lms.Bounds()
			got := [4]float32{minX, minY, maxX, maxY}

			if got != tc.expected {
				t.Errorf("expected bounds %v, got %v", tc.expected, got)
			}

			if minX > maxX || minY > maxY {
				t.Errorf("bounds inverted: %v", got)
			}
		})
	}
}

func TestLandmarksFromFloat32(t *testing.T) {

	buf := []float32{0.1, 0.2, -0.05, 0.3, 0.4, -0.06, 0.9}

	lms := LandmarksFromFloat32(buf)

	// the trailing value not forming a whole triple is dropped
	if len(lms) != 2 {
		t.Fatalf("expected 2 landmarks, got %d", len(lms))
	}

	expected := Landmarks{
		{X: 0.1, Y: 0.2, Z: -0.05},
		{X: 0.3, Y: 0.4, Z: -0.06},
	}

	for i := range expected {
		if !pointsEqual(lms[i], expected[i], 1e-6) {
			t.Errorf("landmark %d: expected %v, got %v", i, expected[i], lms[i])
		}
	}
}

func TestLandmarksFromFloat16(t *testing.T) {

	// float16 bit patterns: 1.0, 0.5, -1.0, 0.25, 2.0, -0.5
	buf := []uint16{0x3C00, 0x3800, 0xBC00, 0x3400, 0x4000, 0xB800}

	lms := LandmarksFromFloat16(buf)

	if len(lms) != 2 {
		t.Fatalf("expected 2 landmarks, got %d", len(lms))
	}

	expected := Landmarks{
		{X: 1.0, Y: 0.5, Z: -1.0},
		{X: 0.25, Y: 2.0, Z: -0.5},
	}

	for i := range expected {
		if !pointsEqual(lms[i], expected[i], 1e-6) {
			t.Errorf("landmark %d: expected %v, got %v", i, expected[i], lms[i])
		}
	}
}
