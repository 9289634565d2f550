package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestBox_Overlaps(t *testing.T) {
	tests := map[string]struct {
		a, b     Box
		tolX     float64
		tolY     float64
		expected bool
	}{
		"overlapping corners": {
			a:        Box{Top: 0, Right: 10, Bottom: 10, Left: 0},
			b:        Box{Top: 5, Right: 15, Bottom: 15, Left: 5},
			expected: true,
		},
		"touching edges": {
			a: Box{Top: 0, Right: 10, Bottom: 10, Left: 0},
			b: Box{Top: 0, Right: 20, Bottom: 10, Left: 10},
		},
		"disjoint": {
			a: Box{Top: 0, Right: 10, Bottom: 10, Left: 0},
			b: Box{Top: 20, Right: 30, Bottom: 30, Left: 20},
		},
		"contained": {
			a:        Box{Top: 0, Right: 100, Bottom: 100, Left: 0},
			b:        Box{Top: 10, Right: 20, Bottom: 20, Left: 10},
			expected: true,
		},
		"tolerance removes shallow overlap": {
			a:    Box{Top: 0, Right: 10, Bottom: 10, Left: 0},
			b:    Box{Top: 0, Right: 20, Bottom: 10, Left: 8},
			tolX: 2,
		},
		"tolerance keeps deep overlap": {
			a:        Box{Top: 0, Right: 10, Bottom: 10, Left: 0},
			b:        Box{Top: 0, Right: 20, Bottom: 10, Left: 5},
			tolX:     2,
			expected: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "overlaps", tt.a.Overlaps(tt.b, tt.tolX, tt.tolY), tt.expected)
		})
	}
}

func TestBox_Geometry(t *testing.T) {
	b := NewBox(10, 20, 30, 40)
	testutil.AssertEqual(t, "box", b, Box{Top: 20, Right: 40, Bottom: 60, Left: 10})
	testutil.AssertEqual(t, "width", b.Width(), 30.0)
	testutil.AssertEqual(t, "height", b.Height(), 40.0)

	b.Shift(5, -5)
	testutil.AssertEqual(t, "shifted", b, Box{Top: 15, Right: 45, Bottom: 55, Left: 15})

	testutil.AssertEqual(t, "expanded", b.Expand(5), Box{Top: 10, Right: 50, Bottom: 60, Left: 10})
	testutil.AssertEqual(t, "union", b.Union(NewBox(0, 0, 1, 1)), Box{Top: 0, Right: 45, Bottom: 55, Left: 0})
}
