package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 6)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 8 || cy != 7 {
		t.Errorf("Center() = (%d, %d), expected (8, 7)", cx, cy)
	}
}

func TestRectFits(t *testing.T) {
	outer := NewRect(0, 0, 40, 20)

	tests := []struct {
		name     string
		inner    Rect
		expected bool
	}{
		{"same size", NewRect(0, 0, 40, 20), true},
		{"inside", NewRect(5, 5, 10, 10), true},
		{"too wide", NewRect(0, 0, 41, 20), false},
		{"too tall", NewRect(0, 0, 40, 21), false},
		{"negative origin", NewRect(-1, 0, 10, 10), false},
		{"spills right", NewRect(35, 0, 10, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.Fits(tc.inner); got != tc.expected {
				t.Errorf("Fits(%+v) = %v, expected %v", tc.inner, got, tc.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 7) != 2 || Min(7, 2) != 2 {
		t.Error("Min should return the smaller value")
	}
	if Max(2, 7) != 7 || Max(7, 2) != 7 {
		t.Error("Max should return the larger value")
	}
}
