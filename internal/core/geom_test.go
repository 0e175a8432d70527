package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "zero width never collides",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 0, 10),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tt.expected)
			}
			if got := tt.b.Intersects(tt.a); got != tt.expected {
				t.Errorf("Intersects() is not symmetric: %v", got)
			}
		})
	}
}

func TestBoxInset(t *testing.T) {
	b := NewBox(100, 200, 50, 80).Inset(0.2, 0.5)

	if math.Abs(b.W-40) > 1e-9 || math.Abs(b.H-40) > 1e-9 {
		t.Errorf("inset size = %vx%v, expected 40x40", b.W, b.H)
	}
	if math.Abs(b.X-105) > 1e-9 || math.Abs(b.Y-220) > 1e-9 {
		t.Errorf("inset origin = (%v, %v), expected (105, 220)", b.X, b.Y)
	}

	cx, cy := b.Center()
	if cx != 125 || cy != 240 {
		t.Errorf("inset should keep the center, got (%v, %v)", cx, cy)
	}

	if full := NewBox(0, 0, 10, 10).Inset(2, -1); full.W != 0 || full.H != 10 {
		t.Errorf("fractions should be clamped to [0,1], got %vx%v", full.W, full.H)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{150, 0, 100, 100},
	}
	for _, tt := range tests {
		if got := ClampF(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}
