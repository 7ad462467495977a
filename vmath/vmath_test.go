package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestNormalizeZeroSafe(t *testing.T) {
	got := Vec2{}.Normalize()
	if got != (Vec2{}) {
		t.Errorf("Normalize(0,0) = %v, want zero vector", got)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatal("Normalize produced NaN")
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	tests := []Vec2{
		{3, 4},
		{-1, 0},
		{0.0001, -0.0002},
		{1e6, 1e6},
	}
	for _, v := range tests {
		n := v.Normalize()
		if math.Abs(n.Len()-1) > epsilon {
			t.Errorf("Normalize(%v).Len() = %v, want 1", v, n.Len())
		}
	}
}

func TestDirectionFallback(t *testing.T) {
	p := V2(10, 20)
	if got := Direction(p, p); got != UnitX {
		t.Errorf("Direction(p, p) = %v, want %v", got, UnitX)
	}

	got := Direction(V2(0, 0), V2(0, 5))
	if math.Abs(got.X) > epsilon || math.Abs(got.Y-1) > epsilon {
		t.Errorf("Direction down = %v, want (0,1)", got)
	}
}

func TestClamp(t *testing.T) {
	lo, hi := V2(20, 20), V2(780, 580)
	tests := []struct {
		in, want Vec2
	}{
		{V2(0, 0), V2(20, 20)},
		{V2(1000, 1000), V2(780, 580)},
		{V2(400, 300), V2(400, 300)},
		{V2(-5, 600), V2(20, 580)},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in, lo, hi); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// Inverted bounds collapse to midpoint
	if got := Clamp(V2(0, 0), V2(10, 10), V2(0, 0)); got != V2(5, 5) {
		t.Errorf("Clamp inverted = %v, want (5,5)", got)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		p1     Vec2
		r1     float64
		p2     Vec2
		r2     float64
		expect bool
	}{
		{"separate", V2(0, 0), 1, V2(10, 0), 1, false},
		{"touching", V2(0, 0), 3, V2(5, 0), 2, true},
		{"nested", V2(0, 0), 10, V2(1, 1), 1, true},
		{"diagonal miss", V2(0, 0), 1, V2(1.5, 1.5), 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.p1, tt.r1, tt.p2, tt.r2); got != tt.expect {
				t.Errorf("CirclesOverlap = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestRectPerimeter(t *testing.T) {
	r := RectFromSize(V2(0, 0), 800, 600)
	if r.Perimeter() != 2800 {
		t.Fatalf("Perimeter = %v, want 2800", r.Perimeter())
	}

	for _, tc := range []float64{0, 400, 800, 1100, 1500, 2000, 2799} {
		p := r.PointOnPerimeter(tc)
		onEdge := p.X == 0 || p.X == 800 || p.Y == 0 || p.Y == 600
		if !onEdge {
			t.Errorf("PointOnPerimeter(%v) = %v, not on boundary", tc, p)
		}
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 10000; i++ {
		f := r.FloatRange(2.5, 3.5)
		if f < 2.5 || f > 3.5 {
			t.Fatalf("FloatRange out of bounds: %v", f)
		}
		n := r.IntRange(-2, 2)
		if n < -2 || n > 2 {
			t.Fatalf("IntRange out of bounds: %v", n)
		}
		u := r.Float64()
		if u < 0 || u >= 1 {
			t.Fatalf("Float64 out of bounds: %v", u)
		}
	}

	if r.FloatRange(5, 5) != 5 {
		t.Error("FloatRange with equal bounds should return bound")
	}
	if r.IntRange(7, 3) != 7 {
		t.Error("IntRange with inverted bounds should return lo")
	}
}

func TestRandChanceExtremes(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) succeeded")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) failed")
		}
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed diverged")
		}
	}
}
