package vmath

import "math"

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// UnitX is the fallback direction for degenerate normalisation
var UnitX = Vec2{X: 1}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector, zero-safe: a zero vector stays zero
func (v Vec2) Normalize() Vec2 {
	mag := v.Len()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// NormalizeOr returns the unit vector or fallback when v has no direction
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	mag := v.Len()
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return fallback
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// Direction returns the unit vector pointing from a to b, UnitX when a == b
func Direction(from, to Vec2) Vec2 {
	return to.Sub(from).NormalizeOr(UnitX)
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Clamp limits each axis of v into [lo, hi]
// When lo exceeds hi on an axis the midpoint is used
func Clamp(v, lo, hi Vec2) Vec2 {
	return Vec2{clampAxis(v.X, lo.X, hi.X), clampAxis(v.Y, lo.Y, hi.Y)}
}

func clampAxis(x, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, x))
}
