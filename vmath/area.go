package vmath

// Rect is an axis-aligned rectangle, Min inclusive, Max exclusive
type Rect struct {
	Min, Max Vec2
}

// RectFromSize returns a rectangle anchored at origin
func RectFromSize(origin Vec2, w, h float64) Rect {
	return Rect{Min: origin, Max: Vec2{origin.X + w, origin.Y + h}}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside r
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Covers reports whether r fully encloses o
func (r Rect) Covers(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Min.Y >= r.Min.Y && o.Max.X <= r.Max.X && o.Max.Y <= r.Max.Y
}

// Inset shrinks r by d on every side
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Vec2{r.Min.X + d, r.Min.Y + d},
		Max: Vec2{r.Max.X - d, r.Max.Y - d},
	}
}

// Perimeter returns the boundary length
func (r Rect) Perimeter() float64 {
	return 2 * (r.Width() + r.Height())
}

// PointOnPerimeter maps t in [0, Perimeter) onto the boundary, clockwise from Min
func (r Rect) PointOnPerimeter(t float64) Vec2 {
	w, h := r.Width(), r.Height()
	switch {
	case t < w:
		return Vec2{r.Min.X + t, r.Min.Y}
	case t < w+h:
		return Vec2{r.Max.X, r.Min.Y + (t - w)}
	case t < 2*w+h:
		return Vec2{r.Max.X - (t - w - h), r.Max.Y}
	default:
		return Vec2{r.Min.X, r.Max.Y - (t - 2*w - h)}
	}
}
