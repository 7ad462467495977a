package engine

import (
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Camera is a screen-sized viewport following a target inside the arena
type Camera struct {
	width, height float64
	arena         vmath.Rect
	view          vmath.Rect
}

func NewCamera(width, height float64, arena vmath.Rect) *Camera {
	c := &Camera{width: width, height: height, arena: arena}
	c.Follow(vmath.V2(arena.Min.X+arena.Width()/2, arena.Min.Y+arena.Height()/2))
	return c
}

// Follow centres the viewport on target, clamped so it never shows outside the arena
// An arena narrower than the viewport on an axis is centred on that axis
func (c *Camera) Follow(target vmath.Vec2) {
	half := vmath.V2(c.width/2, c.height/2)
	lo := c.arena.Min.Add(half)
	hi := c.arena.Max.Sub(half)
	centre := vmath.Clamp(target, lo, hi)
	c.view = vmath.RectFromSize(centre.Sub(half), c.width, c.height)
}

// Viewport returns the visible world rectangle
func (c *Camera) Viewport() vmath.Rect { return c.view }

// Offset is the world position drawn at the screen origin
func (c *Camera) Offset() vmath.Vec2 { return c.view.Min }

// Visible reports whether a circle intersects the viewport
func (c *Camera) Visible(p vmath.Vec2, radius float64) bool {
	return p.X+radius >= c.view.Min.X && p.X-radius < c.view.Max.X &&
		p.Y+radius >= c.view.Min.Y && p.Y-radius < c.view.Max.Y
}
