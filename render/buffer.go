package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Cell is one character on the grid; Rune 0 is empty or the tail of a wide rune
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
}

var emptyCell = Cell{Fg: HUDText, Bg: Background}

// RenderBuffer is a character grid the terminal front-end copies to its screen
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds reads as empty
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Set writes a cell, ignoring out of bounds coordinates
func (b *RenderBuffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// Text writes s starting at x, y and returns the columns used
// Wide runes take two cells, the second left as a zero-rune tail
func (b *RenderBuffer) Text(x, y int, s string, fg colorful.Color) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(col, y, Cell{Rune: r, Fg: fg, Bg: Background})
		if w == 2 {
			b.Set(col+1, y, Cell{Fg: fg, Bg: Background})
		}
		col += w
	}
	return col - x
}

// Projection maps world coordinates onto the cell grid below the HUD
// Scale is columns per world unit; rows are CellAspect times taller than columns are wide
type Projection struct {
	Origin vmath.Vec2
	Scale  float64
	Top    int
}

// FitProjection scales view to fill cols x rows (minus HUD rows) without distortion
func FitProjection(view vmath.Rect, cols, rows int) Projection {
	usable := rows - parameter.HUDRows
	if usable < 1 || cols < 1 || view.Width() <= 0 || view.Height() <= 0 {
		return Projection{Origin: view.Min, Scale: 1, Top: parameter.HUDRows}
	}
	sx := float64(cols) / view.Width()
	sy := float64(usable) * parameter.CellAspect / view.Height()
	return Projection{Origin: view.Min, Scale: math.Min(sx, sy), Top: parameter.HUDRows}
}

// ToCell returns the cell containing world point p
func (p Projection) ToCell(w vmath.Vec2) (int, int) {
	x := (w.X - p.Origin.X) * p.Scale
	y := (w.Y - p.Origin.Y) * p.Scale / parameter.CellAspect
	return int(math.Floor(x)), int(math.Floor(y)) + p.Top
}

// ToWorld returns the world position of the centre of cell x, y
func (p Projection) ToWorld(x, y int) vmath.Vec2 {
	return vmath.V2(
		p.Origin.X+(float64(x)+0.5)/p.Scale,
		p.Origin.Y+(float64(y-p.Top)+0.5)*parameter.CellAspect/p.Scale,
	)
}

// Circle fills every cell whose centre lies inside c
// Circles smaller than a cell still mark their centre cell
func (b *RenderBuffer) Circle(p Projection, c Circle) {
	x0, y0 := p.ToCell(c.Pos.Sub(vmath.V2(c.Radius, c.Radius)))
	x1, y1 := p.ToCell(c.Pos.Add(vmath.V2(c.Radius, c.Radius)))

	filled := false
	for y := max(y0, p.Top); y <= y1; y++ {
		for x := max(x0, 0); x <= x1; x++ {
			if !b.inBounds(x, y) {
				continue
			}
			if vmath.Distance(p.ToWorld(x, y), c.Pos) <= c.Radius {
				b.Set(x, y, Cell{Rune: parameter.CircleGlyph, Fg: c.Color, Bg: Background})
				filled = true
			}
		}
	}
	if !filled {
		cx, cy := p.ToCell(c.Pos)
		if cy >= p.Top {
			b.Set(cx, cy, Cell{Rune: parameter.ProjectileGlyph, Fg: c.Color, Bg: Background})
		}
	}
}

// DrawFrame rasterises a snapshot: enemies, projectiles, boss, player, then the HUD
func (b *RenderBuffer) DrawFrame(f *Frame, hud *HUD, debug bool) Projection {
	b.Clear()
	p := FitProjection(f.View, b.width, b.height)

	for _, e := range f.Enemies {
		b.Circle(p, e)
	}
	for _, pr := range f.Projectiles {
		b.Circle(p, pr)
	}
	if f.Boss != nil {
		b.Circle(p, f.Boss.Circle)
	}
	b.Circle(p, f.Player)

	line := hud.StatusLine(f.Stats)
	if debug {
		line += "  " + hud.DebugLine(f.Stats)
	}
	n := b.Text(0, 0, line, HUDText)
	if f.Boss != nil {
		b.healthBar(n+2, 0, f.Boss)
	}
	return p
}

// healthBar draws the boss health as a ten-cell bar in the boss colour
func (b *RenderBuffer) healthBar(x, y int, boss *BossView) {
	const width = 10
	full := int(math.Ceil(boss.Health * width))
	for i := 0; i < width; i++ {
		r := '░'
		if i < full {
			r = parameter.CircleGlyph
		}
		b.Set(x+i, y, Cell{Rune: r, Fg: boss.Color, Bg: Background})
	}
}
