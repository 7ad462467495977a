package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Circle is the only drawable shape; every entity is one
type Circle struct {
	Pos    vmath.Vec2
	Radius float64
	Color  colorful.Color
}

// BossView adds the health bar input to the boss circle
type BossView struct {
	Circle
	Health float64 // Fraction in [0, 1]
	State  string
}

// Stats are the scalar values shown on the HUD
type Stats struct {
	Score       int
	BossPoints  int
	Currency    int
	Enemies     int
	EnemyCap    int
	Projectiles int
	ProjCap     int
	Credits     float64
	Elapsed     float64
}

// Frame is the read-only snapshot a renderer draws once per frame
// Captured after the simulation step, never while systems run
type Frame struct {
	View        vmath.Rect // World rectangle mapped to the screen
	Player      Circle
	Enemies     []Circle
	Projectiles []Circle
	Boss        *BossView
	Stats       Stats
}

// View returns the world rectangle a front-end maps onto the screen
func View(w *engine.World) vmath.Rect {
	if w.Camera != nil {
		return w.Camera.Viewport()
	}
	return w.Arena
}

// Capture fills f from the world, reusing f's slices
func Capture(w *engine.World, currency int, f *Frame) {
	f.View = View(w)

	p := w.Player
	f.Player = Circle{Pos: p.Pos, Radius: p.Radius, Color: p.Color}

	f.Enemies = f.Enemies[:0]
	for _, e := range w.Enemies.All() {
		f.Enemies = append(f.Enemies, Circle{
			Pos:    e.Pos,
			Radius: e.Radius,
			Color:  w.Config.EnemyType(e.Type).Color,
		})
	}

	f.Projectiles = f.Projectiles[:0]
	for _, pr := range w.Projectiles.All() {
		f.Projectiles = append(f.Projectiles, Circle{Pos: pr.Pos, Radius: pr.Radius, Color: pr.Color})
	}

	f.Boss = nil
	if w.Boss.Active {
		bt := w.Config.BossType()
		health := w.Boss.HealthFraction(bt)
		f.Boss = &BossView{
			Circle: Circle{Pos: w.Boss.Pos, Radius: bt.Size, Color: BossColor(bt.Color, health)},
			Health: health,
			State:  w.Boss.State.String(),
		}
	}

	f.Stats = Stats{
		Score:       p.Score,
		BossPoints:  p.BossPoints,
		Currency:    currency,
		Enemies:     w.Enemies.Len(),
		EnemyCap:    w.Enemies.Cap(),
		Projectiles: w.Projectiles.Len(),
		ProjCap:     w.Projectiles.Cap(),
		Credits:     w.Status.Floats.Get("spawn.credits").Get(),
		Elapsed:     w.Time.GameTime,
	}
}
