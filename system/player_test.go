package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/vmath"
)

func TestPlayerPositionClamped(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewPlayerSystem(w).(*PlayerSystem)
	r := w.Player.Radius

	dirs := []vmath.Vec2{
		vmath.V2(1, 0), vmath.V2(-1, 0), vmath.V2(0, 1), vmath.V2(0, -1),
		vmath.V2(1, 1), vmath.V2(-3, 2), vmath.V2(0.2, -5),
	}
	for _, d := range dirs {
		for i := 0; i < 50; i++ {
			s.UpdatePosition(d, 0.5)
			p := w.Player.Pos
			if p.X < w.Arena.Min.X+r || p.X > w.Arena.Max.X-r ||
				p.Y < w.Arena.Min.Y+r || p.Y > w.Arena.Max.Y-r {
				t.Fatalf("dir %v: position %v escaped arena inset by %v", d, p, r)
			}
		}
	}
}

func TestPlayerMovementSpeed(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewPlayerSystem(w).(*PlayerSystem)
	start := w.Player.Pos

	// Unnormalised input still moves at exactly Speed
	s.UpdatePosition(vmath.V2(3, 4), 0.1)
	moved := vmath.Distance(start, w.Player.Pos)
	if want := w.Player.Speed * 0.1; math.Abs(moved-want) > 1e-9 {
		t.Errorf("moved %v, want %v", moved, want)
	}
}

func TestPlayerZeroDirection(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewPlayerSystem(w).(*PlayerSystem)
	start := w.Player.Pos

	s.UpdatePosition(vmath.Vec2{}, 0.016)
	if w.Player.Pos != start {
		t.Errorf("Pos = %v, want %v", w.Player.Pos, start)
	}
	if math.IsNaN(w.Player.Pos.X) || math.IsNaN(w.Player.Pos.Y) {
		t.Error("zero direction produced NaN")
	}
}

func TestPlayerFireRateGate(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewPlayerSystem(w).(*PlayerSystem)
	w.Player.FireRate = 2
	w.Player.LastShot = 10
	aim := w.Player.Pos.Add(vmath.V2(100, 0))

	tests := []struct {
		name  string
		held  bool
		now   float64
		fired bool
	}{
		{"not held", false, 20, false},
		{"0.4s since last shot", true, 10.4, false},
		{"exactly 0.5s since last shot", true, 10.5, true},
		{"immediately after", true, 10.6, false},
		{"next window", true, 11.0, true},
	}

	for _, tt := range tests {
		before := w.Projectiles.Len()
		got := s.TryFire(tt.held, aim, tt.now)
		if got != tt.fired {
			t.Errorf("%s: TryFire() = %v, want %v", tt.name, got, tt.fired)
		}
		wantDelta := 0
		if tt.fired {
			wantDelta = 1
		}
		if d := w.Projectiles.Len() - before; d != wantDelta {
			t.Errorf("%s: projectiles added = %d, want %d", tt.name, d, wantDelta)
		}
	}

	if w.Player.LastShot != 11.0 {
		t.Errorf("LastShot = %v, want 11", w.Player.LastShot)
	}
}

func TestPlayerFirstShotImmediate(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewPlayerSystem(w).(*PlayerSystem)

	if !s.TryFire(true, vmath.V2(0, 0), 0) {
		t.Error("first shot of a session should fire at time 0")
	}
}

func TestPlayerFireAtSelfFallsBackToX(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewPlayerSystem(w).(*PlayerSystem)

	if !s.TryFire(true, w.Player.Pos, 1) {
		t.Fatal("TryFire() = false, want true")
	}
	for _, p := range w.Projectiles.All() {
		if p.Dir != vmath.UnitX {
			t.Errorf("Dir = %v, want %v", p.Dir, vmath.UnitX)
		}
		if p.Allegiance != component.AllegiancePlayer {
			t.Errorf("Allegiance = %v, want player", p.Allegiance)
		}
		if p.Speed != w.Player.Shot.Speed || p.Radius != w.Player.Shot.Radius {
			t.Errorf("projectile speed/radius = %v/%v, want template %v/%v",
				p.Speed, p.Radius, w.Player.Shot.Speed, w.Player.Shot.Radius)
		}
	}
}
