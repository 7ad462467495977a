package system

import (
	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/constant"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// PlayerSystem moves the player from input intent and fires while the trigger is held
type PlayerSystem struct {
	world *engine.World
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{world: world}
	s.Init()
	return s
}

// Init has nothing to reset; the world resets the player itself
func (s *PlayerSystem) Init() {}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return constant.PriorityPlayer
}

func (s *PlayerSystem) Update() {
	in := s.world.Input
	s.UpdatePosition(in.Move, s.world.Time.DeltaTime)
	s.TryFire(in.FireHeld, in.Aim, s.world.Time.GameTime)
}

// UpdatePosition integrates movement and clamps the circle inside the arena
// A zero direction leaves the player in place
func (s *PlayerSystem) UpdatePosition(dir vmath.Vec2, dt float64) {
	p := s.world.Player
	p.Pos = p.Pos.Add(dir.Normalize().Scale(p.Speed * dt))

	bounds := s.world.Arena.Inset(p.Radius)
	p.Pos = vmath.Clamp(p.Pos, bounds.Min, bounds.Max)
}

// TryFire emits one projectile toward aim when held and the cooldown has elapsed
// Returns whether a projectile was emitted
func (s *PlayerSystem) TryFire(held bool, aim vmath.Vec2, now float64) bool {
	p := s.world.Player
	if !held || p.FireRate <= 0 {
		return false
	}
	if now-p.LastShot < 1/p.FireRate {
		return false
	}

	if !spawnProjectile(s.world, p.Pos, aim, p.Shot, component.AllegiancePlayer) {
		return false
	}
	p.LastShot = now
	return true
}
