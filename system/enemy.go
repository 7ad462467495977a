package system

import (
	"github.com/lixenwraith/arena-fighter/constant"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// EnemySystem steers enemies toward stale targets and checks player contact
type EnemySystem struct {
	world *engine.World

	lastRetarget float64
}

func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{world: world}
	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.lastRetarget = s.world.Time.GameTime
}

func (s *EnemySystem) Name() string {
	return "enemy"
}

func (s *EnemySystem) Priority() int {
	return constant.PriorityEnemy
}

func (s *EnemySystem) Update() {
	s.Retarget(s.world.Time.GameTime)
	s.Integrate(s.world.Time.DeltaTime)
	s.CheckPlayerContact()
}

// Retarget gives each enemy an independent chance to re-aim at the player
// Runs at most once per retarget interval; returns the number of enemies re-aimed
func (s *EnemySystem) Retarget(now float64) int {
	sp := s.world.Config.Spawner
	if now-s.lastRetarget < sp.RetargetInterval {
		return 0
	}
	s.lastRetarget = now

	target := s.world.Player.Pos
	n := 0
	for _, e := range s.world.Enemies.All() {
		if s.world.Rand.Chance(sp.RetargetProbability) {
			e.Desired = target
			n++
		}
	}
	return n
}

// Integrate moves every enemy toward its desired position at its fixed speed
// An enemy already at its target stays there
func (s *EnemySystem) Integrate(dt float64) {
	for _, e := range s.world.Enemies.All() {
		step := e.Desired.Sub(e.Pos).Normalize().Scale(e.Speed * dt)
		e.Pos = e.Pos.Add(step)
	}
}

// CheckPlayerContact removes every enemy touching the player and defeats the player
func (s *EnemySystem) CheckPlayerContact() {
	p := s.world.Player
	for slot, e := range s.world.Enemies.All() {
		if vmath.CirclesOverlap(e.Pos, e.Radius, p.Pos, p.Radius) {
			s.world.Enemies.Remove(slot)
			defeatPlayer(s.world, "enemy")
		}
	}
}
