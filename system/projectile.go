package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/constant"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// spawnProjectile stamps a template at origin aimed at target
// Aiming at the origin itself fires along +X
func spawnProjectile(world *engine.World, origin, target vmath.Vec2, shot component.ProjectileTemplate, side component.Allegiance) bool {
	_, err := world.Projectiles.Add(component.Projectile{
		Pos:        origin,
		Dir:        vmath.Direction(origin, target),
		Allegiance: side,
		Speed:      shot.Speed,
		Radius:     shot.Radius,
		Color:      shot.Color,
	})
	if err != nil {
		world.Log.Error().Err(err).Str("allegiance", side.String()).Msg("projectile allocation skipped")
		return false
	}
	return true
}

// ProjectileSystem advances projectiles, expires them at the arena edge and resolves hits
type ProjectileSystem struct {
	world *engine.World

	statKills  *atomic.Int64
	statDecays *atomic.Int64
	statHits   *atomic.Int64
}

func NewProjectileSystem(world *engine.World) engine.System {
	s := &ProjectileSystem{world: world}

	s.statKills = world.Status.Ints.Get("enemy.killed")
	s.statDecays = world.Status.Ints.Get("enemy.decayed")
	s.statHits = world.Status.Ints.Get("boss.hits")

	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {
	s.statKills.Store(0)
	s.statDecays.Store(0)
	s.statHits.Store(0)
}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return constant.PriorityProjectile
}

func (s *ProjectileSystem) Update() {
	s.Advance(s.world.Time.DeltaTime)
	s.ResolveCollisions()
}

// Advance moves every projectile along its direction and drops those fully outside the arena
func (s *ProjectileSystem) Advance(dt float64) {
	for slot, p := range s.world.Projectiles.All() {
		p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))
		if !s.world.InBounds(p.Pos, p.Radius) {
			s.world.Projectiles.Remove(slot)
		}
	}
}

// ResolveCollisions applies at most one hit per projectile
// Player projectiles test enemies in slot order, then the boss only when no enemy was hit
func (s *ProjectileSystem) ResolveCollisions() {
	for slot, p := range s.world.Projectiles.All() {
		var hit bool
		switch p.Allegiance {
		case component.AllegiancePlayer:
			hit = s.hitEnemy(p)
			if !hit {
				hit = s.hitBoss(p)
			}
		case component.AllegianceHostile:
			hit = s.hitPlayer(p)
		}
		if hit {
			s.world.Projectiles.Remove(slot)
		}
	}
}

func (s *ProjectileSystem) hitEnemy(p *component.Projectile) bool {
	for slot, e := range s.world.Enemies.All() {
		if !vmath.CirclesOverlap(p.Pos, p.Radius, e.Pos, e.Radius) {
			continue
		}
		s.DamageEnemy(slot)
		return true
	}
	return false
}

// DamageEnemy applies one player hit to the enemy in slot
// Types with a successor decay in place with a resampled speed; radius is kept
// Base types are removed and score one point
func (s *ProjectileSystem) DamageEnemy(slot int) {
	e := s.world.Enemies.Get(slot)
	if e == nil {
		return
	}
	et := s.world.Config.EnemyType(e.Type)

	if et.HasSuccessor() {
		e.Type = et.TurnsInto
		weaker := s.world.Config.EnemyType(e.Type)
		e.Speed = s.world.Rand.FloatRange(weaker.MinSpeed, weaker.MaxSpeed)
		s.statDecays.Add(1)
		s.world.Emit(event.EventEnemyDecayed, &event.EnemyPayload{Slot: slot, TypeName: weaker.Name})
		return
	}

	s.world.Enemies.Remove(slot)
	s.world.Player.Score++
	s.statKills.Add(1)
	s.world.Emit(event.EventEnemyKilled, &event.EnemyPayload{Slot: slot, TypeName: et.Name})
}

func (s *ProjectileSystem) hitBoss(p *component.Projectile) bool {
	b := &s.world.Boss
	if !b.Active {
		return false
	}
	if !vmath.CirclesOverlap(p.Pos, p.Radius, b.Pos, s.world.Config.BossType().Size) {
		return false
	}
	b.Health--
	s.statHits.Add(1)
	return true
}

func (s *ProjectileSystem) hitPlayer(p *component.Projectile) bool {
	pl := s.world.Player
	if !vmath.CirclesOverlap(p.Pos, p.Radius, pl.Pos, pl.Radius) {
		return false
	}
	defeatPlayer(s.world, "projectile")
	return true
}

// defeatPlayer flags the player; the session decides whether the run ends
func defeatPlayer(world *engine.World, cause string) {
	if !world.Player.Defeated {
		world.Log.Info().Str("cause", cause).Int("score", world.Player.Score).Msg("player defeated")
		world.Emit(event.EventPlayerDefeated, nil)
	}
	world.Player.Defeated = true
}
