package system

import (
	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/constant"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// BossSystem runs the boss encounter: score-triggered spawn, Moving/Stationary cycle,
// burst fire and player contact
// Health depletion is resolved by DeathSystem after projectiles have hit
type BossSystem struct {
	world *engine.World
}

func NewBossSystem(world *engine.World) engine.System {
	s := &BossSystem{world: world}
	s.Init()
	return s
}

// Init has no state of its own; the world resets the boss component
func (s *BossSystem) Init() {}

func (s *BossSystem) Name() string {
	return "boss"
}

func (s *BossSystem) Priority() int {
	return constant.PriorityBoss
}

func (s *BossSystem) Update() {
	now := s.world.Time.GameTime
	b := &s.world.Boss

	if !b.Active {
		s.TrySpawn(now)
		return
	}

	s.SwitchState(now)
	if b.State == component.BossMoving {
		s.Move(s.world.Time.DeltaTime)
	}
	s.TryFire(now)
	s.CheckPlayerContact()
}

// TrySpawn activates the boss once the player's score reaches the threshold
func (s *BossSystem) TrySpawn(now float64) bool {
	b := &s.world.Boss
	if b.Active || s.world.Player.Score < b.NextSpawnScore {
		return false
	}

	bt := s.world.Config.BossType()
	b.Pos = s.world.SpawnPoint(bt.Size)
	b.Desired = s.world.Player.Pos
	b.State = component.BossMoving
	b.Active = true
	b.Defeated = false
	b.Health = bt.MaxHealth
	b.ShotsLeft = 0
	b.LastShot = component.NeverFired
	b.LastSwitch = now

	s.world.Log.Info().
		Int("score", s.world.Player.Score).
		Int("threshold", b.NextSpawnScore).
		Msg("boss spawned")
	s.world.Emit(event.EventBossSpawned, s.payload())
	return true
}

// SwitchState flips the phase once its duration has elapsed
// Entering Stationary arms a burst; entering Moving re-acquires the player
func (s *BossSystem) SwitchState(now float64) bool {
	b := &s.world.Boss
	bt := s.world.Config.BossType()

	switch b.State {
	case component.BossMoving:
		if now-b.LastSwitch < bt.MovingDuration {
			return false
		}
		b.State = component.BossStationary
		b.ShotsLeft = bt.ShotsPerBurst
		b.LastShot = component.NeverFired
	case component.BossStationary:
		if now-b.LastSwitch < bt.StationaryDuration {
			return false
		}
		b.State = component.BossMoving
		b.Desired = s.world.Player.Pos
	}
	b.LastSwitch = now

	s.world.Log.Debug().Str("state", b.State.String()).Int("health", b.Health).Msg("boss state changed")
	s.world.Emit(event.EventBossStateChanged, s.payload())
	return true
}

// Move steps toward the desired position, stopping on it rather than overshooting
func (s *BossSystem) Move(dt float64) {
	b := &s.world.Boss
	step := s.world.Config.BossType().Speed * dt
	if vmath.Distance(b.Pos, b.Desired) <= step {
		b.Pos = b.Desired
		return
	}
	b.Pos = b.Pos.Add(vmath.Direction(b.Pos, b.Desired).Scale(step))
}

// TryFire shoots at the player while the armed burst has shots and the cooldown has elapsed
// Fires in either phase; only entering Stationary re-arms
func (s *BossSystem) TryFire(now float64) bool {
	b := &s.world.Boss
	bt := s.world.Config.BossType()
	if b.ShotsLeft <= 0 || now-b.LastShot < 1/bt.FireRate {
		return false
	}
	if !spawnProjectile(s.world, b.Pos, s.world.Player.Pos, bt.Shot, component.AllegianceHostile) {
		return false
	}
	b.ShotsLeft--
	b.LastShot = now
	return true
}

// CheckPlayerContact ends the encounter without rewards and defeats the player
func (s *BossSystem) CheckPlayerContact() bool {
	b := &s.world.Boss
	p := s.world.Player
	if !vmath.CirclesOverlap(b.Pos, s.world.Config.BossType().Size, p.Pos, p.Radius) {
		return false
	}
	b.Active = false
	b.Defeated = false
	defeatPlayer(s.world, "boss")
	return true
}

func (s *BossSystem) payload() *event.BossPayload {
	b := &s.world.Boss
	return &event.BossPayload{
		State:          b.State.String(),
		Health:         b.Health,
		NextSpawnScore: b.NextSpawnScore,
	}
}
