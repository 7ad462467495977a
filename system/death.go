package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/arena-fighter/constant"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
)

// DeathSystem resolves boss defeat after the frame's hits have landed
// Player defeat is only flagged here; the session consumes the flag
type DeathSystem struct {
	world *engine.World

	statActive *atomic.Bool
	statHealth *atomic.Int64
	statKilled *atomic.Int64
}

func NewDeathSystem(world *engine.World) engine.System {
	s := &DeathSystem{world: world}

	s.statActive = world.Status.Bools.Get("boss.active")
	s.statHealth = world.Status.Ints.Get("boss.health")
	s.statKilled = world.Status.Ints.Get("boss.defeated")

	s.Init()
	return s
}

func (s *DeathSystem) Init() {
	s.statActive.Store(false)
	s.statHealth.Store(0)
	s.statKilled.Store(0)
}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return constant.PriorityDeath
}

func (s *DeathSystem) Update() {
	s.ResolveBoss()

	b := &s.world.Boss
	s.statActive.Store(b.Active)
	s.statHealth.Store(int64(b.Health))
}

// ResolveBoss grants rewards when health is depleted and raises the next spawn threshold
// The threshold grows from the current score so the boss cannot re-trigger at once
func (s *DeathSystem) ResolveBoss() bool {
	b := &s.world.Boss
	if !b.Active || b.Health > 0 {
		return false
	}

	bt := s.world.Config.BossType()
	p := s.world.Player
	p.Score += bt.RewardScore
	p.BossPoints += bt.RewardPoints

	b.NextSpawnScore = p.Score + int(math.Ceil(float64(b.NextSpawnScore)*bt.ThresholdGrowth))
	b.Active = false
	b.Defeated = true
	b.Health = 0
	s.statKilled.Add(1)

	s.world.Log.Info().
		Int("score", p.Score).
		Int("boss_points", p.BossPoints).
		Int("next_spawn_score", b.NextSpawnScore).
		Msg("boss defeated")
	s.world.Emit(event.EventBossDefeated, &event.BossPayload{
		State:          b.State.String(),
		Health:         0,
		NextSpawnScore: b.NextSpawnScore,
	})
	return true
}
