package system

import (
	"sync/atomic"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/constant"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/status"
)

// SpawnSystem spends time-accumulated credits on procedurally composed enemy waves
type SpawnSystem struct {
	world *engine.World

	// Session timing, in game seconds
	initTime  float64
	lastSpawn float64
	interval  float64

	// spent is cumulative wave cost this session
	spent int

	statCredits *status.AtomicFloat
	statSpent   *atomic.Int64
	statWaves   *atomic.Int64
}

func NewSpawnSystem(world *engine.World) engine.System {
	s := &SpawnSystem{world: world}

	s.statCredits = world.Status.Floats.Get("spawn.credits")
	s.statSpent = world.Status.Ints.Get("spawn.spent")
	s.statWaves = world.Status.Ints.Get("spawn.waves")

	s.Init()
	return s
}

// Init starts the credit clock at the current game time
func (s *SpawnSystem) Init() {
	now := s.world.Time.GameTime
	s.initTime = now
	s.lastSpawn = now
	s.spent = 0
	s.interval = s.drawInterval()

	s.statCredits.Set(s.Available(now))
	s.statSpent.Store(0)
	s.statWaves.Store(0)
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return constant.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	s.TrySpawn(s.world.Time.GameTime)
}

// Available is the credit curve at now minus everything already spent
func (s *SpawnSystem) Available(now float64) float64 {
	return s.world.Config.Spawner.Credits(now-s.initTime) - float64(s.spent)
}

// Spent returns cumulative wave cost this session
func (s *SpawnSystem) Spent() int {
	return s.spent
}

// Interval returns the current randomized gap between waves
func (s *SpawnSystem) Interval() float64 {
	return s.interval
}

// TrySpawn runs one spawn cycle and returns the number of enemies materialised
// Available credits are published every call so diagnostics track the curve between waves
func (s *SpawnSystem) TrySpawn(now float64) int {
	available := s.Available(now)
	s.statCredits.Set(available)

	if now-s.lastSpawn < s.interval {
		return 0
	}

	plan, cost := s.PlanWave(available)
	if len(plan) == 0 {
		return 0
	}

	spawned := s.materialize(plan)

	s.spent += cost
	s.lastSpawn = now
	s.interval = s.drawInterval()

	s.statSpent.Store(int64(s.spent))
	s.statWaves.Add(1)
	s.statCredits.Set(s.Available(now))

	counts := make(map[string]int)
	for _, id := range plan {
		counts[s.world.Config.EnemyType(id).Name]++
	}
	s.world.Log.Debug().
		Int("wave_size", len(plan)).
		Int("wave_cost", cost).
		Float64("credits", available).
		Interface("types", counts).
		Msg("wave spawned")
	s.world.Emit(event.EventWaveSpawned, &event.WaveSpawnedPayload{
		Size:    len(plan),
		Cost:    cost,
		Credits: available,
		Types:   counts,
	})

	return spawned
}

// PlanWave composes a wave whose total cost never exceeds available
// Returns nil when even a minimum-size wave of the cheapest type is unaffordable
func (s *SpawnSystem) PlanWave(available float64) ([]component.EnemyTypeID, int) {
	cfg := s.world.Config
	rng := s.world.Rand
	cheapestID := cfg.Cheapest()
	strongestID := cfg.Strongest()
	cheapest := cfg.EnemyType(cheapestID).Cost
	minSize := cfg.Spawner.MinimumWaveSize

	if float64(minSize*cheapest) > available {
		return nil, 0
	}

	plan := make([]component.EnemyTypeID, minSize)
	for i := range plan {
		plan[i] = cheapestID
	}
	cost := minSize * cheapest

	affordable := func(extra int) bool {
		return float64(cost+extra) <= available
	}
	extend := func() {
		for affordable(cheapest) && rng.Chance(cfg.Spawner.WaveExtendProbability) {
			plan = append(plan, cheapestID)
			cost += cheapest
		}
	}

	extend()

	// Strengthen until another cheapest enemy no longer fits
	for affordable(cheapest) {
		if rng.CoinFlip() {
			for i, id := range plan {
				if id >= strongestID {
					continue
				}
				target := component.EnemyTypeID(rng.IntRange(int(id), int(strongestID)))
				if target == id {
					continue
				}
				delta := cfg.EnemyType(target).Cost - cfg.EnemyType(id).Cost
				if !affordable(delta) {
					continue
				}
				plan[i] = target
				cost += delta
			}
			continue
		}

		plan = append(plan, cheapestID)
		cost += cheapest
		extend()
	}

	return plan, cost
}

// materialize places the planned enemies off-screen, steering at the player's current position
func (s *SpawnSystem) materialize(plan []component.EnemyTypeID) int {
	w := s.world
	target := w.Player.Pos
	spawned := 0
	for _, id := range plan {
		et := w.Config.EnemyType(id)
		radius := w.Rand.FloatRange(et.MinSize, et.MaxSize)
		e := component.Enemy{
			Pos:     w.SpawnPoint(radius),
			Desired: target,
			Speed:   w.Rand.FloatRange(et.MinSpeed, et.MaxSpeed),
			Radius:  radius,
			Type:    id,
		}
		if _, err := w.Enemies.Add(e); err != nil {
			w.Log.Error().Err(err).Str("type", et.Name).Msg("enemy allocation skipped")
			continue
		}
		spawned++
	}
	return spawned
}

func (s *SpawnSystem) drawInterval() float64 {
	sp := s.world.Config.Spawner
	return s.world.Rand.FloatRange(sp.MinSpawnInterval, sp.MaxSpawnInterval)
}
