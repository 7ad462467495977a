package system

import (
	"testing"

	"github.com/lixenwraith/arena-fighter/event"
)

// Flat credit curve so available credits equal initial_credits at any time
func flatCredits(initial string) string {
	return flatArena + `
spawner:
  credit_multiplier: 0
  credit_exponent: 1
  initial_credits: ` + initial + `
  min_spawn_interval: 0
  max_spawn_interval: 0
  minimum_wave_size: 3
  wave_extend_probability: 0.5
  retarget_interval: 0.25
  retarget_probability: 0.1
`
}

func TestSpawnAffordabilityThreshold(t *testing.T) {
	tests := []struct {
		name    string
		credits string
		spawn   bool
	}{
		{"2.9 credits below 3 x grunt", "2.9", false},
		{"3.0 credits buys minimum wave", "3.0", true},
	}

	for _, tt := range tests {
		w := newTestWorld(t, flatCredits(tt.credits))
		s := NewSpawnSystem(w).(*SpawnSystem)

		n := s.TrySpawn(0)
		if tt.spawn {
			if n < 3 {
				t.Errorf("%s: spawned %d, want at least 3", tt.name, n)
			}
			if w.Enemies.Len() != n {
				t.Errorf("%s: Enemies.Len() = %d, want %d", tt.name, w.Enemies.Len(), n)
			}
		} else {
			if n != 0 || w.Enemies.Len() != 0 || s.Spent() != 0 {
				t.Errorf("%s: spawned %d spent %d, want nothing", tt.name, n, s.Spent())
			}
		}
	}
}

func TestPlanWaveNeverOverspends(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewSpawnSystem(w).(*SpawnSystem)
	cfg := w.Config
	minSize := cfg.Spawner.MinimumWaveSize

	for _, available := range []float64{3, 3.5, 7, 12.25, 40, 150} {
		for trial := 0; trial < 200; trial++ {
			plan, cost := s.PlanWave(available)
			if len(plan) < minSize {
				t.Fatalf("available %v: wave size %d below minimum %d", available, len(plan), minSize)
			}
			sum := 0
			for _, id := range plan {
				sum += cfg.EnemyType(id).Cost
			}
			if sum != cost {
				t.Fatalf("available %v: reported cost %d, plan sums to %d", available, cost, sum)
			}
			if float64(cost) > available {
				t.Fatalf("available %v: overspent with cost %d", available, cost)
			}
			// Loop only stops once another cheapest enemy no longer fits
			cheapest := cfg.EnemyType(cfg.Cheapest()).Cost
			if float64(cost+cheapest) <= available {
				t.Fatalf("available %v: stopped at cost %d with room left", available, cost)
			}
		}
	}
}

func TestPlanWaveUpgradesWithBudget(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewSpawnSystem(w).(*SpawnSystem)

	upgraded := false
	for trial := 0; trial < 100 && !upgraded; trial++ {
		plan, _ := s.PlanWave(60)
		for _, id := range plan {
			if id != w.Config.Cheapest() {
				upgraded = true
			}
		}
	}
	if !upgraded {
		t.Error("no wave with 60 credits contained a stronger type")
	}
}

func TestSpawnIntervalGate(t *testing.T) {
	w := newTestWorld(t, flatArena+`
spawner:
  initial_credits: 100
  min_spawn_interval: 2
  max_spawn_interval: 2
`)
	s := NewSpawnSystem(w).(*SpawnSystem)

	if n := s.TrySpawn(1.99); n != 0 {
		t.Errorf("TrySpawn(1.99) = %d, want 0 before the interval", n)
	}
	if n := s.TrySpawn(2); n == 0 {
		t.Error("TrySpawn(2) = 0, want a wave at the interval")
	}
	if n := s.TrySpawn(3); n != 0 {
		t.Errorf("TrySpawn(3) = %d, want 0 before the next interval", n)
	}
}

func TestSpawnCreditsPublishedBetweenWaves(t *testing.T) {
	w := newTestWorld(t, flatArena+`
spawner:
  min_spawn_interval: 100
  max_spawn_interval: 100
`)
	s := NewSpawnSystem(w).(*SpawnSystem)
	stat := w.Status.Floats.Get("spawn.credits")

	prev := stat.Get()
	for _, now := range []float64{1, 5, 20} {
		if n := s.TrySpawn(now); n != 0 {
			t.Fatalf("TrySpawn(%v) = %d, want 0 before the interval", now, n)
		}
		got := stat.Get()
		if got != s.Available(now) {
			t.Errorf("spawn.credits at %v = %v, want %v", now, got, s.Available(now))
		}
		if got <= prev {
			t.Errorf("spawn.credits at %v = %v, want growth past %v", now, got, prev)
		}
		prev = got
	}
}

func TestSpawnBookkeepingAndEvent(t *testing.T) {
	w := newTestWorld(t, flatCredits("10"))
	s := NewSpawnSystem(w).(*SpawnSystem)

	n := s.TrySpawn(0)
	if n == 0 {
		t.Fatal("expected a wave")
	}
	if s.Spent() < 3 || s.Spent() > 10 {
		t.Errorf("Spent() = %d, want within [3, 10]", s.Spent())
	}
	if got := s.Available(0); got != 10-float64(s.Spent()) {
		t.Errorf("Available(0) = %v, want %v", got, 10-float64(s.Spent()))
	}
	if got := w.Status.Ints.Get("spawn.waves").Load(); got != 1 {
		t.Errorf("spawn.waves = %d, want 1", got)
	}

	events := w.Events.Consume()
	if len(events) != 1 || events[0].Type != event.EventWaveSpawned {
		t.Fatalf("events = %v, want one WaveSpawned", events)
	}
	payload := events[0].Payload.(*event.WaveSpawnedPayload)
	if payload.Size != n || payload.Cost != s.Spent() {
		t.Errorf("payload size/cost = %d/%d, want %d/%d", payload.Size, payload.Cost, n, s.Spent())
	}
}

func TestSpawnedEnemiesFollowTypeRanges(t *testing.T) {
	w := newTestWorld(t, flatCredits("60"))
	s := NewSpawnSystem(w).(*SpawnSystem)
	s.TrySpawn(0)

	for _, e := range w.Enemies.All() {
		et := w.Config.EnemyType(e.Type)
		if e.Speed < et.MinSpeed || e.Speed > et.MaxSpeed {
			t.Errorf("%s speed %v outside [%v, %v]", et.Name, e.Speed, et.MinSpeed, et.MaxSpeed)
		}
		if e.Radius < et.MinSize || e.Radius > et.MaxSize {
			t.Errorf("%s radius %v outside [%v, %v]", et.Name, e.Radius, et.MinSize, et.MaxSize)
		}
		if e.Desired != w.Player.Pos {
			t.Errorf("Desired = %v, want player position %v", e.Desired, w.Player.Pos)
		}
		// No camera: spawns sit on the arena perimeter
		onEdge := e.Pos.X == w.Arena.Min.X || e.Pos.X == w.Arena.Max.X ||
			e.Pos.Y == w.Arena.Min.Y || e.Pos.Y == w.Arena.Max.Y
		if !onEdge {
			t.Errorf("spawn %v not on arena perimeter", e.Pos)
		}
	}
}

func TestSpentNeverExceedsCreditCurve(t *testing.T) {
	w := newTestWorld(t, flatArena+`
spawner:
  min_spawn_interval: 0.5
  max_spawn_interval: 1
`)
	s := NewSpawnSystem(w).(*SpawnSystem)

	for now := 0.0; now < 120; now += 0.05 {
		s.TrySpawn(now)
		w.Enemies.Clear()
		if limit := w.Config.Spawner.Credits(now); float64(s.Spent()) > limit {
			t.Fatalf("t=%.2f: spent %d exceeds credits %v", now, s.Spent(), limit)
		}
	}
	if s.Spent() == 0 {
		t.Error("no wave spawned in two minutes")
	}
}
