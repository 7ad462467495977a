package system

import (
	"testing"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// stepBoss advances game time and runs one boss update
func stepBoss(w *engine.World, s engine.System, now, dt float64) {
	w.Clock.Set(now)
	w.Time = engine.TimeResource{GameTime: now, DeltaTime: dt}
	s.Update()
}

func TestBossSpawnsOnceAtThreshold(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewBossSystem(w).(*BossSystem)
	bt := w.Config.BossType()

	w.Player.Score = bt.FirstSpawnScore - 1
	stepBoss(w, s, 1, 0.016)
	if w.Boss.Active {
		t.Fatal("boss spawned below threshold")
	}

	w.Player.Score = bt.FirstSpawnScore
	stepBoss(w, s, 2, 0.016)
	if !w.Boss.Active {
		t.Fatal("boss did not spawn at threshold")
	}
	if w.Boss.State != component.BossMoving {
		t.Errorf("State = %v, want Moving", w.Boss.State)
	}
	if w.Boss.Health != bt.MaxHealth {
		t.Errorf("Health = %d, want %d", w.Boss.Health, bt.MaxHealth)
	}
	if w.Boss.Desired != w.Player.Pos {
		t.Errorf("Desired = %v, want player %v", w.Boss.Desired, w.Player.Pos)
	}

	if s.TrySpawn(2.1) {
		t.Error("TrySpawn() on an active boss should be a no-op")
	}

	spawns := 0
	for _, ev := range w.Events.Consume() {
		if ev.Type == event.EventBossSpawned {
			spawns++
		}
	}
	if spawns != 1 {
		t.Errorf("BossSpawned events = %d, want 1", spawns)
	}
}

func TestBossPhaseCycle(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewBossSystem(w).(*BossSystem)
	bt := w.Config.BossType()

	// Park the player far from the spawn edge so contact cannot end the encounter
	w.Player.Pos = vmath.V2(400, 300)
	w.Player.Score = bt.FirstSpawnScore
	stepBoss(w, s, 10, 0)
	w.Boss.Pos = vmath.V2(60, 60)
	w.Boss.Desired = w.Boss.Pos

	stepBoss(w, s, 10+bt.MovingDuration-0.01, 0.01)
	if w.Boss.State != component.BossMoving {
		t.Fatalf("State = %v before moving_duration, want Moving", w.Boss.State)
	}

	stepBoss(w, s, 10+bt.MovingDuration, 0.01)
	if w.Boss.State != component.BossStationary {
		t.Fatalf("State = %v after moving_duration, want Stationary", w.Boss.State)
	}
	// The burst is armed and the first shot leaves on the switching frame
	if w.Boss.ShotsLeft != bt.ShotsPerBurst-1 {
		t.Errorf("ShotsLeft = %d, want %d", w.Boss.ShotsLeft, bt.ShotsPerBurst-1)
	}

	stationaryAt := w.Boss.LastSwitch
	w.Player.Pos = vmath.V2(500, 350)
	stepBoss(w, s, stationaryAt+bt.StationaryDuration, 0.01)
	if w.Boss.State != component.BossMoving {
		t.Fatalf("State = %v after stationary_duration, want Moving", w.Boss.State)
	}
	if w.Boss.Desired != w.Player.Pos {
		t.Errorf("Desired = %v, want re-acquired player %v", w.Boss.Desired, w.Player.Pos)
	}
}

func TestBossSwitchArmsFullBurst(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewBossSystem(w).(*BossSystem)
	bt := w.Config.BossType()

	w.Boss = component.Boss{Active: true, State: component.BossMoving, Health: bt.MaxHealth}
	if !s.SwitchState(bt.MovingDuration) {
		t.Fatal("SwitchState() = false at moving_duration")
	}
	if w.Boss.ShotsLeft != bt.ShotsPerBurst {
		t.Errorf("ShotsLeft = %d, want %d", w.Boss.ShotsLeft, bt.ShotsPerBurst)
	}
	if w.Boss.LastShot != component.NeverFired {
		t.Errorf("LastShot = %v, want armed for immediate fire", w.Boss.LastShot)
	}
}

func TestBossHoldsPositionWhenStationary(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewBossSystem(w).(*BossSystem)

	w.Boss = component.Boss{
		Active:     true,
		State:      component.BossStationary,
		Health:     10,
		Pos:        vmath.V2(100, 100),
		Desired:    vmath.V2(300, 100),
		LastSwitch: 0,
	}
	stepBoss(w, s, 0.5, 0.1)
	if w.Boss.Pos != vmath.V2(100, 100) {
		t.Errorf("Pos = %v, stationary boss moved", w.Boss.Pos)
	}

	w.Boss.State = component.BossMoving
	w.Boss.LastSwitch = 0.5
	stepBoss(w, s, 0.6, 0.1)
	want := vmath.V2(100+w.Config.BossType().Speed*0.1, 100)
	if vmath.Distance(w.Boss.Pos, want) > 1e-9 {
		t.Errorf("Pos = %v, want %v", w.Boss.Pos, want)
	}
}

func TestBossBurstFireCooldown(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewBossSystem(w).(*BossSystem)
	bt := w.Config.BossType()

	w.Boss = component.Boss{
		Active:    true,
		State:     component.BossMoving,
		Pos:       vmath.V2(100, 100),
		ShotsLeft: 2,
		LastShot:  component.NeverFired,
	}
	cooldown := 1 / bt.FireRate

	if !s.TryFire(1) {
		t.Fatal("armed burst should fire while Moving")
	}
	if s.TryFire(1 + cooldown/2) {
		t.Error("fired inside cooldown")
	}
	if !s.TryFire(1 + cooldown) {
		t.Error("did not fire after cooldown")
	}
	if s.TryFire(10) {
		t.Error("fired with an empty burst")
	}
	if w.Boss.ShotsLeft != 0 {
		t.Errorf("ShotsLeft = %d, want 0", w.Boss.ShotsLeft)
	}

	for _, p := range w.Projectiles.All() {
		if p.Allegiance != component.AllegianceHostile {
			t.Errorf("Allegiance = %v, want hostile", p.Allegiance)
		}
		if !isUnit(p.Dir) {
			t.Errorf("|Dir| = %v, want 1", p.Dir.Len())
		}
	}
}

func TestBossPlayerContact(t *testing.T) {
	w := newTestWorld(t, flatArena)
	s := NewBossSystem(w).(*BossSystem)

	score := 12
	w.Player.Score = score
	w.Boss = component.Boss{Active: true, Health: 5, Pos: w.Player.Pos, NextSpawnScore: 40}

	if !s.CheckPlayerContact() {
		t.Fatal("CheckPlayerContact() = false with overlapping boss")
	}
	if w.Boss.Active || w.Boss.Defeated {
		t.Errorf("Active=%v Defeated=%v, want inactive without defeat", w.Boss.Active, w.Boss.Defeated)
	}
	if !w.Player.Defeated {
		t.Error("player should be defeated")
	}
	if w.Player.Score != score || w.Player.BossPoints != 0 {
		t.Errorf("rewards granted on contact: score %d points %d", w.Player.Score, w.Player.BossPoints)
	}
}

func TestDeathResolvesBossDefeat(t *testing.T) {
	w := newTestWorld(t, flatArena)
	d := NewDeathSystem(w).(*DeathSystem)
	bt := w.Config.BossType()

	w.Player.Score = 45
	w.Boss = component.Boss{Active: true, Health: 1, NextSpawnScore: 40}

	if d.ResolveBoss() {
		t.Fatal("ResolveBoss() with health left should be a no-op")
	}

	w.Boss.Health = 0
	if !d.ResolveBoss() {
		t.Fatal("ResolveBoss() = false at zero health")
	}

	wantScore := 45 + bt.RewardScore
	if w.Player.Score != wantScore {
		t.Errorf("Score = %d, want %d", w.Player.Score, wantScore)
	}
	if w.Player.BossPoints != bt.RewardPoints {
		t.Errorf("BossPoints = %d, want %d", w.Player.BossPoints, bt.RewardPoints)
	}
	// 55 + ceil(40 * 1.5)
	if w.Boss.NextSpawnScore != wantScore+60 {
		t.Errorf("NextSpawnScore = %d, want %d", w.Boss.NextSpawnScore, wantScore+60)
	}
	if w.Boss.Active || !w.Boss.Defeated {
		t.Errorf("Active=%v Defeated=%v, want defeated", w.Boss.Active, w.Boss.Defeated)
	}
	if w.Boss.NextSpawnScore <= w.Player.Score {
		t.Error("next threshold must exceed the current score")
	}

	if d.ResolveBoss() {
		t.Error("ResolveBoss() on an inactive boss should be a no-op")
	}
}

func TestBossDefeatedByHits(t *testing.T) {
	w := newTestWorld(t, flatArena+`
boss:
  max_health: 3
`)
	RegisterAll(w)
	w.Reset()

	w.Boss = component.Boss{Active: true, State: component.BossMoving, Health: 3, Pos: vmath.V2(650, 450), NextSpawnScore: 40}
	w.Boss.Desired = w.Boss.Pos
	w.Boss.LastSwitch = 0

	for i := 0; i < 3; i++ {
		w.Projectiles.Add(playerShot(w.Boss.Pos))
		w.Step(0.001, engine.Input{})
	}

	if w.Boss.Active {
		t.Fatalf("boss still active with health %d", w.Boss.Health)
	}
	if !w.Boss.Defeated {
		t.Error("Defeated = false after health depletion")
	}
	if w.Player.BossPoints != w.Config.BossType().RewardPoints {
		t.Errorf("BossPoints = %d, want %d", w.Player.BossPoints, w.Config.BossType().RewardPoints)
	}
	if got := w.Status.Bools.Get("boss.active").Load(); got {
		t.Error("boss.active status still true")
	}
}
