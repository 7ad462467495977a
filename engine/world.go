package engine

import (
	"sort"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/event"
	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/status"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// System is a per-frame update step
type System interface {
	Name() string
	Priority() int // Lower values run first
	Init()         // Session reset
	Update()
}

// TimeResource is the frame timing snapshot systems read
type TimeResource struct {
	GameTime  float64 // Seconds since clock start
	DeltaTime float64 // Seconds since previous frame
	Frame     int64
}

// Input is the per-frame player intent the core consumes
type Input struct {
	Move     vmath.Vec2 // Unit-or-zero direction
	FireHeld bool
	Aim      vmath.Vec2 // World-space aim point
}

// World owns all simulation state for the lifetime of the program
// Single-threaded: only the update thread touches it; renderers read after Step returns
type World struct {
	Config *config.Config
	Clock  *GameClock
	Time   TimeResource
	Input  Input
	Rand   *vmath.Rand
	Log    zerolog.Logger
	Status *status.Registry
	Events *event.Queue

	Arena       vmath.Rect
	Camera      *Camera // nil when the arena is the screen
	Player      *component.Player
	Enemies     *Pool[component.Enemy]
	Projectiles *Pool[component.Projectile]
	Boss        component.Boss

	systems []System

	statEnemyLive      *atomic.Int64
	statEnemyCap       *atomic.Int64
	statProjectileLive *atomic.Int64
	statProjectileCap  *atomic.Int64
}

// Option customises a World at construction
type Option func(*World)

func WithLogger(log zerolog.Logger) Option {
	return func(w *World) { w.Log = log }
}

func WithSeed(seed uint64) Option {
	return func(w *World) { w.Rand = vmath.NewRand(seed) }
}

func WithStatus(r *status.Registry) Option {
	return func(w *World) { w.Status = r }
}

// NewWorld builds the world from an immutable config
// The player is created here with base stats and survives every session reset
func NewWorld(cfg *config.Config, opts ...Option) *World {
	w := &World{
		Config: cfg,
		Clock:  NewGameClock(),
		Rand:   vmath.NewRand(cfg.Seed),
		Log:    zerolog.Nop(),
		Status: status.NewRegistry(),
		Events: event.NewQueue(),
		Arena:  cfg.ArenaRect(),
		Player: &component.Player{
			PlayerStats: cfg.PlayerStats(),
			Color:       cfg.Player.Color.Color,
			Invincible:  cfg.Debug.Invincible,
		},
		Enemies:     NewPool[component.Enemy](cfg.Pools.Enemies),
		Projectiles: NewPool[component.Projectile](cfg.Pools.Projectiles),
	}
	for _, opt := range opts {
		opt(w)
	}

	if cfg.Camera.Enabled {
		w.Camera = NewCamera(cfg.Screen.Width, cfg.Screen.Height, w.Arena)
	}

	w.statEnemyLive = w.Status.Ints.Get("enemy.live")
	w.statEnemyCap = w.Status.Ints.Get("enemy.capacity")
	w.statProjectileLive = w.Status.Ints.Get("projectile.live")
	w.statProjectileCap = w.Status.Ints.Get("projectile.capacity")

	w.Player.ResetSession(cfg.PlayerStart())
	w.Boss = component.Boss{NextSpawnScore: cfg.BossType().FirstSpawnScore}
	w.followPlayer()
	w.publishStats()
	return w
}

// AddSystem registers a system, keeping execution order by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Reset clears transient state for a new session; permanent player stats are kept
func (w *World) Reset() {
	w.Enemies.Clear()
	w.Projectiles.Clear()
	w.Player.ResetSession(w.Config.PlayerStart())
	w.Boss = component.Boss{NextSpawnScore: w.Config.BossType().FirstSpawnScore}
	w.Input = Input{}
	w.Time = TimeResource{GameTime: w.Clock.Now(), Frame: w.Clock.Frame()}
	for _, s := range w.systems {
		s.Init()
	}
	w.followPlayer()
	w.publishStats()
}

// Step advances the clock by dt and runs every system once
func (w *World) Step(dt float64, in Input) {
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	if dt < 0 {
		dt = 0
	}
	now := w.Clock.Advance(dt)
	w.Time = TimeResource{GameTime: now, DeltaTime: dt, Frame: w.Clock.Frame()}
	w.Input = in

	for _, s := range w.systems {
		s.Update()
	}

	w.followPlayer()
	w.publishStats()
}

// SpawnPoint picks an off-screen point: uniform in the arena outside the viewport when a
// camera is present, otherwise on the arena perimeter
func (w *World) SpawnPoint(radius float64) vmath.Vec2 {
	if w.Camera != nil {
		for i := 0; i < parameter.OffscreenSpawnAttempts; i++ {
			p := vmath.V2(
				w.Rand.FloatRange(w.Arena.Min.X, w.Arena.Max.X),
				w.Rand.FloatRange(w.Arena.Min.Y, w.Arena.Max.Y),
			)
			if !w.Camera.Visible(p, radius) {
				return p
			}
		}
	}
	return w.Arena.PointOnPerimeter(w.Rand.FloatRange(0, w.Arena.Perimeter()))
}

// InBounds reports whether a circle is still at least partly inside the arena
func (w *World) InBounds(p vmath.Vec2, radius float64) bool {
	return p.X+radius >= w.Arena.Min.X && p.X-radius <= w.Arena.Max.X &&
		p.Y+radius >= w.Arena.Min.Y && p.Y-radius <= w.Arena.Max.Y
}

// Emit queues a gameplay event stamped with the current game time
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Emit(t, payload, w.Time.GameTime)
}

func (w *World) followPlayer() {
	if w.Camera != nil {
		w.Camera.Follow(w.Player.Pos)
	}
}

func (w *World) publishStats() {
	w.statEnemyLive.Store(int64(w.Enemies.Len()))
	w.statEnemyCap.Store(int64(w.Enemies.Cap()))
	w.statProjectileLive.Store(int64(w.Projectiles.Len()))
	w.statProjectileCap.Store(int64(w.Projectiles.Cap()))
}
