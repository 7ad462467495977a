// Package config builds the immutable game configuration from YAML
package config

import (
	"math"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Size is a width/height pair in world units
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Range is an inclusive float interval
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type CameraConfig struct {
	Enabled bool `yaml:"enabled"`
}

type DebugConfig struct {
	Invincible bool `yaml:"invincible"`
}

type ProjectileConfig struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
	Color Color   `yaml:"color"`
}

type PlayerConfig struct {
	Start      vmath.Vec2       `yaml:"start"`
	Speed      float64          `yaml:"speed"`
	Size       float64          `yaml:"size"`
	Color      Color            `yaml:"color"`
	FireRate   float64          `yaml:"fire_rate"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

// PoolConfig holds initial pool capacities; pools double when full
type PoolConfig struct {
	Enemies     int `yaml:"enemies"`
	Projectiles int `yaml:"projectiles"`
}

// SpawnerConfig drives the credit economy and wave composition
type SpawnerConfig struct {
	CreditMultiplier      float64 `yaml:"credit_multiplier"`
	CreditExponent        float64 `yaml:"credit_exponent"`
	InitialCredits        float64 `yaml:"initial_credits"`
	MinSpawnInterval      float64 `yaml:"min_spawn_interval"`
	MaxSpawnInterval      float64 `yaml:"max_spawn_interval"`
	MinimumWaveSize       int     `yaml:"minimum_wave_size"`
	WaveExtendProbability float64 `yaml:"wave_extend_probability"`
	RetargetInterval      float64 `yaml:"retarget_interval"`
	RetargetProbability   float64 `yaml:"retarget_probability"`
}

// Credits is the difficulty curve: multiplier * t^exponent + initial
// Non-decreasing in t for non-negative multiplier and exponent
func (s *SpawnerConfig) Credits(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return s.CreditMultiplier*math.Pow(elapsed, s.CreditExponent) + s.InitialCredits
}

type EnemyTypeConfig struct {
	Name      string `yaml:"name"`
	Cost      int    `yaml:"cost"`
	Speed     Range  `yaml:"speed"`
	Size      Range  `yaml:"size"`
	Color     Color  `yaml:"color"`
	TurnsInto string `yaml:"turns_into"`
}

type BossConfig struct {
	MaxHealth          int              `yaml:"max_health"`
	Speed              float64          `yaml:"speed"`
	Size               float64          `yaml:"size"`
	Color              Color            `yaml:"color"`
	FireRate           float64          `yaml:"fire_rate"`
	ShotsPerBurst      int              `yaml:"shots_per_burst"`
	Projectile         ProjectileConfig `yaml:"projectile"`
	MovingDuration     float64          `yaml:"moving_duration"`
	StationaryDuration float64          `yaml:"stationary_duration"`
	RewardScore        int              `yaml:"reward_score"`
	RewardPoints       int              `yaml:"reward_points"`
	FirstSpawnScore    int              `yaml:"first_spawn_score"`
	ThresholdGrowth    float64          `yaml:"threshold_growth"`
}

type UpgradeConfig struct {
	Stat      string  `yaml:"stat"`
	Cost      int     `yaml:"cost"`
	Increment float64 `yaml:"increment"`
}

type ShopConfig struct {
	CostFactor     float64         `yaml:"cost_factor"`
	ScoreValue     int             `yaml:"score_value"`
	BossPointValue int             `yaml:"boss_point_value"`
	Upgrades       []UpgradeConfig `yaml:"upgrades"`
}

// Config is read-only after Load; share it by pointer
type Config struct {
	Seed       uint64            `yaml:"seed"`
	Screen     Size              `yaml:"screen"`
	Arena      Size              `yaml:"arena"`
	Camera     CameraConfig      `yaml:"camera"`
	Debug      DebugConfig       `yaml:"debug"`
	Player     PlayerConfig      `yaml:"player"`
	Pools      PoolConfig        `yaml:"pools"`
	Spawner    SpawnerConfig     `yaml:"spawner"`
	EnemyTypes []EnemyTypeConfig `yaml:"enemy_types"`
	Boss       BossConfig        `yaml:"boss"`
	Shop       ShopConfig        `yaml:"shop"`

	// Resolved tables, populated by resolve
	enemyTypes []component.EnemyType
	bossType   component.BossType
	upgrades   []ResolvedUpgrade
}

// ResolvedUpgrade is an upgrade entry with its stat name resolved
type ResolvedUpgrade struct {
	Stat      component.StatID
	Cost      int
	Increment float64
}

// EnemyTypeCount returns the number of enemy archetypes
func (c *Config) EnemyTypeCount() int { return len(c.enemyTypes) }

// EnemyType returns the archetype for id, ordered by ascending cost
func (c *Config) EnemyType(id component.EnemyTypeID) *component.EnemyType {
	return &c.enemyTypes[id]
}

// EnemyTypeByName looks up an archetype ID by config name
func (c *Config) EnemyTypeByName(name string) (component.EnemyTypeID, bool) {
	for i := range c.enemyTypes {
		if c.enemyTypes[i].Name == name {
			return component.EnemyTypeID(i), true
		}
	}
	return component.NoEnemyType, false
}

// Cheapest is always the first entry after sorting
func (c *Config) Cheapest() component.EnemyTypeID { return 0 }

// Strongest is the most expensive entry
func (c *Config) Strongest() component.EnemyTypeID {
	return component.EnemyTypeID(len(c.enemyTypes) - 1)
}

func (c *Config) BossType() *component.BossType { return &c.bossType }

func (c *Config) Upgrades() []ResolvedUpgrade { return c.upgrades }

// PlayerStats returns base stats before any shop purchase
func (c *Config) PlayerStats() component.PlayerStats {
	return component.PlayerStats{
		Speed:    c.Player.Speed,
		Radius:   c.Player.Size,
		FireRate: c.Player.FireRate,
		Shot: component.ProjectileTemplate{
			Speed:  c.Player.Projectile.Speed,
			Radius: c.Player.Projectile.Size,
			Color:  c.Player.Projectile.Color.Color,
		},
	}
}

// ArenaRect is the playable world; equals the screen when the camera is disabled
func (c *Config) ArenaRect() vmath.Rect {
	if !c.Camera.Enabled {
		return vmath.RectFromSize(vmath.Vec2{}, c.Screen.Width, c.Screen.Height)
	}
	return vmath.RectFromSize(vmath.Vec2{}, c.Arena.Width, c.Arena.Height)
}

// PlayerStart returns the configured start, or the arena centre when it lies outside the arena
func (c *Config) PlayerStart() vmath.Vec2 {
	arena := c.ArenaRect()
	if arena.Contains(c.Player.Start) {
		return c.Player.Start
	}
	return vmath.V2(arena.Width()/2, arena.Height()/2)
}
