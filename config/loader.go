package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/arena-fighter/asset"
	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Default returns the embedded configuration
func Default() (*Config, error) {
	return Load(nil)
}

// MustDefault is Default for tests and fallbacks where the embedded config is known good
func MustDefault() *Config {
	cfg, err := Default()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load decodes data on top of the embedded defaults and resolves type tables
// Keys absent from data keep their default; lists replace the default list
func Load(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := decodeStrict([]byte(asset.DefaultConfigYAML), cfg); err != nil {
		return nil, fmt.Errorf("failed to decode embedded config: %w", err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := decodeStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads a YAML file on top of the defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadAuto loads config with priority: customPath > ConfigDefaultPath > embedded
func LoadAuto(customPath string) (*Config, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}
	if fileExists(parameter.ConfigDefaultPath) {
		return LoadFile(parameter.ConfigDefaultPath)
	}
	return Default()
}

func decodeStrict(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// resolve validates raw values and builds the lookup tables systems read
func (c *Config) resolve() error {
	if err := c.validate(); err != nil {
		return err
	}

	raw := make([]EnemyTypeConfig, len(c.EnemyTypes))
	copy(raw, c.EnemyTypes)
	sort.SliceStable(raw, func(i, j int) bool { return raw[i].Cost < raw[j].Cost })

	c.enemyTypes = make([]component.EnemyType, len(raw))
	for i, et := range raw {
		c.enemyTypes[i] = component.EnemyType{
			Name:      et.Name,
			Cost:      et.Cost,
			MinSpeed:  et.Speed.Min,
			MaxSpeed:  et.Speed.Max,
			MinSize:   et.Size.Min,
			MaxSize:   et.Size.Max,
			Color:     et.Color.Color,
			TurnsInto: component.NoEnemyType,
		}
	}
	for i, et := range raw {
		if et.TurnsInto == "" {
			continue
		}
		id, _ := c.EnemyTypeByName(et.TurnsInto)
		c.enemyTypes[i].TurnsInto = id
	}

	b := c.Boss
	c.bossType = component.BossType{
		MaxHealth:     b.MaxHealth,
		Speed:         b.Speed,
		Size:          b.Size,
		Color:         b.Color.Color,
		FireRate:      b.FireRate,
		ShotsPerBurst: b.ShotsPerBurst,
		Shot: component.ProjectileTemplate{
			Speed:  b.Projectile.Speed,
			Radius: b.Projectile.Size,
			Color:  b.Projectile.Color.Color,
		},
		MovingDuration:     b.MovingDuration,
		StationaryDuration: b.StationaryDuration,
		RewardScore:        b.RewardScore,
		RewardPoints:       b.RewardPoints,
		FirstSpawnScore:    b.FirstSpawnScore,
		ThresholdGrowth:    b.ThresholdGrowth,
	}

	c.upgrades = make([]ResolvedUpgrade, 0, len(c.Shop.Upgrades))
	for _, u := range c.Shop.Upgrades {
		stat, _ := component.ParseStat(u.Stat)
		c.upgrades = append(c.upgrades, ResolvedUpgrade{Stat: stat, Cost: u.Cost, Increment: u.Increment})
	}
	return nil
}

// validate reports every problem at once, each wrapped in ErrInvalid
func (c *Config) validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		fail("screen size must be positive")
	}
	if c.Camera.Enabled && (c.Arena.Width <= 0 || c.Arena.Height <= 0) {
		fail("arena size must be positive")
	}
	if c.Player.Speed < 0 || c.Player.Size <= 0 {
		fail("player speed must be non-negative and size positive")
	}
	if c.Player.FireRate <= 0 {
		fail("player fire_rate must be positive")
	}
	if c.Pools.Enemies < 1 || c.Pools.Projectiles < 1 {
		fail("pool capacities must be at least 1")
	}

	s := c.Spawner
	if s.CreditMultiplier < 0 || s.CreditExponent < 0 {
		fail("credit multiplier and exponent must be non-negative")
	}
	if s.MinSpawnInterval < 0 || s.MinSpawnInterval > s.MaxSpawnInterval {
		fail("spawn interval range [%v, %v] is invalid", s.MinSpawnInterval, s.MaxSpawnInterval)
	}
	if s.MinimumWaveSize < 1 {
		fail("minimum_wave_size must be at least 1")
	}
	if !isProbability(s.WaveExtendProbability) || !isProbability(s.RetargetProbability) {
		fail("spawner probabilities must lie in [0, 1]")
	}
	if s.RetargetInterval < 0 {
		fail("retarget_interval must be non-negative")
	}

	if len(c.EnemyTypes) == 0 {
		fail("at least one enemy type is required")
	}
	costs := make(map[string]int, len(c.EnemyTypes))
	for _, et := range c.EnemyTypes {
		if et.Name == "" {
			fail("enemy type without name")
			continue
		}
		if _, dup := costs[et.Name]; dup {
			fail("duplicate enemy type %q", et.Name)
		}
		costs[et.Name] = et.Cost
		if et.Cost < 1 {
			fail("enemy type %q: cost must be at least 1", et.Name)
		}
		if et.Speed.Min > et.Speed.Max || et.Speed.Min < 0 {
			fail("enemy type %q: speed range is invalid", et.Name)
		}
		if et.Size.Min > et.Size.Max || et.Size.Min <= 0 {
			fail("enemy type %q: size range is invalid", et.Name)
		}
	}
	// Successors must be strictly cheaper, which also rules out cycles
	for _, et := range c.EnemyTypes {
		if et.TurnsInto == "" {
			continue
		}
		succCost, ok := costs[et.TurnsInto]
		if !ok {
			fail("enemy type %q: unknown turns_into %q", et.Name, et.TurnsInto)
			continue
		}
		if succCost >= et.Cost {
			fail("enemy type %q: turns_into %q must be cheaper", et.Name, et.TurnsInto)
		}
	}

	b := c.Boss
	if b.MaxHealth < 1 || b.Size <= 0 || b.Speed < 0 {
		fail("boss health, size and speed must be positive")
	}
	if b.FireRate <= 0 || b.ShotsPerBurst < 0 {
		fail("boss fire_rate must be positive and shots_per_burst non-negative")
	}
	if b.MovingDuration < 0 || b.StationaryDuration < 0 {
		fail("boss phase durations must be non-negative")
	}
	if b.ThresholdGrowth <= 0 || math.IsInf(b.ThresholdGrowth, 0) {
		fail("boss threshold_growth must be positive")
	}
	if b.FirstSpawnScore < 1 {
		fail("boss first_spawn_score must be at least 1")
	}

	if c.Shop.CostFactor < 1 {
		fail("shop cost_factor must be at least 1")
	}
	for _, u := range c.Shop.Upgrades {
		if _, ok := component.ParseStat(u.Stat); !ok {
			fail("unknown upgrade stat %q", u.Stat)
		}
		if u.Cost < 1 || u.Increment <= 0 {
			fail("upgrade %q: cost and increment must be positive", u.Stat)
		}
	}

	return errors.Join(errs...)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
