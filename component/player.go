package component

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/arena-fighter/vmath"
)

// ProjectileTemplate is the shape a shooter stamps onto every projectile it fires
type ProjectileTemplate struct {
	Speed  float64
	Radius float64
	Color  colorful.Color
}

// PlayerStats are the permanent stats shop upgrades mutate between sessions
type PlayerStats struct {
	Speed    float64
	Radius   float64
	FireRate float64 // Shots per second
	Shot     ProjectileTemplate
}

// Player is created once per program and reset at every session start
type Player struct {
	PlayerStats

	Pos   vmath.Vec2
	Color colorful.Color

	// Score counts kills this session
	Score int

	// BossPoints is the meta-currency earned from boss defeats this session
	BossPoints int

	// LastShot is game time of the last emitted projectile
	LastShot float64

	// Defeated is set by collision detection and consumed by the session
	Defeated bool

	// Invincible suppresses the session's transition on defeat (debug)
	Invincible bool
}

// ResetSession restores transient state, keeping permanent stats
func (p *Player) ResetSession(start vmath.Vec2) {
	p.Pos = start
	p.Score = 0
	p.BossPoints = 0
	p.LastShot = NeverFired
	p.Defeated = false
}

// NeverFired is a LastShot sentinel that arms the first shot immediately
const NeverFired = -1e18

// StatID names a permanent player stat an upgrade can raise
type StatID uint8

const (
	StatSpeed StatID = iota
	StatFireRate
	StatProjectileSpeed
	StatProjectileSize
	statCount
)

var statNames = [statCount]string{
	StatSpeed:           "speed",
	StatFireRate:        "fire_rate",
	StatProjectileSpeed: "projectile_speed",
	StatProjectileSize:  "projectile_size",
}

func (s StatID) String() string {
	if s < statCount {
		return statNames[s]
	}
	return "unknown"
}

// ParseStat maps a config name to its StatID
func ParseStat(name string) (StatID, bool) {
	for i, n := range statNames {
		if n == name {
			return StatID(i), true
		}
	}
	return 0, false
}

// Stat returns the current value of a stat
func (s *PlayerStats) Stat(id StatID) float64 {
	switch id {
	case StatSpeed:
		return s.Speed
	case StatFireRate:
		return s.FireRate
	case StatProjectileSpeed:
		return s.Shot.Speed
	case StatProjectileSize:
		return s.Shot.Radius
	default:
		return 0
	}
}

// SetStat writes a stat; unknown IDs are ignored
func (s *PlayerStats) SetStat(id StatID, v float64) {
	switch id {
	case StatSpeed:
		s.Speed = v
	case StatFireRate:
		s.FireRate = v
	case StatProjectileSpeed:
		s.Shot.Speed = v
	case StatProjectileSize:
		s.Shot.Radius = v
	}
}
