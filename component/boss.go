package component

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/arena-fighter/vmath"
)

// BossState is the active-phase discriminator
type BossState uint8

const (
	BossMoving BossState = iota
	BossStationary
)

func (s BossState) String() string {
	switch s {
	case BossMoving:
		return "Moving"
	case BossStationary:
		return "Stationary"
	default:
		return "Unknown"
	}
}

// BossType is the immutable boss archetype
type BossType struct {
	MaxHealth     int
	Speed         float64
	Size          float64
	Color         colorful.Color
	FireRate      float64
	ShotsPerBurst int
	Shot          ProjectileTemplate

	// Phase durations in seconds
	MovingDuration     float64
	StationaryDuration float64

	// Defeat rewards
	RewardScore  int
	RewardPoints int

	// FirstSpawnScore is the initial spawn threshold each session
	FirstSpawnScore int

	// ThresholdGrowth scales the current threshold into the next one on defeat
	ThresholdGrowth float64
}

// Boss is the single boss instance, inactive between encounters
type Boss struct {
	Pos     vmath.Vec2
	Desired vmath.Vec2
	State   BossState
	Active  bool

	// Defeated records that the last encounter ended by health depletion
	Defeated bool

	// NextSpawnScore is the player score that triggers the next encounter
	NextSpawnScore int

	Health     int
	ShotsLeft  int
	LastShot   float64
	LastSwitch float64
}

// HealthFraction returns remaining health in [0, 1]
func (b *Boss) HealthFraction(t *BossType) float64 {
	if t.MaxHealth <= 0 || b.Health <= 0 {
		return 0
	}
	f := float64(b.Health) / float64(t.MaxHealth)
	if f > 1 {
		return 1
	}
	return f
}
