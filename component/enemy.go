package component

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/arena-fighter/vmath"
)

// EnemyTypeID indexes the immutable enemy type table, ordered by ascending cost
type EnemyTypeID int

// NoEnemyType marks a type without a weaker successor
const NoEnemyType EnemyTypeID = -1

// EnemyType is a static archetype; enemies refer to it by ID
type EnemyType struct {
	Name     string
	Cost     int
	MinSpeed float64
	MaxSpeed float64
	MinSize  float64
	MaxSize  float64
	Color    colorful.Color

	// TurnsInto is the weaker type an enemy decays into when hit
	TurnsInto EnemyTypeID
}

// HasSuccessor reports whether hits decay this type instead of killing it
func (t *EnemyType) HasSuccessor() bool {
	return t.TurnsInto != NoEnemyType
}

// Enemy lives in a pool slot; Speed and Radius are sampled once at spawn
type Enemy struct {
	Pos vmath.Vec2

	// Desired is the steering target, refreshed periodically rather than every frame
	Desired vmath.Vec2

	Speed  float64
	Radius float64
	Type   EnemyTypeID
}
