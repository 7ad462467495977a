package component

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/arena-fighter/vmath"
)

// Allegiance determines which targets a projectile can hit
type Allegiance uint8

const (
	// AllegiancePlayer projectiles hit enemies and the boss
	AllegiancePlayer Allegiance = iota
	// AllegianceHostile projectiles hit the player
	AllegianceHostile
)

func (a Allegiance) String() string {
	switch a {
	case AllegiancePlayer:
		return "player"
	case AllegianceHostile:
		return "hostile"
	default:
		return "unknown"
	}
}

// Projectile is single-use; Dir is always unit length
type Projectile struct {
	Pos        vmath.Vec2
	Dir        vmath.Vec2
	Allegiance Allegiance
	Speed      float64
	Radius     float64
	Color      colorful.Color
}
