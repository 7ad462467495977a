package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Screen-sized arena: 800x600, no camera, spawns on the perimeter
const flatArena = `
seed: 7
camera: { enabled: false }
player:
  start: { x: 400, y: 300 }
`

func newTestWorld(t *testing.T, overlay string) *engine.World {
	t.Helper()
	cfg, err := config.Load([]byte(overlay))
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	return engine.NewWorld(cfg)
}

func mustEnemyType(t *testing.T, w *engine.World, name string) component.EnemyTypeID {
	t.Helper()
	id, ok := w.Config.EnemyTypeByName(name)
	if !ok {
		t.Fatalf("enemy type %q not found", name)
	}
	return id
}

func addEnemy(t *testing.T, w *engine.World, typeName string, pos vmath.Vec2, radius float64) int {
	t.Helper()
	slot, err := w.Enemies.Add(component.Enemy{
		Pos:     pos,
		Desired: pos,
		Speed:   100,
		Radius:  radius,
		Type:    mustEnemyType(t, w, typeName),
	})
	if err != nil {
		t.Fatalf("Enemies.Add() error = %v", err)
	}
	return slot
}

const unitEpsilon = 1e-9

func isUnit(v vmath.Vec2) bool {
	return math.Abs(v.Len()-1) < unitEpsilon
}
