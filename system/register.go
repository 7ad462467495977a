package system

import (
	"github.com/lixenwraith/arena-fighter/engine"
)

// RegisterAll adds the gameplay pipeline to world; the world orders it by priority
func RegisterAll(world *engine.World) {
	world.AddSystem(NewPlayerSystem(world))
	world.AddSystem(NewSpawnSystem(world))
	world.AddSystem(NewEnemySystem(world))
	world.AddSystem(NewBossSystem(world))
	world.AddSystem(NewProjectileSystem(world))
	world.AddSystem(NewDeathSystem(world))
}
