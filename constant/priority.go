package constant

// System Execution Priorities (lower runs first)
// Order mirrors the frame pipeline: move, fire, spawn, steer, boss, projectiles, resolve
const (
	PriorityPlayer     = 10
	PrioritySpawn      = 20
	PriorityEnemy      = 30
	PriorityBoss       = 40
	PriorityProjectile = 50 // After every shooter has fired this frame
	PriorityDeath      = 90 // After game logic, resolves boss defeat
)
