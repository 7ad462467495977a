package parameter

// Spawn Placement
const (
	// OffscreenSpawnAttempts bounds rejection sampling for off-viewport spawn points
	// On exhaustion the arena perimeter is used instead
	OffscreenSpawnAttempts = 32

	// PoolGrowthFactor is the capacity multiplier when a pool is full
	PoolGrowthFactor = 2
)
