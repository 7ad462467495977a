package event

// WaveSpawnedPayload describes a wave by type name counts
type WaveSpawnedPayload struct {
	Size    int
	Cost    int
	Credits float64 // Credits available when the wave was planned
	Types   map[string]int
}

// EnemyPayload identifies an enemy hit by pool slot
type EnemyPayload struct {
	Slot     int
	TypeName string
}

// BossPayload carries boss state at the time of the event
type BossPayload struct {
	State          string
	Health         int
	NextSpawnScore int
}

// SessionStatePayload carries an orchestrator transition
type SessionStatePayload struct {
	From, To string
	RunID    string
}

// UpgradePayload carries a completed purchase
type UpgradePayload struct {
	Stat     string
	Paid     int
	NextCost int
	Value    float64
}
