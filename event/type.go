package event

// EventType represents the type of gameplay event
type EventType int

const (
	EventNone EventType = iota

	// EventWaveSpawned signals a materialised wave
	// Trigger: SpawnSystem | Payload: *WaveSpawnedPayload
	EventWaveSpawned

	// EventEnemyDecayed signals an enemy downgraded in place by a hit
	// Trigger: ProjectileSystem | Payload: *EnemyPayload
	EventEnemyDecayed

	// EventEnemyKilled signals an enemy removed by a player projectile
	// Trigger: ProjectileSystem | Payload: *EnemyPayload
	EventEnemyKilled

	// EventBossSpawned signals the boss entering the arena
	// Trigger: BossSystem | Payload: *BossPayload
	EventBossSpawned

	// EventBossStateChanged signals a Moving/Stationary switch
	// Trigger: BossSystem | Payload: *BossPayload
	EventBossStateChanged

	// EventBossDefeated signals health depletion and rewards
	// Trigger: DeathSystem | Payload: *BossPayload
	EventBossDefeated

	// EventPlayerDefeated signals player contact with an enemy, the boss or a hostile projectile
	// Trigger: EnemySystem, BossSystem, ProjectileSystem | Payload: nil
	EventPlayerDefeated

	// EventSessionStateChanged signals an orchestrator transition
	// Trigger: game.Session | Payload: *SessionStatePayload
	EventSessionStateChanged

	// EventUpgradePurchased signals a shop purchase
	// Trigger: game.Shop | Payload: *UpgradePayload
	EventUpgradePurchased
)

var eventNames = map[EventType]string{
	EventNone:                "None",
	EventWaveSpawned:         "WaveSpawned",
	EventEnemyDecayed:        "EnemyDecayed",
	EventEnemyKilled:         "EnemyKilled",
	EventBossSpawned:         "BossSpawned",
	EventBossStateChanged:    "BossStateChanged",
	EventBossDefeated:        "BossDefeated",
	EventPlayerDefeated:      "PlayerDefeated",
	EventSessionStateChanged: "SessionStateChanged",
	EventUpgradePurchased:    "UpgradePurchased",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a queued event; Time is game time in seconds
type GameEvent struct {
	Type    EventType
	Payload any
	Time    float64
}
