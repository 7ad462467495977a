package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the front-end frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step in seconds
	// Long stalls (window drag, terminal suspend) would otherwise tunnel entities through each other
	MaxFrameDelta = 0.1
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "arena.log"

	// LogMaxSize is the size at which the log file is rotated on startup
	LogMaxSize = 10 * 1024 * 1024
)

// Configuration
const (
	// ConfigDefaultPath is checked when no custom path is given
	ConfigDefaultPath = "arena.yaml"

	// EnvConfigPath and EnvDebug override flag defaults
	EnvConfigPath = "ARENA_CONFIG"
	EnvDebug      = "ARENA_DEBUG"
)
