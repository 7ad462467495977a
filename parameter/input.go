package parameter

import "time"

// Terminal Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press or repeat
	// Terminals report presses and auto-repeat but never releases
	// Must exceed the initial auto-repeat delay of common terminals (~250-500ms) for smooth movement
	KeyHoldWindow = 550 * time.Millisecond

	// KeyRepeatHoldWindow applies once auto-repeat has started, shorter for snappier stops
	KeyRepeatHoldWindow = 120 * time.Millisecond
)
