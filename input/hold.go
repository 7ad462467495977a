package input

import (
	"time"

	"github.com/lixenwraith/arena-fighter/parameter"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// HoldTracker emulates key-held state for terminals that only report presses
// A press holds the key for the OS initial repeat delay; once auto-repeat arrives
// the window shrinks to the repeat interval so release is detected quickly
type HoldTracker struct {
	until     [keyCount]time.Time
	repeating [keyCount]bool
}

func NewHoldTracker() *HoldTracker {
	return &HoldTracker{}
}

// Press records a press or auto-repeat of k at now
func (h *HoldTracker) Press(k Key, now time.Time) {
	if k >= keyCount {
		return
	}
	if h.Held(k, now) {
		h.repeating[k] = true
		h.until[k] = now.Add(parameter.KeyRepeatHoldWindow)
		return
	}
	h.repeating[k] = false
	h.until[k] = now.Add(parameter.KeyHoldWindow)
}

// Release drops k immediately, for front-ends that do report releases
func (h *HoldTracker) Release(k Key) {
	if k >= keyCount {
		return
	}
	h.until[k] = time.Time{}
	h.repeating[k] = false
}

// Held reports whether k counts as down at now
func (h *HoldTracker) Held(k Key, now time.Time) bool {
	if k >= keyCount {
		return false
	}
	return now.Before(h.until[k])
}

// Clear releases every key
func (h *HoldTracker) Clear() {
	*h = HoldTracker{}
}

// Move returns the unit-or-zero steering vector from the held direction keys
// Screen coordinates: +Y points down
func (h *HoldTracker) Move(now time.Time) vmath.Vec2 {
	return MoveVector(h.Held(KeyUp, now), h.Held(KeyDown, now), h.Held(KeyLeft, now), h.Held(KeyRight, now))
}

// MoveVector combines four direction states into a unit-or-zero vector
// Opposing keys cancel
func MoveVector(up, down, left, right bool) vmath.Vec2 {
	var v vmath.Vec2
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	return v.Normalize()
}
