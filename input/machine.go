package input

import (
	"time"

	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/vmath"
)

// Machine turns key presses and pointer state into commands and per-frame gameplay input
type Machine struct {
	hold *HoldTracker

	// Pointer state in screen cells; mapped to world space every frame since the camera scrolls
	cursorX, cursorY int
	hasCursor        bool
	mouseFire        bool
}

// ToWorld maps a screen cell to a world position using the current frame's view
type ToWorld func(x, y int) vmath.Vec2

func NewMachine() *Machine {
	return &Machine{hold: NewHoldTracker()}
}

// Press handles one key press; steering and fire keys update held state and yield IntentNone
func (m *Machine) Press(k Key, now time.Time) Intent {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyFire:
		m.hold.Press(k, now)
		return Intent{}
	}
	return IntentFor(k)
}

// Pointer records the cursor cell and whether the fire button is down
func (m *Machine) Pointer(x, y int, fire bool) {
	m.cursorX, m.cursorY = x, y
	m.hasCursor = true
	m.mouseFire = fire
}

// Cursor returns the last pointer cell; ok is false before any pointer event
func (m *Machine) Cursor() (x, y int, ok bool) {
	return m.cursorX, m.cursorY, m.hasCursor
}

// Frame builds the gameplay input for the current frame
// The aim is zero until the pointer has been seen
func (m *Machine) Frame(now time.Time, toWorld ToWorld) engine.Input {
	in := engine.Input{
		Move:     m.hold.Move(now),
		FireHeld: m.mouseFire || m.hold.Held(KeyFire, now),
	}
	if m.hasCursor && toWorld != nil {
		in.Aim = toWorld(m.cursorX, m.cursorY)
	}
	return in
}

// Reset releases all keys and the pointer button, used on session transitions
func (m *Machine) Reset() {
	m.hold.Clear()
	m.mouseFire = false
}
