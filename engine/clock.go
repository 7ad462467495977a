package engine

// GameClock is the monotonic game clock in seconds
// Advanced by the frame delta; pausing is simply not advancing it
type GameClock struct {
	now    float64
	frames int64
}

func NewGameClock() *GameClock {
	return &GameClock{}
}

// Now returns game time in seconds since clock start
func (c *GameClock) Now() float64 { return c.now }

// Frame returns the number of Advance calls
func (c *GameClock) Frame() int64 { return c.frames }

// Advance moves time forward by dt; negative deltas are ignored
func (c *GameClock) Advance(dt float64) float64 {
	if dt > 0 {
		c.now += dt
	}
	c.frames++
	return c.now
}

// Set jumps to t, used by tests to place events at exact times
func (c *GameClock) Set(t float64) {
	c.now = t
}
