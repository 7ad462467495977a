package vmath

// Rand is a xorshift64 source with the range helpers gameplay needs
// Not safe for concurrent use; owned by the update thread
type Rand struct {
	state uint64
}

const (
	float53     = 1 << 53
	float53Last = float53 - 1
)

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &Rand{state: seed}
}

func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Float64 returns a value in [0, 1)
func (r *Rand) Float64() float64 {
	return float64(r.Next()>>11) / float53
}

// FloatRange returns a value in [lo, hi], both ends reachable
func (r *Rand) FloatRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	f := float64(r.Next()>>11) / float53Last
	return lo + f*(hi-lo)
}

// IntRange returns a value in [lo, hi]
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + int(r.Next()%uint64(hi-lo+1))
}

// Chance is a Bernoulli trial succeeding with probability p
func (r *Rand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// CoinFlip is a fair Bernoulli trial
func (r *Rand) CoinFlip() bool {
	return r.Next()&(1<<32) != 0
}
