package engine

import (
	"errors"
	"iter"

	"github.com/lixenwraith/arena-fighter/parameter"
)

// ErrPoolCorrupt reports a failed free-slot scan while the live count says room exists
var ErrPoolCorrupt = errors.New("pool corrupt: no inactive slot despite free capacity")

// Pool is a slot arena with an active tag per slot
// Slots are found by linear scan for the first inactive one; indices stay stable across growth
// Pointers returned by Get or All are invalidated by an Add that grows the pool;
// never hold them across an Add
type Pool[T any] struct {
	slots  []T
	active []bool
	live   int
}

// NewPool creates a pool with the given initial capacity (minimum 1)
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool[T]{
		slots:  make([]T, capacity),
		active: make([]bool, capacity),
	}
}

// Add stores v in the first inactive slot, doubling capacity when full
// Linear scan is O(capacity); a free list would make it O(1) if pools ever get large
func (p *Pool[T]) Add(v T) (int, error) {
	if p.live+1 > len(p.slots) {
		p.grow()
	}
	for i, used := range p.active {
		if !used {
			p.slots[i] = v
			p.active[i] = true
			p.live++
			return i, nil
		}
	}
	return -1, ErrPoolCorrupt
}

// grow multiplies capacity, preserving slot contents and indices
func (p *Pool[T]) grow() {
	capacity := len(p.slots) * parameter.PoolGrowthFactor
	slots := make([]T, capacity)
	active := make([]bool, capacity)
	copy(slots, p.slots)
	copy(active, p.active)
	p.slots = slots
	p.active = active
}

// Remove deactivates slot i; other slots are not moved
func (p *Pool[T]) Remove(i int) {
	if i < 0 || i >= len(p.active) || !p.active[i] {
		return
	}
	var zero T
	p.slots[i] = zero
	p.active[i] = false
	p.live--
}

// Get returns the entity in slot i, nil when the slot is inactive
func (p *Pool[T]) Get(i int) *T {
	if i < 0 || i >= len(p.active) || !p.active[i] {
		return nil
	}
	return &p.slots[i]
}

// IsActive reports whether slot i holds a live entity
func (p *Pool[T]) IsActive(i int) bool {
	return i >= 0 && i < len(p.active) && p.active[i]
}

// All yields active slots in index order
// Liveness is checked as each slot is reached, so entities removed earlier in the
// same pass by side effects are skipped
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < len(p.active); i++ {
			if !p.active[i] {
				continue
			}
			if !yield(i, &p.slots[i]) {
				return
			}
		}
	}
}

// Len returns the live count
func (p *Pool[T]) Len() int { return p.live }

// Cap returns the slot capacity
func (p *Pool[T]) Cap() int { return len(p.slots) }

// Clear deactivates every slot, keeping capacity
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.slots {
		p.slots[i] = zero
		p.active[i] = false
	}
	p.live = 0
}
