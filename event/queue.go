package event

import (
	"github.com/lixenwraith/arena-fighter/parameter"
)

// Queue is a fixed ring buffer of gameplay events
// Single-threaded: producers and the consumer both run on the update thread
// Overflow: oldest events are overwritten when full
type Queue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, dropping the oldest when full
func (q *Queue) Push(ev GameEvent) {
	q.events[q.tail&parameter.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Emit is Push with the fields spelled out
func (q *Queue) Emit(t EventType, payload any, now float64) {
	q.Push(GameEvent{Type: t, Payload: payload, Time: now})
}

// Consume returns pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i&parameter.EventBufferMask])
		q.events[i&parameter.EventBufferMask] = GameEvent{}
	}
	q.head = q.tail
	return result
}

// Len returns the pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Clear drops all pending events
func (q *Queue) Clear() {
	for i := q.head; i < q.tail; i++ {
		q.events[i&parameter.EventBufferMask] = GameEvent{}
	}
	q.head = q.tail
}
