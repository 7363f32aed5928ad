package physics

// CollisionEvent reports two bodies starting or stopping contact
type CollisionEvent struct {
	Handle1 BodyHandle
	Handle2 BodyHandle
	Started bool
}

// EventQueue collects events produced during World.Step
type EventQueue struct {
	autoDrain bool
	events    []CollisionEvent
}

// NewEventQueue creates a queue; with autoDrain set, undrained events are dropped at the next step
func NewEventQueue(autoDrain bool) *EventQueue {
	return &EventQueue{
		autoDrain: autoDrain,
		events:    make([]CollisionEvent, 0, 32),
	}
}

// DrainCollisionEvents passes every pending event to fn in production order and empties the queue
func (q *EventQueue) DrainCollisionEvents(fn func(CollisionEvent)) {
	events := q.events
	q.events = q.events[:0]
	for _, ev := range events {
		fn(ev)
	}
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Clear drops pending events
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
}

func (q *EventQueue) push(ev CollisionEvent) {
	q.events = append(q.events, ev)
}
