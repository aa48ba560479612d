package ecs

// EventType identifies what happened during a tick.
type EventType string

const (
	EventLanded        EventType = "landed"
	EventHazardHit     EventType = "hazard"
	EventGoalReached   EventType = "goal"
	EventFellOut       EventType = "fell"
	EventLevelAdvanced EventType = "level"
	EventStatusChanged EventType = "status"
	EventReset         EventType = "reset"
)

// Event is a tick-local notification for observers such as debug logging.
// Systems never read events to make decisions.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
