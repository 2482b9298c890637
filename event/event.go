package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Priority indicates the advisory urgency of an event.
// The bus never reorders dispatch by priority.
type Priority int

const (
	PriorityLow      Priority = 1
	PriorityNormal   Priority = 2
	PriorityHigh     Priority = 3
	PriorityCritical Priority = 4
)

// String returns the human-readable priority name.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Event is an immutable record broadcast through the bus.
// The event type is the sole dispatch key and cannot change after
// construction.
type Event struct {
	eventType string

	// ID uniquely identifies this event instance.
	ID string
	// Data is the opaque event payload.
	Data any
	// Timestamp is the creation instant.
	Timestamp time.Time
	// Source labels the origin of the event.
	Source string
	// Priority is advisory only.
	Priority Priority
	// Metadata carries additional event context.
	Metadata map[string]any
}

// Option configures an Event at construction.
type Option func(*Event)

// WithSource sets the origin label.
func WithSource(source string) Option {
	return func(e *Event) { e.Source = source }
}

// WithPriority sets the advisory priority.
func WithPriority(p Priority) Option {
	return func(e *Event) { e.Priority = p }
}

// WithMetadata merges metadata into the event.
func WithMetadata(md map[string]any) Option {
	return func(e *Event) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]any, len(md))
		}
		for k, v := range md {
			e.Metadata[k] = v
		}
	}
}

// WithTimestamp overrides the creation instant.
func WithTimestamp(ts time.Time) Option {
	return func(e *Event) { e.Timestamp = ts }
}

// New constructs an event of the given type carrying data.
// The timestamp defaults to now and the priority to normal.
func New(eventType string, data any, opts ...Option) Event {
	e := Event{
		eventType: eventType,
		ID:        uuid.NewString(),
		Data:      data,
		Timestamp: time.Now(),
		Priority:  PriorityNormal,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Type returns the dispatch key of the event.
func (e Event) Type() string { return e.eventType }

// String implements fmt.Stringer.
func (e Event) String() string {
	return fmt.Sprintf("Event(type=%q, priority=%s)", e.eventType, e.Priority)
}
