package event

import (
	"context"
	"sync"

	"github.com/kbukum/flowkit/logger"
	"github.com/kbukum/flowkit/observability"
)

// ErrorHandler receives handler failures isolated during dispatch.
type ErrorHandler func(evt Event, h Handler, err error)

// Bus is an in-process pub/sub event bus.
//
// Subscription order is dispatch order. The handler map is guarded by a
// RWMutex; Publish iterates a snapshot, so a concurrent Subscribe never
// mutates an in-flight dispatch.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler

	log     *logger.Logger
	metrics *observability.Metrics
	onError ErrorHandler
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithLogger sets the diagnostic logger.
func WithLogger(log *logger.Logger) BusOption {
	return func(b *Bus) { b.log = log }
}

// WithMetrics enables metric recording on dispatch.
func WithMetrics(m *observability.Metrics) BusOption {
	return func(b *Bus) { b.metrics = m }
}

// WithErrorHandler registers a callback invoked for every isolated handler
// failure, in addition to the log record.
func WithErrorHandler(fn ErrorHandler) BusOption {
	return func(b *Bus) { b.onError = fn }
}

// NewBus creates an empty event bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		handlers: make(map[string][]Handler),
		log:      logger.Get("event.bus"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe appends handler to the list for eventType, creating the list if
// absent. Registering the same handler twice yields two dispatch slots.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// SubscribeFunc subscribes a plain function under the given handler name.
func (b *Bus) SubscribeFunc(eventType, name string, fn HandleFunc) {
	b.Subscribe(eventType, NewHandler(name, fn))
}

// Publish dispatches evt to every handler subscribed to its type, strictly
// in registration order, one at a time. Handlers whose CanHandle rejects
// the event are skipped. A failing handler is isolated: the error goes to
// the diagnostic channel and dispatch continues, so the returned results
// may be shorter than the handler list. Publishing a type with no
// subscribers returns an empty slice.
func (b *Bus) Publish(ctx context.Context, evt Event) []any {
	b.mu.RLock()
	registered := b.handlers[evt.Type()]
	handlers := make([]Handler, len(registered))
	copy(handlers, registered)
	b.mu.RUnlock()

	results := make([]any, 0, len(handlers))
	for _, h := range handlers {
		if !h.CanHandle(evt) {
			continue
		}
		result, err := h.Handle(ctx, evt)
		if err != nil {
			b.reportFailure(ctx, evt, h, err)
			continue
		}
		results = append(results, result)
	}

	if b.metrics != nil {
		b.metrics.RecordPublish(ctx, evt.Type(), len(handlers))
	}
	return results
}

// Handlers returns a copy of the current handler list for introspection.
// Unknown types yield an empty slice.
func (b *Bus) Handlers(eventType string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	registered := b.handlers[eventType]
	handlers := make([]Handler, len(registered))
	copy(handlers, registered)
	return handlers
}

func (b *Bus) reportFailure(ctx context.Context, evt Event, h Handler, err error) {
	b.log.Error("handler failed", logger.Fields(
		logger.FieldEventType, evt.Type(),
		logger.FieldEventID, evt.ID,
		logger.FieldHandler, h.Name(),
		logger.FieldError, err.Error(),
	))
	if b.metrics != nil {
		b.metrics.RecordError(ctx, "handler", h.Name())
	}
	if b.onError != nil {
		b.onError(evt, h, err)
	}
}
