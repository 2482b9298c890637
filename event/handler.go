package event

import (
	"context"

	"github.com/kbukum/flowkit/predicate"
)

// Handler processes events dispatched by the bus.
type Handler interface {
	// Name identifies the handler in diagnostics.
	Name() string
	// CanHandle reports whether the handler wants this event.
	CanHandle(evt Event) bool
	// Handle processes the event and returns its result.
	Handle(ctx context.Context, evt Event) (any, error)
}

// HandleFunc is the function form of a handler.
type HandleFunc func(ctx context.Context, evt Event) (any, error)

// FuncHandler wraps a function as a Handler with an optional conjunction
// of event filters. With no filters, CanHandle is always true.
type FuncHandler struct {
	name    string
	fn      HandleFunc
	filters []predicate.Predicate[Event]
}

// NewHandler creates a FuncHandler.
func NewHandler(name string, fn HandleFunc, filters ...predicate.Predicate[Event]) *FuncHandler {
	return &FuncHandler{name: name, fn: fn, filters: filters}
}

// Name returns the handler name.
func (h *FuncHandler) Name() string { return h.name }

// CanHandle reports whether every filter accepts the event.
func (h *FuncHandler) CanHandle(evt Event) bool {
	for _, f := range h.filters {
		if !f(evt) {
			return false
		}
	}
	return true
}

// Handle invokes the wrapped function.
func (h *FuncHandler) Handle(ctx context.Context, evt Event) (any, error) {
	return h.fn(ctx, evt)
}
