package sink

import (
	"context"
	"sync"

	"github.com/kbukum/flowkit/logger"
)

// Sink consumes one item at a time.
type Sink[T any] interface {
	// Name identifies the sink in diagnostics.
	Name() string
	// Consume accepts a single item.
	Consume(ctx context.Context, item T) error
}

// Func adapts a function into a Sink.
type Func[T any] struct {
	name string
	fn   func(ctx context.Context, item T) error
}

// NewFunc creates a function-backed sink.
func NewFunc[T any](name string, fn func(ctx context.Context, item T) error) *Func[T] {
	return &Func[T]{name: name, fn: fn}
}

func (s *Func[T]) Name() string { return s.name }

func (s *Func[T]) Consume(ctx context.Context, item T) error {
	return s.fn(ctx, item)
}

// Slice accumulates consumed items in memory. Safe for concurrent use;
// intended for tests and small bounded streams.
type Slice[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewSlice creates an empty capturing sink.
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{}
}

func (s *Slice[T]) Name() string { return "slice" }

func (s *Slice[T]) Consume(_ context.Context, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return nil
}

// Items returns a snapshot of everything consumed so far, in order.
func (s *Slice[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Log writes each consumed item as a structured log record.
type Log[T any] struct {
	log *logger.Logger
	msg string
}

// NewLog creates a logging sink. With a nil logger the global one is used.
func NewLog[T any](log *logger.Logger, msg string) *Log[T] {
	if log == nil {
		log = logger.Get("sink")
	}
	if msg == "" {
		msg = "item consumed"
	}
	return &Log[T]{log: log, msg: msg}
}

func (s *Log[T]) Name() string { return "log" }

func (s *Log[T]) Consume(_ context.Context, item T) error {
	s.log.Info(s.msg, logger.Fields("item", item))
	return nil
}

// Discard drops every item.
type Discard[T any] struct{}

// NewDiscard creates a sink that ignores all items.
func NewDiscard[T any]() Discard[T] { return Discard[T]{} }

func (Discard[T]) Name() string { return "discard" }

func (Discard[T]) Consume(context.Context, T) error { return nil }
