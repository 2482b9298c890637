package retry

import (
	"context"

	"github.com/kbukum/flowkit/sink"
	"github.com/kbukum/flowkit/stream"
)

// Sink wraps a sink so each Consume is retried per cfg.
func Sink[T any](s sink.Sink[T], cfg Config) sink.Sink[T] {
	return &retrySink[T]{inner: s, cfg: withDefaults(cfg)}
}

type retrySink[T any] struct {
	inner sink.Sink[T]
	cfg   Config
}

func (s *retrySink[T]) Name() string { return s.inner.Name() }

func (s *retrySink[T]) Consume(ctx context.Context, item T) error {
	return DoFunc(ctx, s.cfg, func() error {
		return s.inner.Consume(ctx, item)
	})
}

// Processor wraps a stream processor so each item is retried per cfg.
func Processor[T any](proc stream.Processor[T], cfg Config) stream.Processor[T] {
	cfg = withDefaults(cfg)
	return func(ctx context.Context, item T) (T, error) {
		return Do(ctx, cfg, func() (T, error) {
			return proc(ctx, item)
		})
	}
}
