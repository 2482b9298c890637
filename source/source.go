package source

import "context"

// Iterator provides pull-based sequential access to a stream of items.
type Iterator[T any] interface {
	// Next returns the next item. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator. A traversal may be
	// abandoned mid-stream by closing it.
	Close() error
}

// Source produces a lazy, possibly unbounded sequence of items.
// Whether a second Produce call restarts the sequence depends on the
// implementation: slice-backed sources restart, channel-backed ones do not.
type Source[T any] interface {
	Produce(ctx context.Context) Iterator[T]
}

// sourceFunc adapts a producer function into a Source.
type sourceFunc[T any] func(ctx context.Context) Iterator[T]

func (f sourceFunc[T]) Produce(ctx context.Context) Iterator[T] { return f(ctx) }

// FromSlice creates a restartable source backed by a slice.
func FromSlice[T any](items []T) Source[T] {
	return sourceFunc[T](func(_ context.Context) Iterator[T] {
		return &sliceIter[T]{items: items}
	})
}

// FromFunc creates a source from a factory that produces an Iterator.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) Source[T] {
	return sourceFunc[T](fn)
}

// FromChannel creates a one-shot source that drains ch. Production ends
// when the channel is closed or the context is cancelled.
func FromChannel[T any](ch <-chan T) Source[T] {
	return sourceFunc[T](func(_ context.Context) Iterator[T] {
		return &chanIter[T]{ch: ch}
	})
}

// Generate creates a source driven by next. Each Produce call invokes
// next() afresh per item until it reports false; next is shared across
// traversals, so Generate sources are one-shot unless next resets itself.
func Generate[T any](next func() (T, bool)) Source[T] {
	return sourceFunc[T](func(_ context.Context) Iterator[T] {
		return &genIter[T]{next: next}
	})
}

// Collect pulls all items from src into a slice. For unbounded sources
// combine with Take or rely on context cancellation.
func Collect[T any](ctx context.Context, src Source[T]) ([]T, error) {
	iter := src.Produce(ctx)
	defer iter.Close()
	var items []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return items, err
		}
		if !ok {
			return items, nil
		}
		items = append(items, val)
	}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type chanIter[T any] struct {
	ch <-chan T
}

func (it *chanIter[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case val, open := <-it.ch:
		if !open {
			var zero T
			return zero, false, nil
		}
		return val, true, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (it *chanIter[T]) Close() error { return nil }

type genIter[T any] struct {
	next func() (T, bool)
	done bool
}

func (it *genIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok := it.next()
	if !ok {
		it.done = true
		var zero T
		return zero, false, nil
	}
	return val, true, nil
}

func (it *genIter[T]) Close() error { return nil }
