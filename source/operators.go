package source

import (
	"context"

	"github.com/kbukum/flowkit/predicate"
)

// Map transforms each item using fn.
func Map[I, O any](src Source[I], fn func(context.Context, I) (O, error)) Source[O] {
	return sourceFunc[O](func(ctx context.Context) Iterator[O] {
		return &mapIter[I, O]{source: src.Produce(ctx), fn: fn}
	})
}

// Filter keeps only items that satisfy the predicate.
func Filter[T any](src Source[T], fn predicate.Predicate[T]) Source[T] {
	return sourceFunc[T](func(ctx context.Context) Iterator[T] {
		return &filterIter[T]{source: src.Produce(ctx), fn: fn}
	})
}

// FlatMap transforms each item into a slice and flattens the results one
// level, preserving order across and within expansions.
func FlatMap[I, O any](src Source[I], fn func(context.Context, I) ([]O, error)) Source[O] {
	return sourceFunc[O](func(ctx context.Context) Iterator[O] {
		return &flatMapIter[I, O]{source: src.Produce(ctx), fn: fn}
	})
}

// Tap calls fn as a side-effect for each item, then passes the item through
// unchanged. Use for logging, metrics, or mid-stream publishing.
func Tap[T any](src Source[T], fn func(context.Context, T) error) Source[T] {
	return sourceFunc[T](func(ctx context.Context) Iterator[T] {
		return &tapIter[T]{source: src.Produce(ctx), fn: fn}
	})
}

// Take yields at most n items from src, then closes the upstream iterator.
func Take[T any](src Source[T], n int) Source[T] {
	return sourceFunc[T](func(ctx context.Context) Iterator[T] {
		return &takeIter[T]{source: src.Produce(ctx), remaining: n}
	})
}

// Concat joins multiple sources sequentially. All items from the first
// source are yielded before the second, etc.
func Concat[T any](sources ...Source[T]) Source[T] {
	return sourceFunc[T](func(ctx context.Context) Iterator[T] {
		iters := make([]Iterator[T], len(sources))
		for i, s := range sources {
			iters[i] = s.Produce(ctx)
		}
		return &concatIter[T]{iters: iters}
	})
}

// Reduce accumulates all items into a single result. The source yields
// exactly one item: the final accumulator.
func Reduce[T, R any](src Source[T], init R, fn func(R, T) R) Source[R] {
	return sourceFunc[R](func(ctx context.Context) Iterator[R] {
		return &reduceIter[T, R]{source: src.Produce(ctx), acc: init, fn: fn}
	})
}

// --- Iterator implementations ---

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type filterIter[T any] struct {
	source Iterator[T]
	fn     predicate.Predicate[T]
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.fn(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(context.Context, I) ([]O, error)
	pending []O
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	for {
		if len(it.pending) > 0 {
			val := it.pending[0]
			it.pending = it.pending[1:]
			return val, true, nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		out, err := it.fn(ctx, in)
		if err != nil {
			var zero O
			return zero, false, err
		}
		it.pending = out
	}
}

func (it *flatMapIter[I, O]) Close() error { return it.source.Close() }

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T) error
}

func (it *tapIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }

type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, false, err
	}
	it.remaining--
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next(ctx context.Context) (T, bool, error) {
	for it.index < len(it.iters) {
		val, ok, err := it.iters[it.index].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		it.index++
	}
	var zero T
	return zero, false, nil
}

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type reduceIter[T, R any] struct {
	source Iterator[T]
	acc    R
	fn     func(R, T) R
	done   bool
}

func (it *reduceIter[T, R]) Next(ctx context.Context) (R, bool, error) {
	if it.done {
		var zero R
		return zero, false, nil
	}
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			var zero R
			return zero, false, err
		}
		if !ok {
			it.done = true
			return it.acc, true, nil
		}
		it.acc = it.fn(it.acc, val)
	}
}

func (it *reduceIter[T, R]) Close() error { return it.source.Close() }
