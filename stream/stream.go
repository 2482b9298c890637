package stream

import (
	"github.com/kbukum/flowkit/predicate"
)

// Stream is an immutable, fully materialized sequence of elements.
// The zero value is an empty stream.
type Stream[T any] struct {
	elems []T
}

// New creates a stream from a slice. The slice is copied, so later
// mutation of the argument does not affect the stream.
func New[T any](elems []T) Stream[T] {
	copied := make([]T, len(elems))
	copy(copied, elems)
	return Stream[T]{elems: copied}
}

// Of creates a stream from the given elements.
func Of[T any](elems ...T) Stream[T] {
	return New(elems)
}

// Map applies fn to every element in order and returns a new stream of
// the results. Element count and order are preserved.
func (s Stream[T]) Map(fn func(T) T) Stream[T] {
	out := make([]T, len(s.elems))
	for i, v := range s.elems {
		out[i] = fn(v)
	}
	return Stream[T]{elems: out}
}

// Filter returns a new stream keeping only the elements the predicate
// accepts, preserving relative order.
func (s Stream[T]) Filter(p predicate.Predicate[T]) Stream[T] {
	out := make([]T, 0, len(s.elems))
	for _, v := range s.elems {
		if p(v) {
			out = append(out, v)
		}
	}
	return Stream[T]{elems: out}
}

// FlatMap applies fn to every element and flattens the returned slices one
// level, preserving order across elements and within each expansion. A
// scalar expansion is a one-element slice.
func (s Stream[T]) FlatMap(fn func(T) []T) Stream[T] {
	var out []T
	for _, v := range s.elems {
		out = append(out, fn(v)...)
	}
	return Stream[T]{elems: out}
}

// Collect materializes the element sequence as a fresh slice.
func (s Stream[T]) Collect() []T {
	out := make([]T, len(s.elems))
	copy(out, s.elems)
	return out
}

// Len returns the number of elements.
func (s Stream[T]) Len() int { return len(s.elems) }

// Each invokes fn for every element in order.
func (s Stream[T]) Each(fn func(T)) {
	for _, v := range s.elems {
		fn(v)
	}
}

// Map applies fn to every element of s, producing a stream of a different
// element type. The method form covers same-type transformations.
func Map[I, O any](s Stream[I], fn func(I) O) Stream[O] {
	out := make([]O, s.Len())
	for i, v := range s.elems {
		out[i] = fn(v)
	}
	return Stream[O]{elems: out}
}

// FlatMap applies fn to every element of s and flattens the results one
// level into a stream of a different element type.
func FlatMap[I, O any](s Stream[I], fn func(I) []O) Stream[O] {
	var out []O
	for _, v := range s.elems {
		out = append(out, fn(v)...)
	}
	return Stream[O]{elems: out}
}
