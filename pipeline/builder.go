package pipeline

// Builder accumulates stage descriptors and materializes pipelines.
//
// Build snapshots the accumulated stages, so a built pipeline never shares
// mutable state with the builder or with pipelines built later.
type Builder[T any] struct {
	name   string
	stages []Stage[T]
}

// NewBuilder creates a builder for a pipeline with the given name.
func NewBuilder[T any](name string) *Builder[T] {
	return &Builder[T]{name: name}
}

// Stage appends an unconditional stage and returns the builder for
// chaining.
func (b *Builder[T]) Stage(name string, handler Handler[T]) *Builder[T] {
	b.stages = append(b.stages, Stage[T]{Name: name, Handler: handler})
	return b
}

// Build materializes a pipeline from the stages recorded so far.
func (b *Builder[T]) Build() *Pipeline[T] {
	p := New[T](b.name)
	p.stages = make([]Stage[T], len(b.stages))
	copy(p.stages, b.stages)
	return p
}
