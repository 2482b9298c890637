package pipeline

import (
	"context"

	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/predicate"
)

// Handler transforms the pipeline datum at one stage.
type Handler[T any] func(ctx context.Context, data T) (T, error)

// Condition gates a stage. Returning false skips the stage's handler and
// carries the data through unchanged; an error aborts the pipeline.
type Condition[T any] func(ctx context.Context, data T) (bool, error)

// When adapts a pure predicate into a stage condition.
func When[T any](p predicate.Predicate[T]) Condition[T] {
	return func(_ context.Context, data T) (bool, error) {
		return p(data), nil
	}
}

// Stage is one named, optionally conditional unit of work.
type Stage[T any] struct {
	// Name identifies the stage in diagnostics; uniqueness is not required.
	Name string
	// Handler transforms the datum when the stage runs.
	Handler Handler[T]
	// Condition, when set, gates the handler.
	Condition Condition[T]
}

// run evaluates the condition (if any) and invokes the handler.
// The bool result reports whether the handler actually ran.
func (s Stage[T]) run(ctx context.Context, pipelineName string, data T) (T, bool, error) {
	if s.Condition != nil {
		ok, err := s.Condition(ctx, data)
		if err != nil {
			return data, false, errors.ConditionFailed(pipelineName, s.Name, err)
		}
		if !ok {
			return data, false, nil
		}
	}

	out, err := s.Handler(ctx, data)
	if err != nil {
		return data, true, errors.StageFailed(pipelineName, s.Name, err)
	}
	return out, true, nil
}
