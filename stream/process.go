package stream

import (
	"context"

	"github.com/kbukum/flowkit/errors"
	"github.com/kbukum/flowkit/sink"
	"github.com/kbukum/flowkit/source"
)

// Processor transforms a single item. Returning an error aborts the run.
type Processor[T any] func(ctx context.Context, item T) (T, error)

// Process pulls items from src, threads each through the processors in
// order, and delivers the final item to snk (when non-nil) before pulling
// the next one. Every fully processed item is also accumulated and
// returned, whether or not a sink is attached.
//
// The first failure aborts the run: a processor error is wrapped with the
// failing processor's position, a sink error with the sink's name, and a
// source error as a source failure. The items accumulated before the
// failure are returned alongside the error.
func Process[T any](ctx context.Context, src source.Source[T], snk sink.Sink[T], processors ...Processor[T]) ([]T, error) {
	it := src.Produce(ctx)
	defer it.Close()

	var results []T
	for {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		item, ok, err := it.Next(ctx)
		if err != nil {
			return results, errors.SourceFailed(err)
		}
		if !ok {
			return results, nil
		}

		for i, proc := range processors {
			item, err = proc(ctx, item)
			if err != nil {
				return results, errors.ProcessorFailed(i, err)
			}
		}

		results = append(results, item)

		if snk != nil {
			if err := snk.Consume(ctx, item); err != nil {
				return results, errors.SinkFailed(snk.Name(), err)
			}
		}
	}
}
