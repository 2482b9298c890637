// Package pipeline provides an ordered chain of named transformation
// stages executed sequentially with full error propagation.
//
// Each stage consumes the previous stage's output. A stage may carry a
// condition; when the condition rejects the current data the stage is
// skipped and the data passes through unchanged. Unlike the event bus,
// a pipeline does NOT isolate failures: the first stage or condition
// error aborts the execution and no later stage runs.
//
//	p := pipeline.New[int]("math").
//	    AddStage("double", func(_ context.Context, n int) (int, error) { return n * 2, nil }).
//	    AddStage("increment", func(_ context.Context, n int) (int, error) { return n + 1, nil })
//	out, err := p.Execute(ctx, 3) // 7
//
// Pipelines are append-only and stateless across executions; do not call
// AddStage concurrently with Execute.
package pipeline
