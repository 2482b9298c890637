package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/kbukum/flowkit/logger"
)

// Pipeline is an ordered, append-only sequence of stages over one datum
// type. Executions are independent; the only mutable state is the stage
// list, which must not grow concurrently with Execute.
type Pipeline[T any] struct {
	name   string
	stages []Stage[T]
	log    *logger.Logger
}

// New creates an empty pipeline with the given diagnostic name.
func New[T any](name string) *Pipeline[T] {
	if name == "" {
		name = "pipeline"
	}
	return &Pipeline[T]{
		name: name,
		log:  logger.Get("pipeline").WithFields(map[string]interface{}{logger.FieldPipeline: name}),
	}
}

// Name returns the pipeline's diagnostic name.
func (p *Pipeline[T]) Name() string { return p.name }

// Len returns the number of stages.
func (p *Pipeline[T]) Len() int { return len(p.stages) }

// AddStage appends an unconditional stage and returns the pipeline for
// chaining.
func (p *Pipeline[T]) AddStage(name string, handler Handler[T]) *Pipeline[T] {
	return p.Add(Stage[T]{Name: name, Handler: handler})
}

// AddStageWhen appends a stage gated by cond and returns the pipeline for
// chaining.
func (p *Pipeline[T]) AddStageWhen(name string, handler Handler[T], cond Condition[T]) *Pipeline[T] {
	return p.Add(Stage[T]{Name: name, Handler: handler, Condition: cond})
}

// Add appends a prepared stage, e.g. one wrapped by an observability
// decorator.
func (p *Pipeline[T]) Add(stage Stage[T]) *Pipeline[T] {
	p.stages = append(p.stages, stage)
	return p
}

// Execute threads initial through every stage in order. The first stage or
// condition failure aborts the run and is returned; no later stage runs.
func (p *Pipeline[T]) Execute(ctx context.Context, initial T) (T, error) {
	data := initial
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return data, err
		}
		out, _, err := stage.run(ctx, p.name, data)
		if err != nil {
			p.log.Error("stage failed", logger.Fields(
				logger.FieldStage, stage.Name,
				logger.FieldError, err.Error(),
			))
			return data, err
		}
		data = out
	}
	return data, nil
}

// StageStatus classifies the outcome of one stage in a Report.
type StageStatus string

const (
	StageCompleted StageStatus = "completed"
	StageSkipped   StageStatus = "skipped"
	StageFailed    StageStatus = "failed"
)

// StageResult holds the outcome of a single stage execution.
type StageResult struct {
	Name     string
	Status   StageStatus
	Duration time.Duration
	Err      error
}

// Report holds the outcome of one pipeline execution.
type Report[T any] struct {
	Pipeline string
	Stages   []StageResult
	Output   T
	Duration time.Duration
}

// ExecuteReport runs the pipeline like Execute while recording per-stage
// timing and status. On failure the report covers the stages reached so
// far; the failure is also returned.
func (p *Pipeline[T]) ExecuteReport(ctx context.Context, initial T) (*Report[T], error) {
	start := time.Now()
	report := &Report[T]{
		Pipeline: p.name,
		Stages:   make([]StageResult, 0, len(p.stages)),
	}

	data := initial
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			report.Output = data
			report.Duration = time.Since(start)
			return report, err
		}

		stageStart := time.Now()
		out, ran, err := stage.run(ctx, p.name, data)
		elapsed := time.Since(stageStart)

		if err != nil {
			report.Stages = append(report.Stages, StageResult{
				Name: stage.Name, Status: StageFailed, Duration: elapsed, Err: err,
			})
			report.Output = data
			report.Duration = time.Since(start)
			return report, err
		}

		status := StageCompleted
		if !ran {
			status = StageSkipped
		}
		report.Stages = append(report.Stages, StageResult{
			Name: stage.Name, Status: status, Duration: elapsed,
		})
		data = out
	}

	report.Output = data
	report.Duration = time.Since(start)
	return report, nil
}

// String implements fmt.Stringer.
func (p *Pipeline[T]) String() string {
	return fmt.Sprintf("Pipeline(name=%q, stages=%d)", p.name, len(p.stages))
}
