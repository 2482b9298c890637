package pipeline

import (
	"context"
	"time"

	"github.com/kbukum/flowkit/logger"
	"github.com/kbukum/flowkit/observability"
)

// StageWithTracing wraps a stage with OpenTelemetry span creation.
// Each execution creates a span named "{prefix}.{stageName}".
func StageWithTracing[T any](stage Stage[T], prefix string) Stage[T] {
	inner := stage.Handler
	stage.Handler = func(ctx context.Context, data T) (T, error) {
		ctx, span := observability.StartSpan(ctx, prefix+"."+stage.Name)
		defer span.End()

		observability.SetSpanAttribute(ctx, observability.AttrStageName, stage.Name)

		out, err := inner(ctx, data)
		if err != nil {
			observability.SetSpanError(ctx, err)
		}
		return out, err
	}
	return stage
}

// StageWithMetrics wraps a stage with metric recording.
// Records operation count, duration, and errors.
func StageWithMetrics[T any](stage Stage[T], metrics *observability.Metrics) Stage[T] {
	inner := stage.Handler
	stage.Handler = func(ctx context.Context, data T) (T, error) {
		start := time.Now()
		out, err := inner(ctx, data)
		duration := time.Since(start)

		status := "ok"
		if err != nil {
			status = "error"
			metrics.RecordError(ctx, "stage", stage.Name)
		}
		metrics.RecordOperation(ctx, "pipeline", stage.Name, status, duration)

		return out, err
	}
	return stage
}

// StageWithLogging wraps a stage with execution logging.
// Logs stage name, duration, and success/error status.
func StageWithLogging[T any](stage Stage[T], log *logger.Logger) Stage[T] {
	inner := stage.Handler
	stage.Handler = func(ctx context.Context, data T) (T, error) {
		start := time.Now()
		out, err := inner(ctx, data)
		duration := time.Since(start)

		fields := map[string]interface{}{
			logger.FieldStage:    stage.Name,
			logger.FieldDuration: duration.Milliseconds(),
		}

		if err != nil {
			fields[logger.FieldError] = err.Error()
			log.Error("stage failed", fields)
		} else {
			log.Debug("stage completed", fields)
		}

		return out, err
	}
	return stage
}
