// Package observability provides OpenTelemetry tracing and metrics
// integration for flowkit components.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "pipeline.execute")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-service"))
//	metrics.RecordOperation(ctx, "event.bus", "publish", "ok", duration)
//
// The event bus and the pipeline stage decorators consume *Metrics when one
// is supplied; without one, recording is skipped.
package observability
