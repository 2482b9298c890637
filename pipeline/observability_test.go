package pipeline

import (
	"context"
	stderrors "errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/flowkit/logger"
	"github.com/kbukum/flowkit/observability"
)

func TestStageWithTracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	stage := StageWithTracing(Stage[int]{Name: "double", Handler: double}, "math")

	p := New[int]("traced").Add(stage)
	got, err := p.Execute(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Errorf("expected 4, got %d", got)
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name != "math.double" {
		t.Errorf("expected span 'math.double', got %q", spans[0].Name)
	}
}

func TestStageWithTracing_RecordsError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	boom := stderrors.New("fail")
	stage := StageWithTracing(Stage[int]{
		Name:    "bad",
		Handler: func(_ context.Context, _ int) (int, error) { return 0, boom },
	}, "math")

	_, err := New[int]("traced").Add(stage).Execute(context.Background(), 1)
	if err == nil {
		t.Fatal("expected failure to propagate through the decorator")
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 || len(spans[0].Events) == 0 {
		t.Error("expected error recorded on span")
	}
}

func TestStageWithMetrics(t *testing.T) {
	metrics, err := observability.NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatal(err)
	}

	stage := StageWithMetrics(Stage[int]{Name: "double", Handler: double}, metrics)
	got, err := New[int]("metered").Add(stage).Execute(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
}

func TestStageWithLogging(t *testing.T) {
	log := logger.NewDefault("test")
	stage := StageWithLogging(Stage[int]{Name: "double", Handler: double}, log)

	got, err := New[int]("logged").Add(stage).Execute(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
}

func TestStageDecorators_PreserveCondition(t *testing.T) {
	called := false
	stage := Stage[int]{
		Name:      "gated",
		Handler:   func(_ context.Context, n int) (int, error) { called = true; return n * 2, nil },
		Condition: func(_ context.Context, n int) (bool, error) { return n > 10, nil },
	}
	wrapped := StageWithLogging(stage, logger.NewDefault("test"))

	got, err := New[int]("cond").Add(wrapped).Execute(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 || called {
		t.Error("decorator must not bypass the stage condition")
	}
}
