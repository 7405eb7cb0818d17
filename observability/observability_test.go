package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("pipedemo")

	if cfg.ServiceName != "pipedemo" {
		t.Errorf("expected ServiceName 'pipedemo', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("pipedemo")

	if cfg.ServiceName != "pipedemo" {
		t.Errorf("expected ServiceName 'pipedemo', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestNewPipelineMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := NewPipelineMetrics(meter)
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected non-nil metrics")
	}

	ctx := context.Background()
	metrics.RecordProduced(ctx, 3)
	metrics.RecordConsumed(ctx, 3)
	metrics.RecordTimeout(ctx, "queue.put")
	metrics.RecordFailure(ctx, "producer")
	metrics.RecordRun(ctx, "ok", 100*time.Millisecond, 3)
}

func TestPipelineMetrics_NilReceiverRecordsNothing(t *testing.T) {
	var metrics *PipelineMetrics
	ctx := context.Background()

	// Must not panic.
	metrics.RecordProduced(ctx, 1)
	metrics.RecordConsumed(ctx, 1)
	metrics.RecordTimeout(ctx, "queue.get")
	metrics.RecordFailure(ctx, "producer")
	metrics.RecordRun(ctx, "error", time.Second, 0)
}

func TestStartSpan_RecordsWithExporter(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	ctx, span := StartSpan(context.Background(), "pipeline.run")
	SetSpanAttribute(ctx, "run.id", "test-run")
	SetSpanAttribute(ctx, "queue.capacity", 2)
	SetSpanError(ctx, errors.New("boom"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 exported span, got %d", len(spans))
	}
	if spans[0].Name != "pipeline.run" {
		t.Errorf("expected span name 'pipeline.run', got %s", spans[0].Name)
	}
	if len(spans[0].Events) == 0 {
		t.Error("expected error event on span")
	}
}

func TestSetSpanAttribute_NoSpanIsNoop(t *testing.T) {
	// Must not panic without a recording span in context.
	SetSpanAttribute(context.Background(), "key", "value")
	SetSpanError(context.Background(), errors.New("ignored"))
}
