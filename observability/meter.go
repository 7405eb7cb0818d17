package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/pipekit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the application.
	ServiceName string
	// ServiceVersion is the version of the application.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// PipelineMetrics holds OpenTelemetry metric instruments for pipeline runs.
// A nil *PipelineMetrics is valid and records nothing.
type PipelineMetrics struct {
	itemsProduced metric.Int64Counter
	itemsConsumed metric.Int64Counter
	timeoutTotal  metric.Int64Counter
	failureTotal  metric.Int64Counter
	runTotal      metric.Int64Counter
	runDuration   metric.Float64Histogram
	runItems      metric.Int64Histogram
}

// NewPipelineMetrics creates metric instruments on the given meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	itemsProduced, err := meter.Int64Counter("pipeline.items.produced",
		metric.WithDescription("Total items put on the queue by producers"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.items.produced counter: %w", err)
	}

	itemsConsumed, err := meter.Int64Counter("pipeline.items.consumed",
		metric.WithDescription("Total items taken off the queue by consumers"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.items.consumed counter: %w", err)
	}

	timeoutTotal, err := meter.Int64Counter("pipeline.timeout.total",
		metric.WithDescription("Total queue operations that timed out, by operation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.timeout.total counter: %w", err)
	}

	failureTotal, err := meter.Int64Counter("pipeline.failure.total",
		metric.WithDescription("Total stage failures, by component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.failure.total counter: %w", err)
	}

	runTotal, err := meter.Int64Counter("pipeline.run.total",
		metric.WithDescription("Total pipeline runs, by status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("pipeline.run.duration",
		metric.WithDescription("Duration of pipeline runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.run.duration histogram: %w", err)
	}

	runItems, err := meter.Int64Histogram("pipeline.run.items",
		metric.WithDescription("Items drained per pipeline run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline.run.items histogram: %w", err)
	}

	return &PipelineMetrics{
		itemsProduced: itemsProduced,
		itemsConsumed: itemsConsumed,
		timeoutTotal:  timeoutTotal,
		failureTotal:  failureTotal,
		runTotal:      runTotal,
		runDuration:   runDuration,
		runItems:      runItems,
	}, nil
}

// RecordProduced records items put on the queue.
func (m *PipelineMetrics) RecordProduced(ctx context.Context, n int64) {
	if m == nil {
		return
	}
	m.itemsProduced.Add(ctx, n)
}

// RecordConsumed records items taken off the queue.
func (m *PipelineMetrics) RecordConsumed(ctx context.Context, n int64) {
	if m == nil {
		return
	}
	m.itemsConsumed.Add(ctx, n)
}

// RecordTimeout records a timed-out queue operation.
func (m *PipelineMetrics) RecordTimeout(ctx context.Context, operation string) {
	if m == nil {
		return
	}
	m.timeoutTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordFailure records a stage failure by component.
func (m *PipelineMetrics) RecordFailure(ctx context.Context, component string) {
	if m == nil {
		return
	}
	m.failureTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", component),
	))
}

// RecordRun records a completed pipeline run.
func (m *PipelineMetrics) RecordRun(ctx context.Context, status string, duration time.Duration, items int64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("status", status),
	)
	m.runTotal.Add(ctx, 1, attrs)
	m.runDuration.Record(ctx, duration.Seconds(), attrs)
	m.runItems.Record(ctx, items, attrs)
}
