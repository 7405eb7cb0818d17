// Package observability provides OpenTelemetry tracing and metrics
// integration for pipeline runs.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("pipedemo"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("pipedemo"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewPipelineMetrics(observability.Meter("pipedemo"))
//	items, err := pipeline.Run(ctx, src, 2, pipeline.WithMetrics(metrics))
//
// When no provider is initialized the global no-op providers are used, so
// instrumented code needs no guards.
package observability
