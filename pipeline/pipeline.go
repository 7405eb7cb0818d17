package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
	"github.com/kbukum/pipekit/queue"
)

// Options configures one pipeline run.
type Options struct {
	putTimeout time.Duration
	getTimeout time.Duration
	log        *logger.Logger
	metrics    *observability.PipelineMetrics
}

// Option is a functional option for Run.
type Option func(*Options)

// WithPutTimeout bounds each producer-side put. Zero (the default) blocks
// indefinitely.
func WithPutTimeout(d time.Duration) Option {
	return func(o *Options) { o.putTimeout = d }
}

// WithGetTimeout bounds each consumer-side get. Zero (the default) blocks
// indefinitely.
func WithGetTimeout(d time.Duration) Option {
	return func(o *Options) { o.getTimeout = d }
}

// WithLogger sets the logger for the run. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) { o.log = l }
}

// WithMetrics sets the metric instruments for the run. A nil value (the
// default) records nothing.
func WithMetrics(m *observability.PipelineMetrics) Option {
	return func(o *Options) { o.metrics = m }
}

// Run pipes every value of source through a fresh bounded queue of the given
// capacity and returns the values the consumer drained, in source order.
//
// The producer and consumer run as independent goroutines that interact only
// through the queue. Run waits for both to finish before returning. A
// producer-side failure is returned to the caller after the consumer has
// drained and terminated, together with the items that made it through, so
// "failed partway but drained cleanly" is distinguishable from success.
//
// Queue, producer, and consumer are constructed per invocation and never
// reused across runs.
func Run[T any](ctx context.Context, source Source[T], capacity int, opts ...Option) ([]T, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.GetGlobalLogger()
	}

	q, err := queue.New[message[T]](capacity)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := o.log.WithFields(logger.Fields(
		logger.FieldRunID, runID,
		logger.FieldCapacity, capacity,
	))

	ctx, span := observability.StartSpan(ctx, "pipeline.run")
	defer span.End()
	observability.SetSpanAttribute(ctx, "run.id", runID)
	observability.SetSpanAttribute(ctx, "queue.capacity", capacity)

	prod := &producer[T]{
		queue:      q,
		source:     source,
		putTimeout: o.putTimeout,
		log:        log.WithComponent("producer"),
		metrics:    o.metrics,
	}
	cons := &consumer[T]{
		queue:      q,
		getTimeout: o.getTimeout,
		log:        log.WithComponent("consumer"),
		metrics:    o.metrics,
	}

	start := time.Now()
	log.Debug("pipeline starting")

	var wg sync.WaitGroup
	var prodErr, consErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		prodErr = prod.run(ctx)
	}()
	go func() {
		defer wg.Done()
		consErr = cons.run(ctx)
	}()
	wg.Wait()

	items := cons.items()
	duration := time.Since(start)

	// The producer error is the root cause when both sides failed: a dead
	// producer is what forces the consumer onto its timeout.
	err = prodErr
	if err == nil {
		err = consErr
	}

	status := "ok"
	if err != nil {
		status = "error"
		observability.SetSpanError(ctx, err)
		log.Error("pipeline failed", logger.Fields(
			logger.FieldItems, len(items),
			logger.FieldDuration, duration.Milliseconds(),
			logger.FieldError, err.Error(),
		))
	} else {
		log.Info("pipeline completed", logger.Fields(
			logger.FieldItems, len(items),
			logger.FieldDuration, duration.Milliseconds(),
		))
	}
	o.metrics.RecordRun(ctx, status, duration, int64(len(items)))

	return items, err
}
