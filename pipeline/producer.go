package pipeline

import (
	"context"
	"time"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
	"github.com/kbukum/pipekit/queue"
)

// producer drains a Source into the shared queue in source order, one put
// per item. Run once; not restartable.
type producer[T any] struct {
	queue      *queue.BoundedQueue[message[T]]
	source     Source[T]
	putTimeout time.Duration // 0 means block indefinitely
	log        *logger.Logger
	metrics    *observability.PipelineMetrics
}

// run pushes every source value into the queue and finishes by delivering
// exactly one end-of-stream marker. The marker is delivered even when the
// source or a put fails, so the consumer is never left blocked behind a
// dead producer; the final put blocks indefinitely so it cannot be dropped.
func (p *producer[T]) run(ctx context.Context) (err error) {
	produced := 0

	defer func() {
		p.queue.Put(endOfStream[T]())
		if err != nil {
			p.log.Error("producer finished with error", logger.Fields(
				logger.FieldItems, produced,
				logger.FieldError, err.Error(),
			))
			return
		}
		p.log.Debug("producer finished", logger.Fields(logger.FieldItems, produced))
	}()
	defer func() {
		if cerr := p.source.Close(); cerr != nil && err == nil {
			err = errors.SourceFailure(cerr)
		}
	}()

	for {
		val, ok, serr := p.source.Next(ctx)
		if serr != nil {
			p.metrics.RecordFailure(ctx, "producer")
			return errors.SourceFailure(serr)
		}
		if !ok {
			return nil
		}

		if p.putTimeout > 0 {
			if perr := p.queue.PutTimeout(message[T]{value: val}, p.putTimeout); perr != nil {
				p.metrics.RecordTimeout(ctx, "queue.put")
				return perr
			}
		} else {
			p.queue.Put(message[T]{value: val})
		}

		produced++
		p.metrics.RecordProduced(ctx, 1)
	}
}
