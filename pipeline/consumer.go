package pipeline

import (
	"context"
	"time"

	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/observability"
	"github.com/kbukum/pipekit/queue"
)

// consumer pulls envelopes from the shared queue into its destination slice
// until it observes the end-of-stream marker. Run once; not restartable.
type consumer[T any] struct {
	queue      *queue.BoundedQueue[message[T]]
	getTimeout time.Duration // 0 means block indefinitely
	log        *logger.Logger
	metrics    *observability.PipelineMetrics

	dest []T
}

// run drains the queue in arrival order. Only the marker halts the loop;
// every other envelope is appended to the destination, so payloads that
// happen to equal T's zero value flow through untouched. A configured get
// timeout is the caller's guard against a producer that died before the
// marker could be delivered.
func (c *consumer[T]) run(ctx context.Context) error {
	for {
		var msg message[T]
		if c.getTimeout > 0 {
			m, err := c.queue.GetTimeout(c.getTimeout)
			if err != nil {
				c.metrics.RecordTimeout(ctx, "queue.get")
				c.log.Error("consumer gave up waiting", logger.Fields(
					logger.FieldItems, len(c.dest),
					logger.FieldError, err.Error(),
				))
				return err
			}
			msg = m
		} else {
			msg = c.queue.Get()
		}

		if msg.end {
			c.log.Debug("consumer observed end-of-stream", logger.Fields(logger.FieldItems, len(c.dest)))
			return nil
		}

		c.dest = append(c.dest, msg.value)
		c.metrics.RecordConsumed(ctx, 1)
	}
}

// items returns the destination slice. Valid only after run has returned.
func (c *consumer[T]) items() []T {
	return c.dest
}
