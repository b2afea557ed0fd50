package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const (
	pollTimeout  = 5 * time.Second
	retryBackoff = 2 * time.Second
)

// Handler delivers one job. A returned error sends the job back through Retry.
type Handler func(ctx context.Context, job *Job) error

type Consumer struct {
	queue   *Queue
	handler Handler
	backoff time.Duration
}

func NewConsumer(queue *Queue, handler Handler) *Consumer {
	return &Consumer{queue: queue, handler: handler, backoff: retryBackoff}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			slog.Info("notification consumer stopping")
			return
		}
		if err := c.ProcessOne(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				continue
			}
			slog.Warn("dequeue error", "error", err.Error())
			c.sleep(ctx)
		}
	}
}

// ProcessOne handles at most one job.
func (c *Consumer) ProcessOne(ctx context.Context) error {
	job, err := c.queue.Dequeue(ctx, pollTimeout)
	if err != nil || job == nil {
		return err
	}

	if err := c.handler(ctx, job); err != nil {
		slog.Error("notification delivery failed", "job_id", job.ID, "attempt", job.Attempt, "error", err.Error())
		if reErr := c.queue.Retry(ctx, job); reErr != nil {
			slog.Error("retry enqueue failed", "job_id", job.ID, "error", reErr.Error())
		}
		c.sleep(ctx)
	}
	return nil
}

func (c *Consumer) sleep(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(c.backoff):
	}
}

// LogDelivery is the mailer's delivery step; sending mail is left to an
// external relay that tails these logs.
func LogDelivery(_ context.Context, job *Job) error {
	slog.Info("notification delivered",
		"job_id", job.ID,
		"to", job.Message.To,
		"subject", job.Message.Subject,
		"bytes", len(job.Message.HTMLBody),
	)
	return nil
}
