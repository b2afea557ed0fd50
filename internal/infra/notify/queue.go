// Package notify moves match notifications from the API process to the mailer
// through a Redis list.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/config"
	"foodshare-api/internal/pkg/errs"
	"foodshare-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultMaxRetries = 3

// Job is the envelope stored in the queue.
type Job struct {
	ID        string         `json:"id"`
	Message   shared.Message `json:"message"`
	Attempt   int            `json:"attempt"`
	CreatedAt time.Time      `json:"created_at"`
}

type Queue struct {
	client     *redis.Client
	key        string
	dlqKey     string
	maxRetries int
	clock      clock.Clock
}

func NewQueue(client *redis.Client, cfg config.NotifyConfig, clk clock.Clock) *Queue {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Queue{
		client:     client,
		key:        cfg.QueueKey,
		dlqKey:     cfg.DLQKey,
		maxRetries: maxRetries,
		clock:      clk,
	}
}

func (q *Queue) Enqueue(ctx context.Context, msg shared.Message) (*Job, error) {
	job := &Job{
		ID:        uuid.NewString(),
		Message:   msg,
		CreatedAt: q.clock.Now(),
	}
	if err := q.push(ctx, q.key, job); err != nil {
		return nil, err
	}
	slog.Debug("enqueued notification", "job_id", job.ID, "subject", msg.Subject)
	return job, nil
}

// Dequeue waits up to timeout for a job. It returns nil without error when
// the wait times out; undecodable payloads are moved to the dead-letter list.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (*Job, error) {
	result, err := q.client.BLPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "blpop")
	}
	if len(result) < 2 {
		return nil, nil
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		slog.Warn("invalid notification payload", "error", err.Error())
		if pushErr := q.client.RPush(ctx, q.dlqKey, result[1]).Err(); pushErr != nil {
			return nil, errs.Wrap(pushErr, "dlq push")
		}
		return nil, nil
	}
	return &job, nil
}

// Retry re-enqueues the job, or parks it on the dead-letter list once it has
// used up its attempts.
func (q *Queue) Retry(ctx context.Context, job *Job) error {
	job.Attempt++
	if job.Attempt >= q.maxRetries {
		if err := q.push(ctx, q.dlqKey, job); err != nil {
			slog.Error("dlq push failed", "job_id", job.ID, "error", err.Error())
			return err
		}
		slog.Warn("notification moved to DLQ", "job_id", job.ID, "attempt", job.Attempt)
		return nil
	}
	if err := q.push(ctx, q.key, job); err != nil {
		return err
	}
	slog.Info("notification retried", "job_id", job.ID, "attempt", job.Attempt)
	return nil
}

func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}

func (q *Queue) DeadLetters(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.dlqKey).Result()
}

func (q *Queue) push(ctx context.Context, key string, job *Job) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return errs.Wrap(err, "marshal job")
	}
	if err := q.client.RPush(ctx, key, raw).Err(); err != nil {
		return errs.Wrap(err, "rpush")
	}
	return nil
}
