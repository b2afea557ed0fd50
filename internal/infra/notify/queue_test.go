//go:build unit

package notify

import (
	"context"
	"testing"
	"time"

	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/config"
	"foodshare-api/internal/usecase/shared"
	"foodshare-api/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) (*Queue, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.NewTestConfig().Notify
	return NewQueue(client, cfg, clock.NewMockClock(builder.FixedNow)), mr
}

func TestQueue_EnqueueDequeue(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)
	msg := shared.Message{To: "org@example.com", Subject: "Donation approved", HTMLBody: "<p>hi</p>"}

	enqueued, err := q.Enqueue(ctx, msg)
	require.NoError(t, err)

	job, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, enqueued.ID, job.ID)
	assert.Equal(t, msg, job.Message)
	assert.Equal(t, 0, job.Attempt)
	assert.True(t, job.CreatedAt.Equal(builder.FixedNow))
}

func TestQueue_RetryMovesToDLQAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	job, err := q.Enqueue(ctx, shared.Message{To: "a@example.com", Subject: "s"})
	require.NoError(t, err)
	_, err = q.Dequeue(ctx, time.Second)
	require.NoError(t, err)

	for i := 1; i < q.maxRetries; i++ {
		require.NoError(t, q.Retry(ctx, job))
		n, err := q.Len(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n, "attempt %d should be requeued", i)
		_, err = q.Dequeue(ctx, time.Second)
		require.NoError(t, err)
	}

	require.NoError(t, q.Retry(ctx, job))
	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	dead, err := q.DeadLetters(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dead)
}

func TestQueue_InvalidPayloadGoesToDLQ(t *testing.T) {
	ctx := context.Background()
	q, mr := newTestQueue(t)

	_, err := mr.RPush(q.key, "not json")
	require.NoError(t, err)

	job, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Nil(t, job)

	dead, err := q.DeadLetters(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dead)
}
