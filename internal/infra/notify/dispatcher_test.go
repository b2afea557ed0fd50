//go:build unit

package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"foodshare-api/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingQueue struct {
	mu   sync.Mutex
	msgs []shared.Message
	err  error
}

func (q *recordingQueue) Enqueue(_ context.Context, msg shared.Message) (*Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return nil, q.err
	}
	q.msgs = append(q.msgs, msg)
	return &Job{Message: msg}, nil
}

func (q *recordingQueue) messages() []shared.Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]shared.Message(nil), q.msgs...)
}

func TestDispatcher_FlushesOnStop(t *testing.T) {
	q := &recordingQueue{}
	d := NewDispatcher(q, 8)
	d.Start()

	for _, subject := range []string{"one", "two", "three"} {
		require.NoError(t, d.Notify(context.Background(), shared.Message{To: "x@example.com", Subject: subject}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	got := q.messages()
	require.Len(t, got, 3)
	assert.Equal(t, "one", got[0].Subject)
	assert.Equal(t, "three", got[2].Subject)

	assert.ErrorIs(t, d.Notify(context.Background(), shared.Message{}), ErrStopped)
}

func TestDispatcher_FullBufferDoesNotBlock(t *testing.T) {
	d := NewDispatcher(&recordingQueue{}, 1)

	require.NoError(t, d.Notify(context.Background(), shared.Message{Subject: "first"}))
	err := d.Notify(context.Background(), shared.Message{Subject: "second"})
	assert.ErrorIs(t, err, ErrBufferFull)
}

func TestDispatcher_EnqueueFailureIsSwallowed(t *testing.T) {
	q := &recordingQueue{err: errors.New("redis down")}
	d := NewDispatcher(q, 2)
	d.Start()

	require.NoError(t, d.Notify(context.Background(), shared.Message{Subject: "lost"}))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))
	assert.Empty(t, q.messages())
}
