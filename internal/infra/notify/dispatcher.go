package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodshare-api/internal/pkg/errs"
	"foodshare-api/internal/usecase/shared"
)

var (
	ErrBufferFull = errs.New("notification buffer full")
	ErrStopped    = errs.New("notification dispatcher stopped")
)

const drainTimeout = 5 * time.Second

type Enqueuer interface {
	Enqueue(ctx context.Context, msg shared.Message) (*Job, error)
}

// Dispatcher accepts notifications without blocking the request path and
// forwards them to the queue from a single goroutine.
type Dispatcher struct {
	queue   Enqueuer
	pending chan shared.Message
	done    chan struct{}

	mu      sync.RWMutex
	stopped bool
}

func NewDispatcher(queue Enqueuer, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	return &Dispatcher{
		queue:   queue,
		pending: make(chan shared.Message, buffer),
		done:    make(chan struct{}),
	}
}

func (d *Dispatcher) Notify(_ context.Context, msg shared.Message) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}
	select {
	case d.pending <- msg:
		return nil
	default:
		return ErrBufferFull
	}
}

func (d *Dispatcher) Start() {
	go d.run()
}

// Stop flushes what is already buffered, bounded by ctx.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.pending)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for msg := range d.pending {
		ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		if _, err := d.queue.Enqueue(ctx, msg); err != nil {
			slog.Error("failed to enqueue notification", "subject", msg.Subject, "error", err.Error())
		}
		cancel()
	}
}

// LogNotifier stands in for the queue when Redis is not configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, msg shared.Message) error {
	slog.Info("notification (no queue configured)", "to", msg.To, "subject", msg.Subject)
	return nil
}
