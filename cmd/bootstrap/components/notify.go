package components

import (
	"context"

	"foodshare-api/internal/infra/lease"
	"foodshare-api/internal/infra/notify"
	"foodshare-api/internal/pkg/config"
	"foodshare-api/internal/usecase/shared"
	"foodshare-api/internal/worker"

	"go.uber.org/fx"
)

var RedisNotifyModule = fx.Module("notify/redis",
	fx.Provide(
		notify.NewQueue,
		fx.Annotate(
			lease.NewRedisLocker,
			fx.As(new(worker.Locker)),
		),
		fx.Annotate(
			NewDispatcher,
			fx.As(new(shared.Notifier)),
		),
	),
)

var LocalNotifyModule = fx.Module("notify/local",
	fx.Provide(
		func() worker.Locker { return lease.LocalLocker{} },
		func() shared.Notifier { return notify.LogNotifier{} },
	),
)

// NewDispatcher ties the dispatcher goroutine to the app lifecycle so
// buffered notifications are flushed on shutdown.
func NewDispatcher(lc fx.Lifecycle, queue *notify.Queue, cfg config.NotifyConfig) *notify.Dispatcher {
	d := notify.NewDispatcher(queue, cfg.Buffer)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
	return d
}
