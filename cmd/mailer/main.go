// Command mailer drains the notification queue that the API fills.
package main

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"foodshare-api/cmd/bootstrap"
	"foodshare-api/internal/infra/notify"
	"foodshare-api/internal/pkg/clock"
	"foodshare-api/internal/pkg/config"

	"go.uber.org/fx"
)

func runConsumer(lc fx.Lifecycle, queue *notify.Queue, cfg config.NotifyConfig, logger *slog.Logger) {
	consumer := notify.NewConsumer(queue, notify.LogDelivery)
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				consumer.Run(ctx)
			}()
			logger.Info("mailer started", "queue", cfg.QueueKey, "max_retries", cfg.MaxRetries)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if !cfg.Redis.Enabled() {
		slog.Error("REDIS_ADDR is required for the mailer")
		os.Exit(1)
	}

	app := fx.New(
		bootstrap.ConfigModule(cfg),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		fx.Provide(
			clock.NewRealClock,
			notify.NewQueue,
		),
		fx.Invoke(runConsumer),
	)
	app.Run()
}
