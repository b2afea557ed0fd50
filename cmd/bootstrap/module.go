package bootstrap

import (
	"foodshare-api/cmd/bootstrap/components"
	"foodshare-api/internal/pkg/config"

	"go.uber.org/fx"
)

// NewModule assembles the application graph. The store driver and whether
// Redis is configured decide which infrastructure modules are included.
func NewModule(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		persistenceOption(cfg),
		notifyOption(cfg),
		components.UseCaseModule,
		components.WorkerModule,
		components.HandlerModule,
	)
}

func persistenceOption(cfg config.Config) fx.Option {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(DBModule, components.PostgresPersistenceModule)
}

func notifyOption(cfg config.Config) fx.Option {
	if cfg.Redis.Enabled() {
		return fx.Options(RedisModule, components.RedisNotifyModule)
	}
	return components.LocalNotifyModule
}
