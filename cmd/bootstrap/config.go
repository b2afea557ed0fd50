package bootstrap

import (
	"foodshare-api/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies the loaded config and the slices of it that
// constructors take directly.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
		fx.Provide(
			func(c config.Config) config.CookieConfig { return c.Cookie },
			func(c config.Config) config.SweeperConfig { return c.Sweeper },
			func(c config.Config) config.NotifyConfig { return c.Notify },
		),
	)
}
