package bootstrap

import (
	"tipi-reserve/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.AdminConfig { return cfg.Admin },
		func(cfg config.Config) config.EventConfig { return cfg.Event },
	),
)
