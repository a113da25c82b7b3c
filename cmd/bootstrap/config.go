package bootstrap

import (
	"resqcart/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSectionsModule,
)

// ConfigSectionsModule splits an already provided Config into the sections single adapters take.
var ConfigSectionsModule = fx.Module("config/sections",
	fx.Provide(
		func(cfg config.Config) config.AIMLConfig { return cfg.AIML },
		func(cfg config.Config) config.TelegramConfig { return cfg.Telegram },
	),
)
