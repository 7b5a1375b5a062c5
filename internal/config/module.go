package config

import (
	"time"

	"go.uber.org/fx"
)

// Module exposes the configuration loader and the configured time zone.
var Module = fx.Provide(
	Load,
	func(cfg *Config) *time.Location { return cfg.Location },
)
