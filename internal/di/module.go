package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/userservice/internal/app"
	"github.com/polkiloo/userservice/internal/config"
	"github.com/polkiloo/userservice/internal/logger"
	"github.com/polkiloo/userservice/internal/metrics"
	"github.com/polkiloo/userservice/internal/server/http/router"
	"github.com/polkiloo/userservice/internal/server/http/validation"
	"github.com/polkiloo/userservice/internal/storage/postgres"
	"github.com/polkiloo/userservice/internal/usecase"
	"github.com/polkiloo/userservice/internal/worker"
)

// Module composes the application graph. opts are appended last so callers
// can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		postgres.Module,
		usecase.Module,
		validation.Module,
		fx.Provide(
			func(s *postgres.Storage) app.DatabaseProbe { return s },
			func(s *postgres.Storage) worker.DatabaseProbe { return s },
		),
		worker.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
