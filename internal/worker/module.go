package worker

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/userservice/internal/config"
	"github.com/polkiloo/userservice/internal/metrics"
)

// Module runs the background database monitor for the lifetime of the app.
var Module = fx.Options(
	fx.Provide(newDatabaseMonitor),
	fx.Invoke(registerLifecycle),
)

type monitorParams struct {
	fx.In

	Probe   DatabaseProbe
	Metrics *metrics.Metrics
	Config  *config.Config
	Logger  *slog.Logger
}

func newDatabaseMonitor(p monitorParams) *DatabaseMonitor {
	return NewDatabaseMonitor(p.Probe, p.Metrics, p.Config.DatabaseProbe, p.Logger)
}

// The start context expires once startup completes, so the monitor runs on
// its own context and is cancelled by Stop.
func registerLifecycle(lc fx.Lifecycle, monitor *DatabaseMonitor) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			monitor.Start(context.Background())
			return nil
		},
		OnStop: func(context.Context) error {
			monitor.Stop()
			return nil
		},
	})
}
