package logger

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Module wires the slog logger and routes fx's own events through it.
var Module = fx.Options(
	fx.Provide(New),
	fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
		return &fxevent.SlogLogger{Logger: l}
	}),
)
