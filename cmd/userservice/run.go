package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/fx"
)

// runnable is the subset of *fx.App used by run.
type runnable interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Wait() <-chan fx.ShutdownSignal
	StopTimeout() time.Duration
}

// run starts the application, blocks until ctx is cancelled or fx requests a
// shutdown, then stops it. The returned value is the process exit code; a
// shutdown requested with fx.ExitCode propagates that code.
func run(ctx context.Context, app runnable, stderr io.Writer) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start userservice: %v\n", err)
		return 1
	}

	code := 0
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()

	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(stderr, "failed to stop userservice: %v\n", err)
		return 1
	}
	return code
}
