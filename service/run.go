package service

import (
	"context"
	"log/slog"

	gfshutdown "github.com/gelmium/graceful-shutdown"
)

// Run starts the app and blocks until SIGINT/SIGTERM or a serve failure.
// It returns the process exit code.
func (a *App) Run(ctx context.Context) int {
	_, serveErr, err := a.Start()
	if err != nil {
		a.Log.Error("start", slog.Any("err", err))
		a.close()

		return 1
	}

	wait := gfshutdown.GracefulShutdown(ctx, a.shutdownTimeout, map[string]gfshutdown.Operation{
		a.label: a.Shutdown,
	})

	select {
	case code := <-wait:
		return code
	case err, ok := <-serveErr:
		if !ok {
			return <-wait
		}

		a.Log.Error("serve", slog.Any("err", err))
		a.close()

		return 1
	}
}
