package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Shutdown stops the HTTP server, closes storage and releases the
// verification cache.
func (a *App) Shutdown() error {
	a.logger.Info("application-shutting-down")

	a.healthChecker.SetReady(false)

	if a.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := a.httpServer.Shutdown(ctx)
		if err != nil {
			a.logger.Error("http-server-shutdown-failed", zap.Error(err))
		}
	}

	a.wg.Wait()

	if a.store != nil {
		err := a.store.Close()
		if err != nil {
			a.logger.Error("storage-close-failed", zap.Error(err))
		}
	}

	if a.verifyCache != nil {
		a.verifyCache.Close()
	}

	a.logger.Info("application-stopped")

	return nil
}
