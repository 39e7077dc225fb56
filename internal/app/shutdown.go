package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"confreview-parser/internal/observability"
)

// GracefulShutdown returns a context cancelled on SIGINT/SIGTERM. The
// engine checks cancellation between per-row iterations, so an
// interrupted run stops at the next row boundary and still releases the
// browser.
func GracefulShutdown(logger *observability.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	return ctx, cancel
}
