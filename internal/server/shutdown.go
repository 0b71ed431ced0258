package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// shutdownGrace is how long in-flight requests get to finish once a stop
// signal arrives.
const shutdownGrace = 5 * time.Second

// GracefulShutdown blocks until SIGINT or SIGTERM, drains the HTTP server,
// and signals done so main can exit.
func GracefulShutdown(srv *http.Server, logger *zap.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info("Stop signal received, draining requests")

	// A second signal now kills the process immediately.
	stop()

	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(drainCtx); err != nil {
		logger.Error("Drain did not finish cleanly", zap.Error(err))
	}

	logger.Info("Server stopped")
	done <- true
}
