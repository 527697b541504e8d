package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/jobnest/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful blocks until one of signals arrives, then stops s and runs the
// cleanup hooks in order, all within timeout
func Graceful(signals []os.Signal, s Stoppable, timeout time.Duration, log *logging.Logger, cleanup ...func(context.Context) error) {
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received")

	Stop(s, timeout, log, cleanup...)
}

// Stop shuts s down and then runs the cleanup hooks
func Stop(s Stoppable, timeout time.Duration, log *logging.Logger, cleanup ...func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
	} else {
		log.Info("graceful shutdown completed successfully")
	}

	for _, fn := range cleanup {
		if err := fn(ctx); err != nil {
			log.Warn("cleanup failed", "err", err)
		}
	}
}
