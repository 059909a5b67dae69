package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

func InterruptSignal() chan os.Signal {
	wait := make(chan os.Signal, 1)
	signal.Notify(wait, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	return wait
}

// InterruptContext returns a context canceled on the first interrupt signal.
func InterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	wait := InterruptSignal()
	go func() {
		defer signal.Stop(wait)
		select {
		case sig := <-wait:
			log.WithField("signal", sig).Warn("Interrupted")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
