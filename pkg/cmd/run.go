package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/oursky/isoduration/pkg/isoduration"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run starts modules and waits until one fails or SIGINT/SIGTERM arrives.
func Run(logger *zap.Logger, modules []Module) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return RunContext(ctx, logger, modules)
}

// RunContext is Run with the lifetime bound to ctx instead of signals.
func RunContext(ctx context.Context, logger *zap.Logger, modules []Module) error {
	g, ctx := errgroup.WithContext(ctx)
	started := time.Now()

	logger.Info("starting...", zap.Int("modules", len(modules)))
	for _, m := range modules {
		logger.Debug("starting module", zap.String("module", fmt.Sprintf("%T", m)))
		if err := m.Start(ctx, g); err != nil {
			return fmt.Errorf("error while starting %T: %w", m, err)
		}
	}

	go func() {
		<-ctx.Done()
		logger.Info("exiting...")
	}()

	err := g.Wait()
	logger.Info("stopped", isoduration.StdField("uptime", time.Since(started).Round(time.Millisecond)))
	return err
}
