package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// shutdownTimeout ограничивает остановку планировщика и сервера метрик
const shutdownTimeout = 10 * time.Second

// runDaemon запускает фоновую синхронизацию и держит процесс до отмены ctx
func (c *Cli) runDaemon(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if c.metrics != nil && c.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", c.metrics)
		srv := &http.Server{
			Addr:              c.metricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			c.logger.Info("Metrics server listening", "addr", c.metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	c.io.Println("Live sync daemon running, press Ctrl+C to stop")
	g.Go(func() error {
		return c.runner.Run(gctx, func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), shutdownTimeout)
		})
	})

	if err := g.Wait(); err != nil {
		return err
	}
	c.io.Println("Live sync stopped")
	return nil
}
