package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/fieldsync/internal/config"
	"github.com/iudanet/fieldsync/internal/server/backup"
	"github.com/iudanet/fieldsync/internal/server/jwt"
	"github.com/iudanet/fieldsync/internal/server/middleware"
	"github.com/iudanet/fieldsync/internal/server/router"
	"github.com/iudanet/fieldsync/internal/server/storage/sqlite"
)

const (
	gracefulTimeout   = 15 * time.Second
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 60 * time.Second // восстановление копии может занять время
	idleTimeout       = 60 * time.Second
)

func (r *root) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the portal HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withStore(cmd, r.serve)
		},
	}
	cmd.Flags().String("addr", "", "Address to listen on (default :3000)")
	if err := r.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}
	return cmd
}

func (r *root) serve(ctx context.Context, cfg *config.Server, store *sqlite.Storage, logger *slog.Logger) error {
	backups, err := backup.NewService(r.opts.Fs, cfg.Backup.Dir, store, nil, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = backups.Close()
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := router.Deps{
		Sync:     store,
		Catalog:  store,
		Workday:  store,
		Pinger:   store,
		Backups:  backups,
		Registry: reg,
		Logger:   logger,
		Version:  r.opts.Version,
	}

	if cfg.RateLimit.Requests > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, nil, logger)
		defer limiter.Stop()
		deps.RateLimiter = limiter
	}

	if cfg.Auth.JWTSecret != "" {
		deps.Validator = jwt.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, store, nil)
		if n, err := store.DeleteExpiredTokens(ctx, time.Now()); err != nil {
			logger.Warn("Failed to prune expired tokens", "error", err)
		} else if n > 0 {
			logger.Info("Expired device tokens removed", "count", n)
		}
	} else {
		logger.Warn("Device authentication is disabled, set auth.jwt_secret to enable it")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.New(deps),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Portal listening", "addr", cfg.Server.Addr, "version", r.opts.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down portal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
