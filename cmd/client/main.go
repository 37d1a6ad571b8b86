package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clientapi "github.com/iudanet/fieldsync/internal/client/api"
	"github.com/iudanet/fieldsync/internal/client/auth"
	"github.com/iudanet/fieldsync/internal/client/cli"
	"github.com/iudanet/fieldsync/internal/client/data"
	"github.com/iudanet/fieldsync/internal/client/iocli"
	"github.com/iudanet/fieldsync/internal/client/lifecycle"
	"github.com/iudanet/fieldsync/internal/client/livesync"
	"github.com/iudanet/fieldsync/internal/client/state"
	"github.com/iudanet/fieldsync/internal/client/storage/boltdb"
	"github.com/iudanet/fieldsync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.Options{
		Version:   Version,
		Commit:    GitCommit,
		BuildDate: BuildDate,
		Open:      open,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// open собирает зависимости клиента поверх локальной базы
func open(ctx context.Context, cfg *config.Client) (*cli.Cli, func() error, error) {
	logger, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(logger)

	db, err := boltdb.New(ctx, cfg.DB.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	closeDB := func() error {
		if err := db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		return nil
	}

	if err := seedPortalURL(ctx, db, cfg.Portal.URL); err != nil {
		_ = closeDB()
		return nil, nil, err
	}

	users := state.NewUserHolder(db)
	tickets := state.NewTicketHolder(db)
	if err := users.Load(ctx); err != nil {
		_ = closeDB()
		return nil, nil, fmt.Errorf("failed to load users: %w", err)
	}
	if err := tickets.Load(ctx); err != nil {
		_ = closeDB()
		return nil, nil, fmt.Errorf("failed to load tickets: %w", err)
	}

	apiOpts := []clientapi.Option{
		clientapi.WithTimeout(cfg.Portal.Timeout),
		clientapi.WithUserAgent("fieldsync/" + Version),
		clientapi.WithLogger(logger),
	}
	if cfg.Portal.Token != "" {
		apiOpts = append(apiOpts, clientapi.WithBearerToken(cfg.Portal.Token))
	}
	apiClient := clientapi.NewClient("", apiOpts...)

	authService := auth.NewService(users, db, nil, logger)
	dataService := data.NewService(users, tickets, nil, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	schedCfg := cfg.LiveSync.Scheduler()
	scheduler := livesync.New(apiClient, users, tickets, db, logger,
		livesync.WithMetrics(livesync.NewMetrics(reg)),
		livesync.WithScope(authService.CanPushUsers),
	)
	runner := lifecycle.NewRunner(scheduler, db, authService, schedCfg, logger)

	app := cli.New(cli.Deps{
		IO:          iocli.NewStdio(),
		Auth:        authService,
		Data:        dataService,
		Syncer:      scheduler,
		API:         apiClient,
		Metadata:    db,
		Templates:   db,
		Runner:      runner,
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		MetricsAddr: cfg.Metrics.Addr,
		Logger:      logger,
	})

	closeFn := func() error {
		scheduler.Stop()
		return closeDB()
	}
	return app, closeFn, nil
}

// seedPortalURL сохраняет адрес из конфигурации, если устройство еще не настроено
func seedPortalURL(ctx context.Context, db *boltdb.Storage, url string) error {
	if !livesync.IsConfiguredEndpoint(url) {
		return nil
	}
	current, err := db.GetPortalURL(ctx)
	if err != nil {
		return fmt.Errorf("failed to read portal URL: %w", err)
	}
	if livesync.IsConfiguredEndpoint(current) {
		return nil
	}
	return db.SavePortalURL(ctx, url)
}
