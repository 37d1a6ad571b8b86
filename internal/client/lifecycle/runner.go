// Package lifecycle запускает и останавливает живую синхронизацию вместе с приложением.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/fieldsync/internal/client/auth"
	"github.com/iudanet/fieldsync/internal/client/livesync"
	"github.com/iudanet/fieldsync/internal/client/storage"
)

//go:generate moq -out scheduler_mock.go . Scheduler

// Scheduler управляемая часть livesync.Scheduler
type Scheduler interface {
	Start(cfg livesync.Config) error
	Stop()
	Wait(ctx context.Context) error
	State() livesync.State
}

var _ Scheduler = (*livesync.Scheduler)(nil)

// Runner включает синхронизацию, когда для нее есть все условия:
// она разрешена в конфигурации, адрес портала задан и пользователь вошел.
type Runner struct {
	scheduler Scheduler
	metadata  storage.MetadataStorage
	auth      auth.Service
	cfg       livesync.Config
	logger    *slog.Logger
}

// NewRunner создает Runner
func NewRunner(
	scheduler Scheduler,
	metadata storage.MetadataStorage,
	authService auth.Service,
	cfg livesync.Config,
	logger *slog.Logger,
) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		scheduler: scheduler,
		metadata:  metadata,
		auth:      authService,
		cfg:       cfg,
		logger:    logger.With("component", "lifecycle"),
	}
}

// Start запускает планировщик. Возвращает false, если условия не выполнены;
// это не ошибка: приложение продолжает работать офлайн.
func (r *Runner) Start(ctx context.Context) (bool, error) {
	if !r.cfg.Enabled {
		r.logger.Info("Live sync disabled in config")
		return false, nil
	}

	endpoint, err := r.metadata.GetPortalURL(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read portal endpoint: %w", err)
	}
	if !livesync.IsConfiguredEndpoint(endpoint) {
		r.logger.Info("Portal endpoint not configured, live sync not started")
		return false, nil
	}

	ok, err := r.auth.IsAuthenticated(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	if !ok {
		r.logger.Info("No active session, live sync not started")
		return false, nil
	}

	if err := r.scheduler.Start(r.cfg); err != nil {
		return false, fmt.Errorf("failed to start live sync: %w", err)
	}
	r.logger.Info("Live sync running", "endpoint", endpoint, "interval", r.cfg.PollInterval)
	return true, nil
}

// Stop останавливает таймер и ждет завершения выполняющегося цикла
// не дольше, чем позволяет ctx.
func (r *Runner) Stop(ctx context.Context) error {
	r.scheduler.Stop()
	if err := r.scheduler.Wait(ctx); err != nil {
		r.logger.Warn("Live sync did not drain in time", "error", err)
		return err
	}
	return nil
}

// State возвращает состояние планировщика
func (r *Runner) State() livesync.State {
	return r.scheduler.State()
}

// Run запускает синхронизацию и держит ее до отмены ctx.
// stopCtx ограничивает ожидание при остановке.
func (r *Runner) Run(ctx context.Context, stopCtx func() (context.Context, context.CancelFunc)) error {
	if _, err := r.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()

	sctx, cancel := stopCtx()
	defer cancel()
	return r.Stop(sctx)
}
