// Package livesync периодически синхронизирует локальные данные с порталом.
package livesync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/fieldsync/internal/client/api"
	"github.com/iudanet/fieldsync/internal/client/state"
	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/models"
)

var (
	// ErrNotConfigured адрес портала не задан или равен значению по умолчанию
	ErrNotConfigured = errors.New("portal endpoint is not configured")
	// ErrCycleInProgress цикл синхронизации уже выполняется
	ErrCycleInProgress = errors.New("sync cycle already in progress")
	// ErrCyclePanic цикл завершился паникой
	ErrCyclePanic = errors.New("sync cycle panicked")
)

// State состояние планировщика
type State int

const (
	StateStopped  State = iota // таймер не взведен
	StateIdle                  // таймер взведен, цикла нет
	StateCycling               // цикл выполняется
	StateDisabled              // отключен после серии неудач
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateIdle:
		return "idle"
	case StateCycling:
		return "cycling"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ScopeFunc решает, может ли текущая сессия отправлять пользователей на портал
type ScopeFunc func(ctx context.Context) bool

// Option настраивает Scheduler
type Option func(*Scheduler)

// WithClock подменяет часы (в тестах используется clockwork.FakeClock)
func WithClock(clock clockwork.Clock) Option {
	return func(s *Scheduler) { s.clock = clock }
}

// WithMetrics включает запись метрик
func WithMetrics(m *Metrics) Option {
	return func(s *Scheduler) { s.metrics = m }
}

// WithScope задает проверку права на отправку пользователей.
// По умолчанию пользователи не отправляются.
func WithScope(fn ScopeFunc) Option {
	return func(s *Scheduler) {
		if fn != nil {
			s.scope = fn
		}
	}
}

// Scheduler управляет живой синхронизацией.
//
// Одновременно выполняется не больше одного цикла: срабатывание таймера
// или SyncNow во время цикла пропускаются, а не ставятся в очередь.
type Scheduler struct {
	apiClient api.ClientAPI
	users     *state.Holder[models.User]
	tickets   *state.Holder[models.ServiceTicket]
	metadata  storage.MetadataStorage
	scope     ScopeFunc
	clock     clockwork.Clock
	metrics   *Metrics
	logger    *slog.Logger
	backoff   *backoff.ExponentialBackOff

	// защищены mu
	lastSynced time.Time
	stopC      chan struct{}
	cfg        Config
	state      State
	failures   int
	active     int           // цикл таймера и выполняющиеся циклы
	drainC     chan struct{} // закрывается, когда active падает до нуля
	mu         sync.Mutex

	busy atomic.Bool
}

// New создает остановленный планировщик
func New(
	apiClient api.ClientAPI,
	users *state.Holder[models.User],
	tickets *state.Holder[models.ServiceTicket],
	metadata storage.MetadataStorage,
	logger *slog.Logger,
	opts ...Option,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		apiClient: apiClient,
		users:     users,
		tickets:   tickets,
		metadata:  metadata,
		scope:     func(context.Context) bool { return false },
		clock:     clockwork.NewRealClock(),
		logger:    logger.With("component", "livesync"),
		cfg:       DefaultConfig(),
		state:     StateStopped,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.backoff = newBackoff(s.cfg)
	return s
}

func newBackoff(cfg Config) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.PollInterval
	b.MaxInterval = cfg.MaxBackoff
	b.RandomizationFactor = 0.2
	b.Reset()
	return b
}

// Start включает синхронизацию: сразу запускает цикл и взводит таймер.
// Повторный вызов для работающего планировщика ничего не делает.
func (s *Scheduler) Start(cfg Config) error {
	cfg.Enabled = true
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		s.logger.Info("Live sync already running, ignoring start")
		return nil
	}

	s.startLocked(cfg.withDefaults())
	return nil
}

func (s *Scheduler) startLocked(cfg Config) {
	s.cfg = cfg
	s.state = StateIdle
	s.failures = 0
	s.backoff = newBackoff(cfg)
	s.metrics.setFailures(0)

	stopC := make(chan struct{})
	s.stopC = stopC
	s.active++
	go s.run(stopC)

	s.logger.Info("Live sync started",
		"interval", cfg.PollInterval,
		"auto_reconnect", cfg.AutoReconnect,
		"max_failures", cfg.MaxConsecutiveFailures)
}

// Stop отменяет будущие срабатывания таймера. Выполняющийся цикл не прерывается.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.stopC != nil {
		close(s.stopC)
		s.stopC = nil
	}
	if s.state != StateStopped {
		s.logger.Info("Live sync stopped", "previous_state", s.state.String())
	}
	s.state = StateStopped
	s.cfg.Enabled = false
}

// UpdateConfig применяет патч. Работающий планировщик перезапускается
// с новой конфигурацией, если патч его не выключает.
func (s *Scheduler) UpdateConfig(p ConfigPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	running := s.state == StateIdle
	next := s.cfg.Apply(p)
	if err := next.Validate(); err != nil {
		return err
	}
	next = next.withDefaults()

	if !running {
		s.cfg = next
		return nil
	}

	s.stopLocked()
	if next.Enabled {
		s.startLocked(next)
		return nil
	}
	s.cfg = next
	return nil
}

// SyncNow выполняет цикл в вызывающей горутине.
// Возвращает false, если цикл уже выполняется. Ошибки цикла только логируются.
func (s *Scheduler) SyncNow(ctx context.Context) bool {
	if !s.acquire() {
		s.logger.Debug("Sync already in progress, manual trigger skipped")
		return false
	}
	defer s.release()

	_, _ = s.cycle(ctx, false)
	return true
}

// Once выполняет цикл по запросу пользователя и возвращает его результат.
// В отличие от SyncNow работает и при выключенной живой синхронизации.
func (s *Scheduler) Once(ctx context.Context) (*CycleResult, error) {
	if !s.acquire() {
		return nil, ErrCycleInProgress
	}
	defer s.release()

	return s.cycle(ctx, true)
}

// State возвращает текущее состояние
func (s *Scheduler) State() State {
	s.mu.Lock()
	st := s.state
	s.mu.Unlock()

	if st == StateIdle && s.busy.Load() {
		return StateCycling
	}
	return st
}

// Config возвращает текущую конфигурацию
func (s *Scheduler) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// LastSynced возвращает время последнего завершенного цикла
func (s *Scheduler) LastSynced() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSynced
}

// ConsecutiveFailures возвращает число неудач подряд
func (s *Scheduler) ConsecutiveFailures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures
}

// Wait ждет завершения цикла таймера и выполняющихся циклов.
// Вызывается после Stop при завершении приложения.
func (s *Scheduler) Wait(ctx context.Context) error {
	s.mu.Lock()
	if s.active == 0 {
		s.mu.Unlock()
		return nil
	}
	if s.drainC == nil {
		s.drainC = make(chan struct{})
	}
	done := s.drainC
	s.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) acquire() bool {
	if !s.busy.CompareAndSwap(false, true) {
		return false
	}
	s.mu.Lock()
	s.active++
	s.mu.Unlock()
	return true
}

func (s *Scheduler) release() {
	s.busy.Store(false)
	s.leave()
}

// leave снимает отметку цикла и будит Wait, когда работы не осталось
func (s *Scheduler) leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active--
	if s.active == 0 && s.drainC != nil {
		close(s.drainC)
		s.drainC = nil
	}
}

// run цикл таймера одного запуска. stopC закрывается в Stop или при отключении.
func (s *Scheduler) run(stopC <-chan struct{}) {
	defer s.leave()

	ctx := context.Background()
	s.tick(ctx)

	timer := s.clock.NewTimer(s.nextDelay())
	defer timer.Stop()

	for {
		select {
		case <-stopC:
			return
		case <-timer.Chan():
			select {
			case <-stopC:
				return
			default:
			}
			s.tick(ctx)
			timer.Reset(s.nextDelay())
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if !s.acquire() {
		s.logger.Debug("Sync already in progress, timer tick skipped")
		return
	}
	defer s.release()

	_, _ = s.cycle(ctx, false)
}

// nextDelay задержка до следующего срабатывания таймера
func (s *Scheduler) nextDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.Backoff || s.failures == 0 {
		return s.cfg.PollInterval
	}
	d := s.backoff.NextBackOff()
	if d < s.cfg.PollInterval {
		d = s.cfg.PollInterval
	}
	if d > s.cfg.MaxBackoff {
		d = s.cfg.MaxBackoff
	}
	return d
}

// recordFailure применяет политику неудач: при достижении порога без
// автопереподключения планировщик отключается и останавливает таймер.
func (s *Scheduler) recordFailure(reason string, err error) {
	s.mu.Lock()
	s.failures++
	n := s.failures
	threshold := s.cfg.MaxConsecutiveFailures
	disable := n >= threshold && !s.cfg.AutoReconnect && s.state == StateIdle
	if disable {
		s.state = StateDisabled
		if s.stopC != nil {
			close(s.stopC)
			s.stopC = nil
		}
	}
	s.mu.Unlock()

	s.metrics.setFailures(n)
	s.logger.Warn("Sync failure", "reason", reason, "consecutive_failures", n, "error", err)
	if disable {
		s.logger.Warn("Live sync disabled after consecutive failures",
			"failures", n,
			"threshold", threshold)
	}
}

func (s *Scheduler) recordProbeSuccess() {
	s.mu.Lock()
	s.failures = 0
	s.backoff.Reset()
	s.mu.Unlock()
	s.metrics.setFailures(0)
}
