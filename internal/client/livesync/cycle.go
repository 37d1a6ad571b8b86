package livesync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/fieldsync/internal/client/api"
	"github.com/iudanet/fieldsync/internal/crdt"
	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/validation"
)

const (
	kindUsers   = "users"
	kindTickets = "tickets"
)

var errEmptyPull = errors.New("empty pull response")

// CycleResult итоги одного цикла синхронизации
type CycleResult struct {
	StartedAt     time.Time
	FinishedAt    time.Time
	Endpoint      string
	Errors        []error // ошибки отдельных видов данных, цикл при этом не прерывался
	Users         crdt.Stats
	Tickets       crdt.Stats
	PushedUsers   int
	PushedTickets int
	PulledUsers   bool
	PulledTickets bool
	Skipped       bool // цикл не выполнялся: синхронизация выключена или портал не настроен
}

// Partial сообщает, что часть шагов цикла завершилась ошибкой
func (r *CycleResult) Partial() bool {
	return r != nil && len(r.Errors) > 0
}

// Err объединяет ошибки отдельных шагов цикла
func (r *CycleResult) Err() error {
	if r == nil {
		return nil
	}
	return errors.Join(r.Errors...)
}

// cycle выполняет один цикл: проверка связи, отправка, получение, слияние, фиксация.
// force игнорирует флаг Enabled и состояние Disabled (запуск пользователем).
// Вызывающий обязан удерживать busy.
func (s *Scheduler) cycle(ctx context.Context, force bool) (res *CycleResult, err error) {
	res = &CycleResult{StartedAt: s.clock.Now()}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Sync cycle panicked", "panic", r)
			s.recordFailure("panic", fmt.Errorf("%v", r))
			s.metrics.cycle(resultFailure)
			err = fmt.Errorf("%w: %v", ErrCyclePanic, r)
		}
		res.FinishedAt = s.clock.Now()
	}()

	s.mu.Lock()
	cfg := s.cfg
	disabled := s.state == StateDisabled
	s.mu.Unlock()

	// 1. Без конфигурации синхронизация просто не выполняется
	if !force && (!cfg.Enabled || disabled) {
		res.Skipped = true
		return res, nil
	}

	endpoint, err := s.metadata.GetPortalURL(ctx)
	if err != nil {
		s.logger.Warn("Failed to read portal endpoint", "error", err)
		endpoint = ""
	}
	if !IsConfiguredEndpoint(endpoint) {
		s.logger.Debug("Portal endpoint not configured, skipping sync")
		s.metrics.cycle(resultSkipped)
		res.Skipped = true
		return res, ErrNotConfigured
	}
	res.Endpoint = endpoint
	s.apiClient.SetBaseURL(endpoint)

	// 2. Проверка связи
	if err := s.call(ctx, cfg, func(ctx context.Context) error {
		_, err := s.apiClient.Health(ctx)
		return err
	}); err != nil {
		s.recordFailure("portal unreachable", err)
		s.metrics.cycle(resultFailure)
		return res, fmt.Errorf("portal unreachable: %w", err)
	}

	// 3. Портал доступен
	s.recordProbeSuccess()

	// 4. Отправка: push всегда предшествует pull
	s.push(ctx, cfg, res)

	// 5. Получение
	var data *api.AllData
	if err := s.call(ctx, cfg, func(ctx context.Context) error {
		var err error
		data, err = s.apiClient.FetchAllData(ctx)
		return err
	}); err != nil {
		s.recordFailure("pull failed", err)
		s.metrics.cycle(resultFailure)
		return res, fmt.Errorf("pull failed: %w", err)
	}

	// 6. Слияние и фиксация по каждому виду данных
	s.commit(ctx, data, res)

	// 7. Время последней синхронизации
	now := s.clock.Now()
	s.mu.Lock()
	s.lastSynced = now
	s.mu.Unlock()
	if err := s.metadata.SaveLastSyncTime(ctx, now); err != nil {
		s.logger.Warn("Failed to save last sync time", "error", err)
	}
	s.metrics.success(now)

	if res.Partial() {
		s.metrics.cycle(resultPartial)
	} else {
		s.metrics.cycle(resultSuccess)
	}

	s.logger.Info("Sync cycle completed",
		"pushed_users", res.PushedUsers,
		"pushed_tickets", res.PushedTickets,
		"users_added", res.Users.Added,
		"users_replaced", res.Users.Replaced,
		"tickets_added", res.Tickets.Added,
		"tickets_replaced", res.Tickets.Replaced,
		"errors", len(res.Errors))

	return res, nil
}

// call выполняет сетевой вызов с таймаутом RequestTimeout
func (s *Scheduler) call(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()
	return fn(callCtx)
}

func (s *Scheduler) push(ctx context.Context, cfg Config, res *CycleResult) {
	if s.scope(ctx) {
		if users := s.users.All(); len(users) > 0 {
			err := s.call(ctx, cfg, func(ctx context.Context) error {
				_, err := s.apiClient.PushUsers(ctx, users)
				return err
			})
			if err != nil {
				s.recordFailure("push users failed", err)
				res.Errors = append(res.Errors, fmt.Errorf("push %s: %w", kindUsers, err))
			} else {
				res.PushedUsers = len(users)
			}
		}
	}

	if tickets := s.tickets.All(); len(tickets) > 0 {
		err := s.call(ctx, cfg, func(ctx context.Context) error {
			_, err := s.apiClient.PushTickets(ctx, tickets)
			return err
		})
		if err != nil {
			s.recordFailure("push tickets failed", err)
			res.Errors = append(res.Errors, fmt.Errorf("push %s: %w", kindTickets, err))
		} else {
			res.PushedTickets = len(tickets)
		}
	}
}

func (s *Scheduler) commit(ctx context.Context, data *api.AllData, res *CycleResult) {
	if data == nil {
		data = &api.AllData{UsersErr: errEmptyPull, TicketsErr: errEmptyPull}
	}

	if data.HasUsers() {
		res.PulledUsers = true
		err := s.users.Update(ctx, func(local []models.User) ([]models.User, error) {
			merged, stats := crdt.Merge(local, data.Users, s.logger)
			stats.Skipped += data.UsersSkipped
			res.Users = stats
			return merged, nil
		})
		if err != nil {
			s.logger.Error("Failed to commit users", "error", err)
			res.Errors = append(res.Errors, fmt.Errorf("commit %s: %w", kindUsers, err))
		} else {
			s.metrics.mergeStats(kindUsers, res.Users)
		}
	} else {
		s.logger.Warn("Users not received, keeping local collection", "error", data.UsersErr)
		res.Errors = append(res.Errors, fmt.Errorf("pull %s: %w", kindUsers, data.UsersErr))
	}

	if data.HasTickets() {
		res.PulledTickets = true
		for _, t := range data.Tickets {
			if warnings := validation.CheckTicket(t); len(warnings) > 0 {
				s.logger.Warn("Remote ticket has data quality issues", "ticket_id", t.ID, "warnings", warnings)
			}
		}
		err := s.tickets.Update(ctx, func(local []models.ServiceTicket) ([]models.ServiceTicket, error) {
			merged, stats := crdt.Merge(local, data.Tickets, s.logger)
			stats.Skipped += data.TicketsSkipped
			res.Tickets = stats
			return merged, nil
		})
		if err != nil {
			s.logger.Error("Failed to commit tickets", "error", err)
			res.Errors = append(res.Errors, fmt.Errorf("commit %s: %w", kindTickets, err))
		} else {
			s.metrics.mergeStats(kindTickets, res.Tickets)
		}
	} else {
		s.logger.Warn("Tickets not received, keeping local collection", "error", data.TicketsErr)
		res.Errors = append(res.Errors, fmt.Errorf("pull %s: %w", kindTickets, data.TicketsErr))
	}
}
