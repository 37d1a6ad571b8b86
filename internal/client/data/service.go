// Package data выполняет изменения локальных данных по действиям пользователя.
// Каждое изменение получает новую метку updatedAt и сохраняется через state.Holder.
package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/fieldsync/internal/client/state"
	"github.com/iudanet/fieldsync/internal/crdt"
	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/validation"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrTicketCompleted    = errors.New("ticket is already completed")
	ErrTechnicianInactive = errors.New("technician is inactive")
)

// Service изменяет локальные коллекции пользователей и тикетов
type Service struct {
	users   *state.Holder[models.User]
	tickets *state.Holder[models.ServiceTicket]
	stamper *crdt.Stamper
	clock   clockwork.Clock
	logger  *slog.Logger
}

// NewService создает data сервис. clock может быть nil.
func NewService(
	users *state.Holder[models.User],
	tickets *state.Holder[models.ServiceTicket],
	clock clockwork.Clock,
	logger *slog.Logger,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:   users,
		tickets: tickets,
		stamper: crdt.NewStamper(clock),
		clock:   clock,
		logger:  logger,
	}
}

// NewUser параметры создания пользователя
type NewUser struct {
	Username    string
	DisplayName string
	Role        models.Role
}

// ListUsers возвращает локальных пользователей
func (s *Service) ListUsers() []models.User {
	return s.users.All()
}

// CreateUser добавляет пользователя. Username уникален без учета регистра.
func (s *Service) CreateUser(ctx context.Context, req NewUser) (models.User, error) {
	now := s.clock.Now().UTC()
	user := models.User{
		CreatedAt:   now,
		ID:          uuid.New().String(),
		Username:    strings.TrimSpace(req.Username),
		DisplayName: strings.TrimSpace(req.DisplayName),
		Role:        req.Role,
		Active:      true,
	}
	if err := validation.ValidateUser(user); err != nil {
		return models.User{}, fmt.Errorf("invalid user: %w", err)
	}

	err := s.users.Update(ctx, func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if strings.EqualFold(u.Username, user.Username) {
				return nil, fmt.Errorf("%w: %s", ErrUsernameTaken, user.Username)
			}
		}
		stamp := s.stamper.Next()
		user.UpdatedAt = &stamp
		return append(users, user), nil
	})
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info("User created", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return user, nil
}

// SetUserActive активирует или деактивирует пользователя.
// Пользователи не удаляются: деактивированный пользователь остается в коллекции.
func (s *Service) SetUserActive(ctx context.Context, id string, active bool) (models.User, error) {
	var updated models.User
	err := s.users.Update(ctx, func(users []models.User) ([]models.User, error) {
		i := slices.IndexFunc(users, func(u models.User) bool { return u.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
		}
		stamp := s.stamper.After(users[i].ModifiedAt())
		users[i].Active = active
		users[i].UpdatedAt = &stamp
		updated = users[i]
		return users, nil
	})
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info("User status changed", "user_id", id, "active", active)
	return updated, nil
}

// NewTicket параметры открытия тикета
type NewTicket struct {
	TechnicianID   string
	DeviceCode     string
	DeviceLocation string
	Notes          string
}

// ListTickets возвращает локальные тикеты
func (s *Service) ListTickets() []models.ServiceTicket {
	return s.tickets.All()
}

// GetTicket возвращает тикет по id
func (s *Service) GetTicket(id string) (models.ServiceTicket, error) {
	for _, t := range s.tickets.All() {
		if t.ID == id {
			return t, nil
		}
	}
	return models.ServiceTicket{}, fmt.Errorf("%w: %s", ErrTicketNotFound, id)
}

// StartTicket открывает тикет в статусе in_progress от имени техника
func (s *Service) StartTicket(ctx context.Context, req NewTicket) (models.ServiceTicket, error) {
	tech, err := s.findUser(req.TechnicianID)
	if err != nil {
		return models.ServiceTicket{}, err
	}
	if !tech.Active {
		return models.ServiceTicket{}, fmt.Errorf("%w: %s", ErrTechnicianInactive, tech.Username)
	}

	ticket := models.ServiceTicket{
		StartTime:      s.clock.Now().UTC(),
		ID:             uuid.New().String(),
		DeviceCode:     strings.TrimSpace(req.DeviceCode),
		DeviceLocation: strings.TrimSpace(req.DeviceLocation),
		TechnicianID:   tech.ID,
		TechnicianName: tech.DisplayName,
		Status:         models.TicketInProgress,
		Notes:          req.Notes,
		Operations:     []models.Operation{},
		SpareParts:     []models.SparePart{},
	}
	if err := validation.ValidateTicket(ticket); err != nil {
		return models.ServiceTicket{}, fmt.Errorf("invalid ticket: %w", err)
	}

	err = s.tickets.Update(ctx, func(tickets []models.ServiceTicket) ([]models.ServiceTicket, error) {
		stamp := s.stamper.Next()
		ticket.UpdatedAt = &stamp
		return append(tickets, ticket), nil
	})
	if err != nil {
		return models.ServiceTicket{}, err
	}

	s.logger.Info("Ticket started", "ticket_id", ticket.ID, "device_code", ticket.DeviceCode)
	return ticket, nil
}

// AddOperation добавляет выполненную операцию в открытый тикет
func (s *Service) AddOperation(ctx context.Context, ticketID, name, description string) (models.ServiceTicket, error) {
	op := models.Operation{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	return s.mutateTicket(ctx, ticketID, func(t *models.ServiceTicket) {
		t.Operations = append(t.Operations, op)
	})
}

// AddSparePart добавляет использованную запчасть в открытый тикет
func (s *Service) AddSparePart(ctx context.Context, ticketID, name string, quantity int) (models.ServiceTicket, error) {
	part := models.SparePart{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(name),
		Quantity: quantity,
	}
	return s.mutateTicket(ctx, ticketID, func(t *models.ServiceTicket) {
		t.SpareParts = append(t.SpareParts, part)
	})
}

// SetNotes заменяет заметки открытого тикета
func (s *Service) SetNotes(ctx context.Context, ticketID, notes string) (models.ServiceTicket, error) {
	return s.mutateTicket(ctx, ticketID, func(t *models.ServiceTicket) {
		t.Notes = notes
	})
}

// CompleteTicket завершает тикет. Повторное завершение запрещено.
func (s *Service) CompleteTicket(ctx context.Context, ticketID string) (models.ServiceTicket, error) {
	end := s.clock.Now().UTC()
	return s.mutateTicket(ctx, ticketID, func(t *models.ServiceTicket) {
		t.Status = models.TicketCompleted
		t.EndTime = &end
	})
}

// mutateTicket применяет fn к открытому тикету, проверяет результат и ставит новую метку
func (s *Service) mutateTicket(ctx context.Context, id string, fn func(t *models.ServiceTicket)) (models.ServiceTicket, error) {
	var updated models.ServiceTicket
	err := s.tickets.Update(ctx, func(tickets []models.ServiceTicket) ([]models.ServiceTicket, error) {
		i := slices.IndexFunc(tickets, func(t models.ServiceTicket) bool { return t.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrTicketNotFound, id)
		}
		if tickets[i].IsCompleted() {
			return nil, fmt.Errorf("%w: %s", ErrTicketCompleted, id)
		}

		t := tickets[i].Clone()
		fn(&t)
		if err := validation.ValidateTicket(t); err != nil {
			return nil, fmt.Errorf("invalid ticket: %w", err)
		}
		stamp := s.stamper.After(t.ModifiedAt())
		t.UpdatedAt = &stamp

		tickets[i] = t
		updated = t
		return tickets, nil
	})
	if err != nil {
		return models.ServiceTicket{}, err
	}

	s.logger.Debug("Ticket updated", "ticket_id", id, "status", updated.Status)
	return updated, nil
}

func (s *Service) findUser(id string) (models.User, error) {
	for _, u := range s.users.All() {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
}
