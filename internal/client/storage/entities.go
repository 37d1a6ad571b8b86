package storage

import (
	"context"

	"github.com/iudanet/fieldsync/internal/models"
)

//go:generate moq -out users_mock.go . UserStorage
//go:generate moq -out tickets_mock.go . TicketStorage
//go:generate moq -out templates_mock.go . TemplateStorage

// UserStorage хранит локальную коллекцию пользователей.
// ReplaceUsers заменяет коллекцию целиком в одной транзакции.
type UserStorage interface {
	LoadUsers(ctx context.Context) ([]models.User, error)
	ReplaceUsers(ctx context.Context, users []models.User) error
}

// TicketStorage хранит локальную коллекцию тикетов
type TicketStorage interface {
	LoadTickets(ctx context.Context) ([]models.ServiceTicket, error)
	ReplaceTickets(ctx context.Context, tickets []models.ServiceTicket) error
}

// TemplateStorage кеширует шаблоны, полученные с портала
type TemplateStorage interface {
	SaveOperationTemplates(ctx context.Context, templates []models.OperationTemplate) error
	GetOperationTemplates(ctx context.Context) ([]models.OperationTemplate, error)
	SaveSparePartTemplates(ctx context.Context, templates []models.SparePartTemplate) error
	GetSparePartTemplates(ctx context.Context) ([]models.SparePartTemplate, error)
}
