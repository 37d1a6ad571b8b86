package api

import (
	"context"

	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс для взаимодействия с порталом
type ClientAPI interface {
	// BaseURL возвращает текущий адрес портала
	BaseURL() string
	// SetBaseURL меняет адрес портала, используется перед каждым циклом
	SetBaseURL(baseURL string)

	// Health проверяет доступность портала
	Health(ctx context.Context) (*api.HealthResponse, error)

	PushUsers(ctx context.Context, users []models.User) (*api.WriteResponse, error)
	PushTickets(ctx context.Context, tickets []models.ServiceTicket) (*api.WriteResponse, error)
	PullUsers(ctx context.Context) ([]models.User, error)
	PullTickets(ctx context.Context) ([]models.ServiceTicket, error)

	// FetchAllData параллельно запрашивает пользователей и тикеты.
	// Ошибка возвращается, только если не пришел ни один вид данных.
	FetchAllData(ctx context.Context) (*AllData, error)

	GetOperationTemplates(ctx context.Context) ([]models.OperationTemplate, error)
	GetSparePartTemplates(ctx context.Context) ([]models.SparePartTemplate, error)

	ListBackups(ctx context.Context) ([]models.Backup, error)
	CreateBackup(ctx context.Context) (*api.WriteResponse, error)
	RestoreBackup(ctx context.Context, filename string) (*api.WriteResponse, error)

	OpenWorkday(ctx context.Context, userID, reason string) error
	CloseWorkday(ctx context.Context, userID string) error
}

// AllData результат FetchAllData.
// UsersErr и TicketsErr заполняются для вида данных, который не удалось получить.
// UsersSkipped и TicketsSkipped считают записи, которые не удалось декодировать.
type AllData struct {
	UsersErr       error
	TicketsErr     error
	Users          []models.User
	Tickets        []models.ServiceTicket
	UsersSkipped   int
	TicketsSkipped int
}

// HasUsers сообщает, что пользователи получены
func (d *AllData) HasUsers() bool { return d != nil && d.UsersErr == nil }

// HasTickets сообщает, что тикеты получены
func (d *AllData) HasTickets() bool { return d != nil && d.TicketsErr == nil }

// Partial сообщает, что получен только один вид данных
func (d *AllData) Partial() bool { return d.HasUsers() != d.HasTickets() }
