// Package storage описывает хранилище портала.
package storage

import (
	"context"

	"github.com/iudanet/fieldsync/internal/crdt"
	"github.com/iudanet/fieldsync/internal/models"
)

//go:generate moq -out sync_mock.go . SyncStorage
//go:generate moq -out catalog_mock.go . CatalogStorage
//go:generate moq -out workday_mock.go . WorkdayStorage
//go:generate moq -out backup_mock.go . BackupStorage

// SyncStorage хранит общие коллекции пользователей и тикетов.
// Merge* сливают входящие записи с сохраненными по правилу LWW,
// при равных метках побеждает входящая запись.
type SyncStorage interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	MergeUsers(ctx context.Context, users []models.User) (crdt.Stats, error)

	ListTickets(ctx context.Context) ([]models.ServiceTicket, error)
	MergeTickets(ctx context.Context, tickets []models.ServiceTicket) (crdt.Stats, error)
}

// CatalogStorage справочники операций и запчастей
type CatalogStorage interface {
	ListOperationTemplates(ctx context.Context) ([]models.OperationTemplate, error)
	ListSparePartTemplates(ctx context.Context) ([]models.SparePartTemplate, error)
}

// WorkdayStorage журнал рабочего дня
type WorkdayStorage interface {
	AppendWorkday(ctx context.Context, entry models.WorkdayEntry) error
	ListWorkday(ctx context.Context, userID string) ([]models.WorkdayEntry, error)
}

// Snapshot содержимое портала для резервной копии
type Snapshot struct {
	Users   []models.User          `json:"users"`
	Tickets []models.ServiceTicket `json:"tickets"`
}

// BackupStorage метаданные резервных копий и снимки данных
type BackupStorage interface {
	SaveBackup(ctx context.Context, b models.Backup) error
	GetBackup(ctx context.Context, filename string) (models.Backup, error)
	ListBackups(ctx context.Context) ([]models.Backup, error)

	// Snapshot читает пользователей и тикеты в одной транзакции
	Snapshot(ctx context.Context) (*Snapshot, error)
	// Restore заменяет пользователей и тикеты содержимым снимка
	Restore(ctx context.Context, snap *Snapshot) error
}
