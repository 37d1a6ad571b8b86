package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/server/backup"
	"github.com/iudanet/fieldsync/internal/server/storage"
	"github.com/iudanet/fieldsync/pkg/api"
)

//go:generate moq -out backup_service_mock.go . BackupService

// BackupService операции с резервными копиями
type BackupService interface {
	Create(ctx context.Context) (models.Backup, error)
	List(ctx context.Context) ([]models.Backup, error)
	Restore(ctx context.Context, filename string) (int, error)
}

var _ BackupService = (*backup.Service)(nil)

// BackupHandler обрабатывает /api/backup
type BackupHandler struct {
	logger  *slog.Logger
	backups BackupService
}

func NewBackupHandler(logger *slog.Logger, backups BackupService) *BackupHandler {
	return &BackupHandler{logger: logger, backups: backups}
}

// List обрабатывает GET /api/backup
func (h *BackupHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.backups.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list backups", "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to list backups")
		return
	}
	WriteJSON(w, h.logger, http.StatusOK, api.BackupsResponse{Success: true, Backups: list})
}

// Create обрабатывает POST /api/backup
func (h *BackupHandler) Create(w http.ResponseWriter, r *http.Request) {
	b, err := h.backups.Create(r.Context())
	if err != nil {
		h.logger.Error("Failed to create backup", "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to create backup")
		return
	}
	WriteJSON(w, h.logger, http.StatusOK, api.WriteResponse{
		Success:  true,
		Filename: b.Filename,
		Count:    b.Users + b.Tickets,
		Message:  "backup created",
	})
}

// Restore обрабатывает POST /api/backup/restore
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	var req api.RestoreBackupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, h.logger, err)
		return
	}

	count, err := h.backups.Restore(r.Context(), req.Filename)
	switch {
	case err == nil:
	case errors.Is(err, backup.ErrInvalidFilename):
		WriteError(w, h.logger, http.StatusBadRequest, "bad_request", err.Error())
		return
	case errors.Is(err, storage.ErrBackupNotFound):
		WriteError(w, h.logger, http.StatusNotFound, "not_found", "backup not found")
		return
	default:
		h.logger.Error("Failed to restore backup", "filename", req.Filename, "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to restore backup")
		return
	}

	h.logger.Warn("Backup restored by device", "device", GetDevice(r.Context()), "filename", req.Filename)
	WriteJSON(w, h.logger, http.StatusOK, api.WriteResponse{
		Success:  true,
		Filename: req.Filename,
		Count:    count,
		Message:  "backup restored",
	})
}
