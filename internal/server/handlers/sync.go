package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/server/storage"
	"github.com/iudanet/fieldsync/pkg/api"
)

// SyncHandler handles pull and push of users and tickets
type SyncHandler struct {
	logger  *slog.Logger
	storage storage.SyncStorage
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, storage storage.SyncStorage) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: storage,
	}
}

// GetUsers обрабатывает GET /api/sync/users
func (h *SyncHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.storage.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("Failed to list users", "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to load users")
		return
	}
	WriteJSON(w, h.logger, http.StatusOK, api.UsersResponse{Success: true, Users: users})
}

// PushUsers обрабатывает POST /api/sync/users
func (h *SyncHandler) PushUsers(w http.ResponseWriter, r *http.Request) {
	var req api.RawCollection
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, h.logger, err)
		return
	}
	users, errs := api.DecodeRecords[models.User](req.Users)
	h.warnSkipped("users", errs)

	stats, err := h.storage.MergeUsers(r.Context(), users)
	if err != nil {
		h.logger.Error("Failed to merge users", "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to save users")
		return
	}

	h.logger.Info("Users pushed",
		"device", GetDevice(r.Context()),
		"received", len(req.Users),
		"added", stats.Added,
		"replaced", stats.Replaced,
		"kept", stats.Kept,
		"skipped", stats.Skipped+len(errs),
	)

	WriteJSON(w, h.logger, http.StatusOK, api.WriteResponse{
		Success: true,
		Count:   stats.Added + stats.Replaced,
	})
}

// GetTickets обрабатывает GET /api/sync/tickets
func (h *SyncHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.storage.ListTickets(r.Context())
	if err != nil {
		h.logger.Error("Failed to list tickets", "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to load tickets")
		return
	}
	WriteJSON(w, h.logger, http.StatusOK, api.TicketsResponse{Success: true, Tickets: tickets})
}

// PushTickets обрабатывает POST /api/sync/tickets
func (h *SyncHandler) PushTickets(w http.ResponseWriter, r *http.Request) {
	var req api.RawCollection
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, h.logger, err)
		return
	}
	tickets, errs := api.DecodeRecords[models.ServiceTicket](req.Tickets)
	h.warnSkipped("tickets", errs)

	stats, err := h.storage.MergeTickets(r.Context(), tickets)
	if err != nil {
		h.logger.Error("Failed to merge tickets", "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to save tickets")
		return
	}

	h.logger.Info("Tickets pushed",
		"device", GetDevice(r.Context()),
		"received", len(req.Tickets),
		"added", stats.Added,
		"replaced", stats.Replaced,
		"kept", stats.Kept,
		"skipped", stats.Skipped+len(errs),
	)

	WriteJSON(w, h.logger, http.StatusOK, api.WriteResponse{
		Success: true,
		Count:   stats.Added + stats.Replaced,
	})
}

func (h *SyncHandler) warnSkipped(kind string, errs []*api.RecordError) {
	for _, e := range errs {
		h.logger.Warn("Skipping malformed pushed record", "kind", kind, "index", e.Index, "error", e.Err)
	}
}
