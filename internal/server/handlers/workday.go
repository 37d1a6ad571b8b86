package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/server/storage"
	"github.com/iudanet/fieldsync/pkg/api"
)

// UserGetter поиск пользователя по id
type UserGetter interface {
	GetUser(ctx context.Context, id string) (models.User, error)
}

// WorkdayHandler ведет журнал начала и конца рабочего дня
type WorkdayHandler struct {
	logger  *slog.Logger
	users   UserGetter
	workday storage.WorkdayStorage
	clock   clockwork.Clock
}

func NewWorkdayHandler(logger *slog.Logger, users UserGetter, workday storage.WorkdayStorage, clock clockwork.Clock) *WorkdayHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &WorkdayHandler{logger: logger, users: users, workday: workday, clock: clock}
}

// Open обрабатывает POST /api/workday/open
func (h *WorkdayHandler) Open(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, models.WorkdayOpen)
}

// Close обрабатывает POST /api/workday/close
func (h *WorkdayHandler) Close(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, models.WorkdayClose)
}

func (h *WorkdayHandler) record(w http.ResponseWriter, r *http.Request, action models.WorkdayAction) {
	var req api.WorkdayRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, h.logger, err)
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		WriteError(w, h.logger, http.StatusBadRequest, "bad_request", "userId is required")
		return
	}

	user, err := h.users.GetUser(r.Context(), req.UserID)
	if errors.Is(err, storage.ErrUserNotFound) {
		WriteError(w, h.logger, http.StatusNotFound, "not_found", "user not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to get user", "user_id", req.UserID, "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to load user")
		return
	}

	entry := models.WorkdayEntry{
		UserID: user.ID,
		Action: action,
		Reason: req.Reason,
		At:     h.clock.Now().UTC(),
	}
	if err := h.workday.AppendWorkday(r.Context(), entry); err != nil {
		h.logger.Error("Failed to append workday entry", "user_id", user.ID, "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to save workday entry")
		return
	}

	h.logger.Info("Workday updated", "user", user.Username, "action", action)
	WriteJSON(w, h.logger, http.StatusOK, api.WriteResponse{
		Success: true,
		Message: "workday " + string(action),
	})
}
