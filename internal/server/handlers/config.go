package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/fieldsync/internal/server/storage"
	"github.com/iudanet/fieldsync/pkg/api"
)

// ConfigHandler отдает справочники шаблонов
type ConfigHandler struct {
	logger  *slog.Logger
	catalog storage.CatalogStorage
}

func NewConfigHandler(logger *slog.Logger, catalog storage.CatalogStorage) *ConfigHandler {
	return &ConfigHandler{logger: logger, catalog: catalog}
}

// Operations обрабатывает GET /api/config/operations
func (h *ConfigHandler) Operations(w http.ResponseWriter, r *http.Request) {
	ops, err := h.catalog.ListOperationTemplates(r.Context())
	if err != nil {
		h.logger.Error("Failed to list operation templates", "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to load operation templates")
		return
	}
	WriteJSON(w, h.logger, http.StatusOK, api.OperationsResponse{
		Success: true,
		Data:    api.OperationsData{Operations: ops},
	})
}

// SpareParts обрабатывает GET /api/config/spare-parts
func (h *ConfigHandler) SpareParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.catalog.ListSparePartTemplates(r.Context())
	if err != nil {
		h.logger.Error("Failed to list spare part templates", "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal", "failed to load spare part templates")
		return
	}
	WriteJSON(w, h.logger, http.StatusOK, api.SparePartsResponse{
		Success: true,
		Data:    api.SparePartsData{SpareParts: parts},
	})
}
