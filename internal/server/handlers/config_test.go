package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/server/storage"
	"github.com/iudanet/fieldsync/pkg/api"
)

func TestConfigHandler(t *testing.T) {
	catalog := &storage.CatalogStorageMock{
		ListOperationTemplatesFunc: func(ctx context.Context) ([]models.OperationTemplate, error) {
			return []models.OperationTemplate{{ID: "op-cleaning", Name: "Cleaning", Active: true}}, nil
		},
		ListSparePartTemplatesFunc: func(ctx context.Context) ([]models.SparePartTemplate, error) {
			return []models.SparePartTemplate{{ID: "sp-cable", Name: "Network cable", Unit: "m", Active: true}}, nil
		},
	}
	h := NewConfigHandler(setupTestLogger(), catalog)

	w := httptest.NewRecorder()
	h.Operations(w, httptest.NewRequest(http.MethodGet, "/api/config/operations", nil))
	require.Equal(t, http.StatusOK, w.Code)
	ops := decodeBody[api.OperationsResponse](t, w)
	assert.True(t, ops.Success)
	require.Len(t, ops.Data.Operations, 1)
	assert.Equal(t, "Cleaning", ops.Data.Operations[0].Name)

	w = httptest.NewRecorder()
	h.SpareParts(w, httptest.NewRequest(http.MethodGet, "/api/config/spare-parts", nil))
	require.Equal(t, http.StatusOK, w.Code)
	parts := decodeBody[api.SparePartsResponse](t, w)
	require.Len(t, parts.Data.SpareParts, 1)
	assert.Equal(t, "m", parts.Data.SpareParts[0].Unit)
}

func TestConfigHandler_Error(t *testing.T) {
	catalog := &storage.CatalogStorageMock{
		ListSparePartTemplatesFunc: func(ctx context.Context) ([]models.SparePartTemplate, error) {
			return nil, errors.New("no such table")
		},
	}
	h := NewConfigHandler(setupTestLogger(), catalog)

	w := httptest.NewRecorder()
	h.SpareParts(w, httptest.NewRequest(http.MethodGet, "/api/config/spare-parts", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
