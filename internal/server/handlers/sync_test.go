package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/crdt"
	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/server/storage"
	"github.com/iudanet/fieldsync/pkg/api"
)

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestSyncHandler_GetUsers(t *testing.T) {
	store := &storage.SyncStorageMock{
		ListUsersFunc: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: "u1", Username: "ivanov", Role: models.RoleTechnician}}, nil
		},
	}
	h := NewSyncHandler(setupTestLogger(), store)

	w := httptest.NewRecorder()
	h.GetUsers(w, httptest.NewRequest(http.MethodGet, "/api/sync/users", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.UsersResponse](t, w)
	assert.True(t, resp.Success)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "ivanov", resp.Users[0].Username)
}

func TestSyncHandler_GetTickets_StorageError(t *testing.T) {
	store := &storage.SyncStorageMock{
		ListTicketsFunc: func(ctx context.Context) ([]models.ServiceTicket, error) {
			return nil, errors.New("disk I/O error")
		},
	}
	h := NewSyncHandler(setupTestLogger(), store)

	w := httptest.NewRecorder()
	h.GetTickets(w, httptest.NewRequest(http.MethodGet, "/api/sync/tickets", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeBody[api.ErrorResponse](t, w)
	assert.False(t, resp.Success)
	assert.NotContains(t, w.Body.String(), "disk I/O")
}

func TestSyncHandler_PushTickets(t *testing.T) {
	store := &storage.SyncStorageMock{
		MergeTicketsFunc: func(ctx context.Context, tickets []models.ServiceTicket) (crdt.Stats, error) {
			return crdt.Stats{Added: 1, Replaced: 1, Skipped: 1}, nil
		},
	}
	h := NewSyncHandler(setupTestLogger(), store)

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	body := api.PushTicketsRequest{Tickets: []models.ServiceTicket{
		{ID: "t1", DeviceCode: "ATM-001", Status: models.TicketInProgress, StartTime: now},
		{ID: "t2", DeviceCode: "ATM-002", Status: models.TicketCompleted, StartTime: now},
		{ID: "t3", Status: models.TicketInProgress, StartTime: now},
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/sync/tickets", jsonBody(t, body))
	req = req.WithContext(WithDevice(req.Context(), "tablet-07"))
	w := httptest.NewRecorder()
	h.PushTickets(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.WriteResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)

	require.Len(t, store.MergeTicketsCalls(), 1)
	assert.Len(t, store.MergeTicketsCalls()[0].Tickets, 3)
}

func TestSyncHandler_PushUsers_BadRequests(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `{"users": [`, wantStatus: http.StatusBadRequest},
		{name: "wrong type", body: `{"users": "ivanov"}`, wantStatus: http.StatusBadRequest},
		{
			name:       "too large",
			body:       `{"users": [], "pad": "` + strings.Repeat("x", MaxRequestBodySize) + `"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &storage.SyncStorageMock{}
			h := NewSyncHandler(setupTestLogger(), store)

			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(http.MethodPost, "/api/sync/users", nil)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/api/sync/users", strings.NewReader(tt.body))
			}
			w := httptest.NewRecorder()
			h.PushUsers(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, store.MergeUsersCalls())
			resp := decodeBody[api.ErrorResponse](t, w)
			assert.False(t, resp.Success)
		})
	}
}

func TestSyncHandler_PushUsers_MergeError(t *testing.T) {
	store := &storage.SyncStorageMock{
		MergeUsersFunc: func(ctx context.Context, users []models.User) (crdt.Stats, error) {
			return crdt.Stats{}, errors.New("database is locked")
		},
	}
	h := NewSyncHandler(setupTestLogger(), store)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/users", jsonBody(t, api.PushUsersRequest{}))
	w := httptest.NewRecorder()
	h.PushUsers(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSyncHandler_PushTickets_SkipsMalformedRecords(t *testing.T) {
	store := &storage.SyncStorageMock{
		MergeTicketsFunc: func(ctx context.Context, tickets []models.ServiceTicket) (crdt.Stats, error) {
			return crdt.Stats{Added: len(tickets)}, nil
		},
	}
	h := NewSyncHandler(setupTestLogger(), store)

	body := `{"tickets":[
		{"id":"A","deviceCode":"ATM-001","updatedAt":"not-a-date"},
		{"id":"B","deviceCode":"ATM-002","status":"in_progress","spareParts":[{"id":"p1","name":"Cable","quantity":"2"}]},
		{"id":"C","deviceCode":"ATM-003","status":"in_progress"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/sync/tickets", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.PushTickets(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[api.WriteResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)

	require.Len(t, store.MergeTicketsCalls(), 1)
	merged := store.MergeTicketsCalls()[0].Tickets
	require.Len(t, merged, 1)
	assert.Equal(t, "C", merged[0].ID)
}
