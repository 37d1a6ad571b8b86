package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/server/storage"
)

func TestWorkdayHandler(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		path       string
		body       string
		getErr     error
		appendErr  error
		wantStatus int
		wantAction models.WorkdayAction
	}{
		{name: "open", path: "/api/workday/open", body: `{"userId":"u1","reason":"route A"}`, wantStatus: http.StatusOK, wantAction: models.WorkdayOpen},
		{name: "close", path: "/api/workday/close", body: `{"userId":"u1"}`, wantStatus: http.StatusOK, wantAction: models.WorkdayClose},
		{name: "missing user id", path: "/api/workday/open", body: `{"reason":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown user", path: "/api/workday/open", body: `{"userId":"u404"}`, getErr: storage.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "append fails", path: "/api/workday/close", body: `{"userId":"u1"}`, appendErr: errors.New("locked"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &storage.SyncStorageMock{
				GetUserFunc: func(ctx context.Context, id string) (models.User, error) {
					if tt.getErr != nil {
						return models.User{}, tt.getErr
					}
					return models.User{ID: id, Username: "petrov"}, nil
				},
			}
			workday := &storage.WorkdayStorageMock{
				AppendWorkdayFunc: func(ctx context.Context, entry models.WorkdayEntry) error {
					return tt.appendErr
				},
			}
			h := NewWorkdayHandler(setupTestLogger(), users, workday, clockwork.NewFakeClockAt(now))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			if strings.HasSuffix(tt.path, "open") {
				h.Open(w, req)
			} else {
				h.Close(w, req)
			}

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			require.Len(t, workday.AppendWorkdayCalls(), 1)
			entry := workday.AppendWorkdayCalls()[0].Entry
			assert.Equal(t, "u1", entry.UserID)
			assert.Equal(t, tt.wantAction, entry.Action)
			assert.True(t, now.Equal(entry.At))
		})
	}
}
