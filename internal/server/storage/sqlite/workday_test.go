package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/models"
)

func TestWorkday_AppendAndList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	entries := []models.WorkdayEntry{
		{UserID: "u1", Action: models.WorkdayOpen, Reason: "route A", At: *at(0)},
		{UserID: "u2", Action: models.WorkdayOpen, At: *at(5)},
		{UserID: "u1", Action: models.WorkdayClose, At: *at(480)},
	}
	for _, e := range entries {
		require.NoError(t, s.AppendWorkday(ctx, e))
	}

	got, err := s.ListWorkday(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.WorkdayOpen, got[0].Action)
	assert.Equal(t, "route A", got[0].Reason)
	assert.True(t, at(0).Equal(got[0].At))
	assert.Equal(t, models.WorkdayClose, got[1].Action)

	none, err := s.ListWorkday(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestWorkday_RejectsUnknownAction(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.AppendWorkday(context.Background(), models.WorkdayEntry{UserID: "u1", Action: "pause", At: baseTime})
	assert.Error(t, err)
}
