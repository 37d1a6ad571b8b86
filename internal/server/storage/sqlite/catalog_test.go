package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/models"
)

func TestCatalog_Seeded(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	ops, err := s.ListOperationTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 5)
	assert.Equal(t, "Calibration", ops[0].Name)
	for _, op := range ops {
		assert.True(t, op.Active)
		assert.False(t, op.CreatedAt.IsZero())
	}

	parts, err := s.ListSparePartTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, parts, 5)

	var cable models.SparePartTemplate
	for _, p := range parts {
		if p.ID == "sp-cable" {
			cable = p
		}
	}
	assert.Equal(t, "Network cable", cable.Name)
	assert.Equal(t, "m", cable.Unit)
}

func TestCatalog_InactiveTemplate(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.DB().Exec(`UPDATE operation_templates SET active = 0 WHERE id = 'op-firmware'`)
	require.NoError(t, err)

	ops, err := s.ListOperationTemplates(ctx)
	require.NoError(t, err)
	for _, op := range ops {
		assert.Equal(t, op.ID != "op-firmware", op.Active, op.ID)
	}
}
