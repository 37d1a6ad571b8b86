package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/models"
)

func TestDecodeRecords(t *testing.T) {
	var body RawCollection
	require.NoError(t, json.Unmarshal([]byte(`{"tickets":[
		{"id":"A","updatedAt":"not-a-date"},
		{"id":"B","status":"in_progress"},
		{"id":"C","spareParts":[{"id":"p1","quantity":"2"}]}
	]}`), &body))

	tickets, errs := DecodeRecords[models.ServiceTicket](body.Tickets)
	require.Len(t, tickets, 1)
	assert.Equal(t, "B", tickets[0].ID)
	require.Len(t, errs, 2)
	assert.Equal(t, 0, errs[0].Index)
	assert.Equal(t, 2, errs[1].Index)
	assert.Contains(t, errs[0].Error(), "record 0")

	empty, errs := DecodeRecords[models.User](nil)
	assert.Empty(t, empty)
	assert.Empty(t, errs)
}
