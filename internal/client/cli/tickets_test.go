package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/client/data"
	"github.com/iudanet/fieldsync/internal/models"
)

func TestCli_TicketWorkflow(t *testing.T) {
	env := newTestEnv(t, "")
	env.loginAs(tech)
	ctx := context.Background()

	require.NoError(t, env.cli.runTicketStart(ctx, "ATM-0042", "Lobby", ""))
	tickets := env.data.ListTickets()
	require.Len(t, tickets, 1)
	id := tickets[0].ID
	ref := shortID(id)
	assert.Equal(t, tech.ID, tickets[0].TechnicianID)

	require.NoError(t, env.cli.runTicketOperation(ctx, ref, "Cleaning", "card reader"))
	require.NoError(t, env.cli.runTicketPart(ctx, ref, "Belt", 2))
	require.NoError(t, env.cli.runTicketNotes(ctx, ref, "replaced belt"))
	require.NoError(t, env.cli.runTicketComplete(ctx, ref, true))

	got, err := env.data.GetTicket(id)
	require.NoError(t, err)
	assert.Equal(t, models.TicketCompleted, got.Status)
	assert.Len(t, got.Operations, 1)
	assert.Len(t, got.SpareParts, 1)
	assert.Equal(t, "replaced belt", got.Notes)

	env.out.Reset()
	require.NoError(t, env.cli.runTicketShow(ctx, ref))
	out := env.output()
	assert.Contains(t, out, "=== Ticket "+id+" ===")
	assert.Contains(t, out, "Device:     ATM-0042")
	assert.Contains(t, out, "- Cleaning: card reader")
	assert.Contains(t, out, "- Belt x2")
	assert.Contains(t, out, "Status:     completed")

	err = env.cli.runTicketOperation(ctx, ref, "Late fix", "")
	require.ErrorIs(t, err, data.ErrTicketCompleted)
}

func TestCli_runTicketComplete_Confirm(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   models.TicketStatus
	}{
		{name: "confirmed", answer: "y\n", want: models.TicketCompleted},
		{name: "confirmed in russian", answer: "да\n", want: models.TicketCompleted},
		{name: "declined", answer: "n\n", want: models.TicketInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.answer)
			env.loginAs(tech)
			ctx := context.Background()

			ticket, err := env.data.StartTicket(ctx, newTicket(tech.ID, "POS-7"))
			require.NoError(t, err)

			require.NoError(t, env.cli.runTicketComplete(ctx, ticket.ID, false))
			got, err := env.data.GetTicket(ticket.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestCli_runTicketList(t *testing.T) {
	env := newTestEnv(t, "")
	env.loginAs(tech)
	ctx := context.Background()

	mine, err := env.data.StartTicket(ctx, newTicket(tech.ID, "ATM-1"))
	require.NoError(t, err)
	done, err := env.data.StartTicket(ctx, newTicket(tech.ID, "ATM-2"))
	require.NoError(t, err)
	_, err = env.data.CompleteTicket(ctx, done.ID)
	require.NoError(t, err)
	_, err = env.data.StartTicket(ctx, newTicket(admin.ID, "KIOSK-9"))
	require.NoError(t, err)

	require.NoError(t, env.cli.runTicketList(ctx, ticketFilter{}))
	out := env.output()
	for _, device := range []string{"ATM-1", "ATM-2", "KIOSK-9"} {
		assert.Contains(t, out, device)
	}

	env.out.Reset()
	require.NoError(t, env.cli.runTicketList(ctx, ticketFilter{OpenOnly: true, Mine: true}))
	out = env.output()
	assert.Contains(t, out, shortID(mine.ID))
	assert.NotContains(t, out, "ATM-2")
	assert.NotContains(t, out, "KIOSK-9")

	env.out.Reset()
	env.loginAs(models.User{ID: "nobody", Username: "nobody", Role: models.RoleTechnician})
	require.NoError(t, env.cli.runTicketList(ctx, ticketFilter{Mine: true}))
	assert.Contains(t, env.output(), "No tickets found.")
}

func TestCli_runTicketOperation_PicksTemplate(t *testing.T) {
	env := newTestEnv(t, "2\n")
	env.loginAs(tech)
	ctx := context.Background()
	env.templates.GetOperationTemplatesFunc = func(ctx context.Context) ([]models.OperationTemplate, error) {
		return []models.OperationTemplate{
			{ID: "op-1", Name: "Cleaning", Active: true},
			{ID: "op-2", Name: "Retired", Active: false},
			{ID: "op-3", Name: "Firmware update", Active: true},
		}, nil
	}

	ticket, err := env.data.StartTicket(ctx, newTicket(tech.ID, "ATM-1"))
	require.NoError(t, err)

	require.NoError(t, env.cli.runTicketOperation(ctx, ticket.ID, "", ""))

	got, err := env.data.GetTicket(ticket.ID)
	require.NoError(t, err)
	require.Len(t, got.Operations, 1)
	assert.Equal(t, "Firmware update", got.Operations[0].Name)
	assert.NotContains(t, env.output(), "Retired")
}

func TestCli_findTicket(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()

	a, err := env.data.StartTicket(ctx, newTicket(tech.ID, "ATM-1"))
	require.NoError(t, err)
	_, err = env.data.StartTicket(ctx, newTicket(tech.ID, "ATM-2"))
	require.NoError(t, err)

	got, err := env.cli.findTicket(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = env.cli.findTicket(" " + a.ID[:13] + " ")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = env.cli.findTicket("")
	require.ErrorIs(t, err, data.ErrTicketNotFound)
	_, err = env.cli.findTicket("zzzz")
	require.ErrorIs(t, err, data.ErrTicketNotFound)
}
