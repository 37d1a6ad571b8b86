package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/iudanet/fieldsync/internal/client/data"
	"github.com/iudanet/fieldsync/internal/models"
)

type ticketFilter struct {
	OpenOnly bool
	Mine     bool
}

func (c *Cli) runTicketList(ctx context.Context, f ticketFilter) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	var tickets []models.ServiceTicket
	for _, t := range c.dataService.ListTickets() {
		if f.OpenOnly && t.IsCompleted() {
			continue
		}
		if f.Mine && t.TechnicianID != session.UserID {
			continue
		}
		tickets = append(tickets, t)
	}
	if len(tickets) == 0 {
		c.io.Println("No tickets found.")
		return nil
	}
	// свежие сверху
	slices.SortFunc(tickets, func(a, b models.ServiceTicket) int { return b.StartTime.Compare(a.StartTime) })

	table := tablewriter.NewWriter(c.io)
	table.Header("ID", "Device", "Technician", "Status", "Started", "Ops", "Parts")
	for _, t := range tickets {
		if err := table.Append([]string{
			shortID(t.ID),
			t.DeviceCode,
			t.TechnicianName,
			string(t.Status),
			formatTime(t.StartTime),
			fmt.Sprint(len(t.Operations)),
			fmt.Sprint(len(t.SpareParts)),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func (c *Cli) runTicketShow(ctx context.Context, ref string) error {
	if _, err := c.session(ctx); err != nil {
		return err
	}
	t, err := c.findTicket(ref)
	if err != nil {
		return err
	}
	return c.render(ticketTmpl, t)
}

func (c *Cli) runTicketStart(ctx context.Context, device, location, notes string) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	t, err := c.dataService.StartTicket(ctx, data.NewTicket{
		TechnicianID:   session.UserID,
		DeviceCode:     device,
		DeviceLocation: location,
		Notes:          notes,
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Ticket %s started for device %s\n", shortID(t.ID), t.DeviceCode)
	return nil
}

func (c *Cli) runTicketOperation(ctx context.Context, ref, name, description string) error {
	return c.changeTicket(ctx, ref, func(id string) (models.ServiceTicket, error) {
		if name == "" {
			var err error
			if name, err = c.pickOperation(ctx); err != nil {
				return models.ServiceTicket{}, err
			}
		}
		return c.dataService.AddOperation(ctx, id, name, description)
	}, "Operation added")
}

func (c *Cli) runTicketPart(ctx context.Context, ref, name string, quantity int) error {
	return c.changeTicket(ctx, ref, func(id string) (models.ServiceTicket, error) {
		return c.dataService.AddSparePart(ctx, id, name, quantity)
	}, "Spare part added")
}

func (c *Cli) runTicketNotes(ctx context.Context, ref, notes string) error {
	return c.changeTicket(ctx, ref, func(id string) (models.ServiceTicket, error) {
		return c.dataService.SetNotes(ctx, id, notes)
	}, "Notes updated")
}

func (c *Cli) runTicketComplete(ctx context.Context, ref string, yes bool) error {
	if _, err := c.session(ctx); err != nil {
		return err
	}
	t, err := c.findTicket(ref)
	if err != nil {
		return err
	}

	if !yes {
		ok, err := c.io.Confirm(fmt.Sprintf("Complete ticket %s for %s? It cannot be changed afterwards", shortID(t.ID), t.DeviceCode))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	t, err = c.dataService.CompleteTicket(ctx, t.ID)
	if err != nil {
		return err
	}
	c.io.Printf("✓ Ticket %s completed at %s\n", shortID(t.ID), formatTimePtr(t.EndTime))
	return nil
}

func (c *Cli) changeTicket(ctx context.Context, ref string, fn func(id string) (models.ServiceTicket, error), done string) error {
	if _, err := c.session(ctx); err != nil {
		return err
	}
	t, err := c.findTicket(ref)
	if err != nil {
		return err
	}
	t, err = fn(t.ID)
	if err != nil {
		return err
	}
	c.io.Printf("✓ %s (ticket %s)\n", done, shortID(t.ID))
	return nil
}

// pickOperation предлагает выбрать операцию из закешированных шаблонов
func (c *Cli) pickOperation(ctx context.Context) (string, error) {
	templates, err := c.templates.GetOperationTemplates(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read operation templates: %w", err)
	}
	templates = slices.DeleteFunc(templates, func(t models.OperationTemplate) bool { return !t.Active })
	if len(templates) == 0 {
		return c.io.ReadInput("Operation name: ")
	}

	c.io.Println("Operations:")
	for i, t := range templates {
		c.io.Printf("  %d. %s\n", i+1, t.Name)
	}
	answer, err := c.io.ReadInput("Choose a number or type a name: ")
	if err != nil {
		return "", fmt.Errorf("failed to read operation: %w", err)
	}
	var n int
	if _, err := fmt.Sscanf(answer, "%d", &n); err == nil && n >= 1 && n <= len(templates) {
		return templates[n-1].Name, nil
	}
	return answer, nil
}

// findTicket ищет тикет по id или его префиксу из таблицы ticket list
func (c *Cli) findTicket(ref string) (models.ServiceTicket, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.ServiceTicket{}, fmt.Errorf("%w: empty id", data.ErrTicketNotFound)
	}
	var found []models.ServiceTicket
	for _, t := range c.dataService.ListTickets() {
		if t.ID == ref {
			return t, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return models.ServiceTicket{}, fmt.Errorf("%w: %s", data.ErrTicketNotFound, ref)
	case 1:
		return found[0], nil
	default:
		return models.ServiceTicket{}, fmt.Errorf("ambiguous ticket id %q matches %d tickets", ref, len(found))
	}
}
