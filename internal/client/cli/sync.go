package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/iudanet/fieldsync/internal/client/livesync"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	res, err := c.syncer.Once(ctx)
	switch {
	case errors.Is(err, livesync.ErrNotConfigured):
		return ErrPortalNotReady
	case errors.Is(err, livesync.ErrCycleInProgress):
		c.io.Println("A sync cycle is already running, try again in a moment.")
		return nil
	case err != nil:
		return fmt.Errorf("synchronization failed: %w", err)
	}

	table := tablewriter.NewWriter(c.io)
	table.Header("Kind", "Pushed", "Added", "Replaced", "Kept", "Skipped")
	if err := table.Append([]string{
		"users",
		fmt.Sprint(res.PushedUsers),
		fmt.Sprint(res.Users.Added),
		fmt.Sprint(res.Users.Replaced),
		fmt.Sprint(res.Users.Kept),
		fmt.Sprint(res.Users.Skipped),
	}); err != nil {
		return err
	}
	if err := table.Append([]string{
		"tickets",
		fmt.Sprint(res.PushedTickets),
		fmt.Sprint(res.Tickets.Added),
		fmt.Sprint(res.Tickets.Replaced),
		fmt.Sprint(res.Tickets.Kept),
		fmt.Sprint(res.Tickets.Skipped),
	}); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	c.io.Println()
	if res.Partial() {
		c.io.Println("⚠️  Synchronization completed with errors:")
		for _, e := range res.Errors {
			c.io.Printf("  - %v\n", e)
		}
		return nil
	}
	c.io.Printf("✓ Synchronized with %s\n", res.Endpoint)
	return nil
}
