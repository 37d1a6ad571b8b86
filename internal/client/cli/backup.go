package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// ErrConfirmationRequired возвращается, когда подтвердить действие интерактивно нельзя
var ErrConfirmationRequired = errors.New("confirmation required, pass --yes when not running in a terminal")

func (c *Cli) runBackupList(ctx context.Context) error {
	if err := c.requireSuperUser(ctx); err != nil {
		return err
	}
	if _, err := c.connect(ctx); err != nil {
		return err
	}

	backups, err := c.apiClient.ListBackups(ctx)
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		c.io.Println("No backups on the portal.")
		return nil
	}

	table := tablewriter.NewWriter(c.io)
	table.Header("File", "Created", "Size", "Users", "Tickets", "Checksum")
	for _, b := range backups {
		if err := table.Append([]string{
			b.Filename,
			formatTime(b.CreatedAt),
			humanize.Bytes(uint64(max(b.Size, 0))),
			fmt.Sprint(b.Users),
			fmt.Sprint(b.Tickets),
			shortID(b.Checksum),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func (c *Cli) runBackupCreate(ctx context.Context) error {
	if err := c.requireSuperUser(ctx); err != nil {
		return err
	}
	if _, err := c.connect(ctx); err != nil {
		return err
	}

	resp, err := c.apiClient.CreateBackup(ctx)
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	c.io.Printf("✓ Backup created: %s\n", resp.Filename)
	return nil
}

func (c *Cli) runBackupRestore(ctx context.Context, filename string, yes bool) error {
	if err := c.requireSuperUser(ctx); err != nil {
		return err
	}
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return errors.New("backup filename is required")
	}
	endpoint, err := c.connect(ctx)
	if err != nil {
		return err
	}

	if !yes {
		if !c.io.IsTerminal() {
			return ErrConfirmationRequired
		}
		ok, err := c.io.Confirm(fmt.Sprintf("Restore %s on %s? Current portal data will be replaced", filename, endpoint))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	resp, err := c.apiClient.RestoreBackup(ctx, filename)
	if err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	c.io.Printf("✓ Restored %s (%d records)\n", filename, resp.Count)
	c.io.Println("Run 'fieldsync sync' to pull the restored data.")
	return nil
}
