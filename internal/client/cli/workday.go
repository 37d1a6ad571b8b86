package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWorkdayOpen(ctx context.Context, reason string) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	if _, err := c.connect(ctx); err != nil {
		return err
	}

	if err := c.apiClient.OpenWorkday(ctx, session.UserID, reason); err != nil {
		return fmt.Errorf("failed to open workday: %w", err)
	}
	c.io.Printf("✓ Workday opened for %s\n", session.Username)
	return nil
}

func (c *Cli) runWorkdayClose(ctx context.Context) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	if _, err := c.connect(ctx); err != nil {
		return err
	}

	if err := c.apiClient.CloseWorkday(ctx, session.UserID); err != nil {
		return fmt.Errorf("failed to close workday: %w", err)
	}
	c.io.Printf("✓ Workday closed for %s\n", session.Username)
	return nil
}
