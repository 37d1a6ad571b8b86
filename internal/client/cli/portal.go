package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/fieldsync/internal/client/livesync"
)

func (c *Cli) runPortalSetURL(ctx context.Context, raw string) error {
	endpoint, err := normalizePortalURL(raw)
	if err != nil {
		return err
	}
	if !livesync.IsConfiguredEndpoint(endpoint) {
		return fmt.Errorf("%w: %s is the placeholder address", ErrInvalidPortal, endpoint)
	}

	if err := c.metadata.SavePortalURL(ctx, endpoint); err != nil {
		return fmt.Errorf("failed to save portal URL: %w", err)
	}
	c.apiClient.SetBaseURL(endpoint)

	c.io.Printf("✓ Portal URL set to %s\n", endpoint)
	c.io.Println("Run 'fieldsync test-connection' to verify it.")
	return nil
}

func (c *Cli) runPortalShow(ctx context.Context) error {
	endpoint, err := c.metadata.GetPortalURL(ctx)
	if err != nil {
		return fmt.Errorf("failed to read portal URL: %w", err)
	}
	if !livesync.IsConfiguredEndpoint(endpoint) {
		c.io.Println("Portal URL: not configured")
		return nil
	}
	c.io.Printf("Portal URL: %s\n", endpoint)
	return nil
}

func (c *Cli) runTestConnection(ctx context.Context) error {
	endpoint, err := c.connect(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Connecting to %s...\n", endpoint)

	ctx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	started := time.Now()
	resp, err := c.apiClient.Health(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("portal did not answer within %s", connectionTimeout)
		}
		return fmt.Errorf("portal unreachable: %w", err)
	}

	c.io.Printf("✓ Portal is reachable (status: %s, %s)\n", resp.Status, time.Since(started).Round(time.Millisecond))
	if resp.Message != "" {
		c.io.Println(resp.Message)
	}
	return nil
}
