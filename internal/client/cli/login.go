package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/fieldsync/internal/client/auth"
)

func (c *Cli) runLogin(ctx context.Context, username string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	if username == "" {
		var err error
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}

	session, err := c.authService.Login(ctx, username)
	if errors.Is(err, auth.ErrUserNotFound) {
		return fmt.Errorf("%w: run 'fieldsync sync' to fetch users from the portal", err)
	}
	if err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("Role:     %s\n", session.Role)
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Logged out")
	return nil
}
