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

func (c *Cli) runUserList(ctx context.Context) error {
	if _, err := c.session(ctx); err != nil {
		return err
	}

	users := c.dataService.ListUsers()
	if len(users) == 0 {
		c.io.Println("No users yet. Run 'fieldsync sync' to fetch them from the portal.")
		return nil
	}
	slices.SortFunc(users, func(a, b models.User) int { return strings.Compare(a.Username, b.Username) })

	table := tablewriter.NewWriter(c.io)
	table.Header("ID", "Username", "Name", "Role", "Active", "Updated")
	for _, u := range users {
		if err := table.Append([]string{
			shortID(u.ID), u.Username, u.DisplayName, string(u.Role), yesNo(u.Active), formatTimePtr(u.UpdatedAt),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func (c *Cli) runUserAdd(ctx context.Context, username, name string, role models.Role) error {
	if err := c.requireSuperUser(ctx); err != nil {
		return err
	}

	user, err := c.dataService.CreateUser(ctx, data.NewUser{Username: username, DisplayName: name, Role: role})
	if err != nil {
		return err
	}

	c.io.Printf("✓ User %s created (ID: %s)\n", user.Username, user.ID)
	c.io.Println("It will reach the portal on the next sync cycle.")
	return nil
}

func (c *Cli) runUserSetActive(ctx context.Context, ref string, active bool) error {
	if err := c.requireSuperUser(ctx); err != nil {
		return err
	}

	user, err := c.findUser(ref)
	if err != nil {
		return err
	}
	user, err = c.dataService.SetUserActive(ctx, user.ID, active)
	if err != nil {
		return err
	}

	if active {
		c.io.Printf("✓ User %s activated\n", user.Username)
	} else {
		c.io.Printf("✓ User %s deactivated\n", user.Username)
	}
	return nil
}

// findUser ищет пользователя по username или префиксу id
func (c *Cli) findUser(ref string) (models.User, error) {
	ref = strings.TrimSpace(ref)
	users := c.dataService.ListUsers()
	for _, u := range users {
		if strings.EqualFold(u.Username, ref) {
			return u, nil
		}
	}
	var found []models.User
	for _, u := range users {
		if ref != "" && strings.HasPrefix(u.ID, ref) {
			found = append(found, u)
		}
	}
	switch len(found) {
	case 0:
		return models.User{}, fmt.Errorf("%w: %s", data.ErrUserNotFound, ref)
	case 1:
		return found[0], nil
	default:
		return models.User{}, fmt.Errorf("ambiguous user reference %q matches %d users", ref, len(found))
	}
}
