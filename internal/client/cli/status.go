package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/fieldsync/internal/client/livesync"
	"github.com/iudanet/fieldsync/internal/client/storage"
)

type statusView struct {
	LastSync time.Time
	Session  *storage.Session
	Endpoint string
	State    string
	Failures int
	Users    int
	Tickets  int
	Open     int
}

func (c *Cli) runStatus(ctx context.Context) error {
	var view statusView

	session, err := c.authService.CurrentSession(ctx)
	switch {
	case err == nil:
		view.Session = session
	case !errors.Is(err, storage.ErrSessionNotFound):
		return fmt.Errorf("failed to read session: %w", err)
	}

	endpoint, err := c.metadata.GetPortalURL(ctx)
	if err != nil {
		return fmt.Errorf("failed to read portal URL: %w", err)
	}
	if livesync.IsConfiguredEndpoint(endpoint) {
		view.Endpoint = endpoint
	}

	// Планировщик в этом процессе мог не запускаться: берем сохраненное время
	view.LastSync = c.syncer.LastSynced()
	if view.LastSync.IsZero() {
		if view.LastSync, err = c.metadata.GetLastSyncTime(ctx); err != nil {
			c.logger.Warn("Failed to read last sync time", "error", err)
		}
	}
	view.State = c.syncer.State().String()
	view.Failures = c.syncer.ConsecutiveFailures()

	view.Users = len(c.dataService.ListUsers())
	tickets := c.dataService.ListTickets()
	view.Tickets = len(tickets)
	for _, t := range tickets {
		if !t.IsCompleted() {
			view.Open++
		}
	}

	return c.render(statusTmpl, view)
}
