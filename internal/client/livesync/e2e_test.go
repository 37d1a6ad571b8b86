package livesync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/fieldsync/internal/client/api"
	"github.com/iudanet/fieldsync/internal/client/state"
	"github.com/iudanet/fieldsync/internal/client/storage/boltdb"
	"github.com/iudanet/fieldsync/internal/crdt"
	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/pkg/api"
)

// mockPortal минимальный портал: принимает push с LWW слиянием и отдает свои коллекции
type mockPortal struct {
	mu       sync.Mutex
	requests []string
	received [][]models.ServiceTicket
	users    []models.User
	tickets  []models.ServiceTicket
}

func (p *mockPortal) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		p.log(r)
		writeJSON(w, api.HealthResponse{Status: "ok"})
	})
	mux.HandleFunc("POST /api/sync/tickets", func(w http.ResponseWriter, r *http.Request) {
		p.log(r)
		var req api.PushTicketsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p.mu.Lock()
		p.received = append(p.received, req.Tickets)
		// на портале входящие записи побеждают при равных метках
		p.tickets, _ = crdt.Merge(p.tickets, req.Tickets, nil)
		p.mu.Unlock()
		writeJSON(w, api.WriteResponse{Success: true, Count: len(req.Tickets)})
	})
	mux.HandleFunc("GET /api/sync/users", func(w http.ResponseWriter, r *http.Request) {
		p.log(r)
		p.mu.Lock()
		defer p.mu.Unlock()
		writeJSON(w, api.UsersResponse{Success: true, Users: p.users})
	})
	mux.HandleFunc("GET /api/sync/tickets", func(w http.ResponseWriter, r *http.Request) {
		p.log(r)
		p.mu.Lock()
		defer p.mu.Unlock()
		writeJSON(w, api.TicketsResponse{Success: true, Tickets: p.tickets})
	})
	return mux
}

func (p *mockPortal) log(r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, r.Method+" "+r.URL.Path)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestEndToEnd_PushThenPull(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	portal := &mockPortal{
		users: []models.User{{ID: "u1", Username: "ivanov", Role: models.RoleTechnician, Active: true}},
		tickets: []models.ServiceTicket{
			{ID: "A", Status: models.TicketCompleted, UpdatedAt: at(now), EndTime: at(now)},
			{ID: "B", Status: models.TicketInProgress, UpdatedAt: at(now)},
		},
	}
	server := httptest.NewServer(portal.handler())
	defer server.Close()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "device.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.SavePortalURL(ctx, server.URL))
	require.NoError(t, store.ReplaceTickets(ctx, []models.ServiceTicket{
		{ID: "A", Status: models.TicketInProgress, DeviceCode: "DEV-1"},
	}))

	users := state.NewUserHolder(store)
	tickets := state.NewTicketHolder(store)
	require.NoError(t, users.Load(ctx))
	require.NoError(t, tickets.Load(ctx))

	s := New(clientapi.NewClient(""), users, tickets, store, testLogger())
	res, err := s.Once(ctx)
	require.NoError(t, err)
	require.False(t, res.Partial(), "unexpected errors: %v", res.Err())

	// push предшествует pull
	assert.Equal(t, []string{
		"GET /api/health",
		"POST /api/sync/tickets",
		"GET /api/sync/users",
		"GET /api/sync/tickets",
	}, sortPull(portal.requests))

	// портал получил локальную версию A до того, как она была перезаписана
	require.Len(t, portal.received, 1)
	require.Len(t, portal.received[0], 1)
	assert.Equal(t, models.TicketInProgress, portal.received[0][0].Status)

	// локально A завершен, B добавлен
	got := tickets.All()
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].ID)
	assert.Equal(t, models.TicketCompleted, got[0].Status)
	assert.Equal(t, "B", got[1].ID)
	assert.Equal(t, crdt.Stats{Added: 1, Replaced: 1}, res.Tickets)
	assert.Len(t, users.All(), 1)

	// holder и bbolt согласованы
	persisted, err := store.LoadTickets(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, persisted)

	last, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.False(t, last.IsZero())

	// повторный цикл ничего не меняет
	before := tickets.All()
	res, err = s.Once(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, tickets.All())
	assert.Zero(t, res.Tickets.Added)
}

func TestEndToEnd_PortalDown(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "device.db"))
	require.NoError(t, err)
	defer store.Close()

	local := []models.ServiceTicket{{ID: "A", Status: models.TicketInProgress}}
	require.NoError(t, store.SavePortalURL(ctx, server.URL))
	require.NoError(t, store.ReplaceTickets(ctx, local))

	users := state.NewUserHolder(store)
	tickets := state.NewTicketHolder(store)
	require.NoError(t, users.Load(ctx))
	require.NoError(t, tickets.Load(ctx))

	s := New(clientapi.NewClient(""), users, tickets, store, testLogger())
	_, err = s.Once(ctx)
	require.Error(t, err)

	var httpErr *clientapi.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, 1, s.ConsecutiveFailures())
	assert.Equal(t, local, tickets.All())
}

// sortPull упорядочивает параллельные GET запросы pull, не трогая остальные
func sortPull(requests []string) []string {
	out := append([]string(nil), requests...)
	n := len(out)
	if n >= 2 && out[n-2] == "GET /api/sync/tickets" && out[n-1] == "GET /api/sync/users" {
		out[n-2], out[n-1] = out[n-1], out[n-2]
	}
	return out
}
