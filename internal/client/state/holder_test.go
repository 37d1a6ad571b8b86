package state

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/client/storage/boltdb"
	"github.com/iudanet/fieldsync/internal/models"
)

func TestHolder_LoadFromBolt(t *testing.T) {
	ctx := context.Background()
	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.ReplaceUsers(ctx, []models.User{{ID: "u1"}, {ID: "u2"}}))

	users := NewUserHolder(store)
	assert.Equal(t, 0, users.Len())
	require.NoError(t, users.Load(ctx))
	assert.Equal(t, 2, users.Len())

	// Запись через holder видна и в памяти, и на диске
	require.NoError(t, users.Update(ctx, func(items []models.User) ([]models.User, error) {
		return append(items, models.User{ID: "u3"}), nil
	}))
	assert.Equal(t, 3, users.Len())

	persisted, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, 3)
}

func TestHolder_FailedPersistKeepsPreviousCollection(t *testing.T) {
	ctx := context.Background()
	fail := false
	mock := &storage.TicketStorageMock{
		LoadTicketsFunc: func(ctx context.Context) ([]models.ServiceTicket, error) {
			return []models.ServiceTicket{{ID: "t1"}}, nil
		},
		ReplaceTicketsFunc: func(ctx context.Context, tickets []models.ServiceTicket) error {
			if fail {
				return errors.New("disk full")
			}
			return nil
		},
	}

	h := NewTicketHolder(mock)
	require.NoError(t, h.Load(ctx))

	fail = true
	err := h.Replace(ctx, []models.ServiceTicket{{ID: "t2"}, {ID: "t3"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	all := h.All()
	require.Len(t, all, 1)
	assert.Equal(t, "t1", all[0].ID)
	assert.Len(t, mock.ReplaceTicketsCalls(), 1)
}

func TestHolder_UpdateErrorAbortsWrite(t *testing.T) {
	ctx := context.Background()
	mock := &storage.UserStorageMock{
		ReplaceUsersFunc: func(ctx context.Context, users []models.User) error { return nil },
	}
	h := NewUserHolder(mock)

	errAbort := errors.New("abort")
	err := h.Update(ctx, func(items []models.User) ([]models.User, error) {
		return nil, errAbort
	})

	require.ErrorIs(t, err, errAbort)
	assert.Empty(t, mock.ReplaceUsersCalls())
}

func TestHolder_AllReturnsIndependentCopy(t *testing.T) {
	ctx := context.Background()
	mock := &storage.TicketStorageMock{
		ReplaceTicketsFunc: func(ctx context.Context, tickets []models.ServiceTicket) error { return nil },
	}
	h := NewTicketHolder(mock)

	require.NoError(t, h.Replace(ctx, []models.ServiceTicket{{
		ID:         "t1",
		Operations: []models.Operation{{ID: "op1", Name: "original"}},
	}}))

	snapshot := h.All()
	snapshot[0].Operations[0].Name = "mutated"
	snapshot[0].ID = "other"

	fresh := h.All()
	assert.Equal(t, "t1", fresh[0].ID)
	assert.Equal(t, "original", fresh[0].Operations[0].Name)
}

// Читатели никогда не видят частично замененную коллекцию
func TestHolder_ReadersSeeWholeCollections(t *testing.T) {
	ctx := context.Background()
	mock := &storage.UserStorageMock{
		ReplaceUsersFunc: func(ctx context.Context, users []models.User) error { return nil },
	}
	h := NewUserHolder(mock)

	const size = 50
	makeGen := func(gen int) []models.User {
		users := make([]models.User, size)
		for i := range users {
			users[i] = models.User{ID: fmt.Sprintf("u%d", i), Username: fmt.Sprintf("gen%d", gen)}
		}
		return users
	}
	require.NoError(t, h.Replace(ctx, makeGen(0)))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	errs := make(chan string, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			all := h.All()
			if len(all) != size {
				select {
				case errs <- fmt.Sprintf("unexpected size %d", len(all)):
				default:
				}
				return
			}
			for _, u := range all[1:] {
				if u.Username != all[0].Username {
					select {
					case errs <- "mixed generations in one snapshot":
					default:
					}
					return
				}
			}
		}
	}()

	for gen := 1; gen <= 100; gen++ {
		require.NoError(t, h.Replace(ctx, makeGen(gen)))
	}
	close(stop)
	wg.Wait()

	select {
	case msg := <-errs:
		t.Fatal(msg)
	default:
	}
}

func TestHolder_UserCopiesDoNotShareTimestamps(t *testing.T) {
	ctx := context.Background()
	mock := &storage.UserStorageMock{
		ReplaceUsersFunc: func(ctx context.Context, users []models.User) error { return nil },
	}
	h := NewUserHolder(mock)

	upd := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, h.Replace(ctx, []models.User{{ID: "u1", UpdatedAt: &upd}}))

	snapshot := h.All()
	*snapshot[0].UpdatedAt = upd.Add(time.Hour)

	assert.Equal(t, upd, h.All()[0].ModifiedAt())
}
