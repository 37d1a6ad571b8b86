// Package state хранит локальные коллекции в памяти и синхронно сохраняет их на диск.
package state

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/iudanet/fieldsync/internal/client/storage"
	"github.com/iudanet/fieldsync/internal/models"
)

// Persister сохраняет и загружает коллекцию целиком
type Persister[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Replace(ctx context.Context, items []T) error
}

// PersisterFuncs адаптирует пару функций к Persister
type PersisterFuncs[T any] struct {
	LoadFunc    func(ctx context.Context) ([]T, error)
	ReplaceFunc func(ctx context.Context, items []T) error
}

func (p PersisterFuncs[T]) Load(ctx context.Context) ([]T, error) { return p.LoadFunc(ctx) }

func (p PersisterFuncs[T]) Replace(ctx context.Context, items []T) error {
	return p.ReplaceFunc(ctx, items)
}

// Holder владеет коллекцией одного вида сущностей.
//
// Читатели получают неизменяемый снимок без блокировок и всегда видят
// коллекцию целиком: до или после замены. Запись сериализуется мьютексом,
// сначала сохраняется на диск и только потом становится видна читателям.
type Holder[T any] struct {
	store   Persister[T]
	clone   func(T) T
	current atomic.Pointer[[]T]
	mu      sync.Mutex
}

// New создает Holder. clone может быть nil для типов без ссылочных полей.
func New[T any](store Persister[T], clone func(T) T) *Holder[T] {
	h := &Holder[T]{store: store, clone: clone}
	empty := []T{}
	h.current.Store(&empty)
	return h
}

// NewUserHolder создает Holder пользователей поверх UserStorage
func NewUserHolder(s storage.UserStorage) *Holder[models.User] {
	return New[models.User](PersisterFuncs[models.User]{
		LoadFunc:    s.LoadUsers,
		ReplaceFunc: s.ReplaceUsers,
	}, models.User.Clone)
}

// NewTicketHolder создает Holder тикетов поверх TicketStorage
func NewTicketHolder(s storage.TicketStorage) *Holder[models.ServiceTicket] {
	return New[models.ServiceTicket](PersisterFuncs[models.ServiceTicket]{
		LoadFunc:    s.LoadTickets,
		ReplaceFunc: s.ReplaceTickets,
	}, models.ServiceTicket.Clone)
}

// Load загружает коллекцию с диска, вызывается один раз при старте
func (h *Holder[T]) Load(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	items, err := h.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	h.current.Store(&items)
	return nil
}

// All возвращает копию текущей коллекции
func (h *Holder[T]) All() []T {
	return h.copyOf(*h.current.Load())
}

// Len возвращает размер текущей коллекции
func (h *Holder[T]) Len() int {
	return len(*h.current.Load())
}

// Replace атомарно заменяет коллекцию целиком.
// Если сохранение не удалось, читатели продолжают видеть прежнюю коллекцию.
func (h *Holder[T]) Replace(ctx context.Context, items []T) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.replaceLocked(ctx, h.copyOf(items))
}

// Update применяет fn к текущей коллекции и сохраняет результат.
// fn получает копию и может изменять ее. Ошибка fn отменяет запись.
func (h *Holder[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	next, err := fn(h.copyOf(*h.current.Load()))
	if err != nil {
		return err
	}
	return h.replaceLocked(ctx, next)
}

func (h *Holder[T]) replaceLocked(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := h.store.Replace(ctx, items); err != nil {
		return fmt.Errorf("failed to persist collection: %w", err)
	}
	h.current.Store(&items)
	return nil
}

func (h *Holder[T]) copyOf(items []T) []T {
	out := make([]T, len(items))
	if h.clone == nil {
		copy(out, items)
		return out
	}
	for i, it := range items {
		out[i] = h.clone(it)
	}
	return out
}
