package crdt

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Stamper выдает метки updatedAt для локальных изменений.
// Метки строго возрастают с точностью до миллисекунды, поэтому две правки
// в пределах одной миллисекунды не получат одинаковое время.
type Stamper struct {
	clock clockwork.Clock
	last  time.Time
	mu    sync.Mutex
}

// NewStamper создает Stamper поверх переданных часов.
// nil означает реальные часы.
func NewStamper(clock clockwork.Clock) *Stamper {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Stamper{clock: clock}
}

// Next возвращает новую метку, которая позже всех ранее выданных.
func (s *Stamper) Next() time.Time {
	return s.After(time.Time{})
}

// After возвращает метку, которая позже и всех ранее выданных, и prev.
// prev - текущий updatedAt записи: правка не должна "состарить" запись,
// если часы устройства отстают от уже записанной метки.
func (s *Stamper) After(prev time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC().Truncate(time.Millisecond)
	floor := s.last
	if prev.After(floor) {
		floor = prev
	}
	if !now.After(floor) {
		now = floor.Truncate(time.Millisecond).Add(time.Millisecond)
	}
	s.last = now
	return now
}
