// Package memory provides an in-process row store used by tests and the
// "memory" backend. It mirrors the sheet-backed stores: a flat staff list
// and an append-only event log in insertion order.
package memory

import (
	"context"
	"sync"

	"github.com/gatescan/attendance-backend-go/internal/domain/attendance"
	"github.com/gatescan/attendance-backend-go/internal/domain/staff"
)

type Store struct {
	mu     sync.RWMutex
	roster []staff.Staff
	events []attendance.Event
}

func NewStore() *Store {
	return &Store{}
}

// SetRoster replaces the staff list, as editing the sheet would.
func (s *Store) SetRoster(roster []staff.Staff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = append([]staff.Staff(nil), roster...)
}

// ListStaff implements staff.RosterSource.
func (s *Store) ListStaff(ctx context.Context) ([]staff.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]staff.Staff(nil), s.roster...), nil
}

// Append implements attendance.EventLog.
func (s *Store) Append(ctx context.Context, event attendance.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// ListEvents implements attendance.EventLog.
func (s *Store) ListEvents(ctx context.Context) ([]attendance.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]attendance.Event(nil), s.events...), nil
}
