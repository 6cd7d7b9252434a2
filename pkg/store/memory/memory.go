// Package memory implements the entity store as mutex-guarded in-process
// slices. It backs tests and the default local setup.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

// Store is an in-memory entity store
type Store struct {
	mu sync.RWMutex

	events        []model.Event
	volunteers    []model.Volunteer
	assignments   []model.Assignment
	notifications []model.Notification
	history       []model.HistoryEntry
	historySeq    int64
}

var _ store.Store = (*Store)(nil)

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{historySeq: 1}
}

// SeedIfEmpty loads the seed data when no events and no volunteers exist
func (s *Store) SeedIfEmpty(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) > 0 || len(s.volunteers) > 0 {
		return nil
	}
	s.events = append(s.events, model.SeedEvents...)
	for _, v := range model.SeedVolunteers {
		model.NormalizeVolunteer(&v)
		s.volunteers = append(s.volunteers, v)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}

// Events returns all non-deleted events
func (s *Store) Events(ctx context.Context) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return store.Active(s.events), nil
}

// Event returns one non-deleted event by ID
func (s *Store) Event(ctx context.Context, id string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.events {
		if s.events[i].ID == id && !s.events[i].Deleted {
			e := s.events[i]
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateEvent(ctx context.Context, e *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	s.events = append(s.events, *e)
	return nil
}

func (s *Store) UpdateEvent(ctx context.Context, e *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = *e
			return nil
		}
	}
	return store.ErrNotFound
}

// SoftDeleteEvent marks the event deleted and cascades to its assignments
func (s *Store) SoftDeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].Deleted = true
			found = true
		}
	}
	if !found {
		return store.ErrNotFound
	}
	for i := range s.assignments {
		if s.assignments[i].EventID == id {
			s.assignments[i].Deleted = true
		}
	}
	return nil
}

// Volunteers returns all volunteers. Records are normalized when they
// enter the store, never here: normalizing under an RLock would write
// into availability maps shared with the stored records.
func (s *Store) Volunteers(ctx context.Context) ([]model.Volunteer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Volunteer, len(s.volunteers))
	copy(out, s.volunteers)
	return out, nil
}

// SaveVolunteer inserts or replaces a volunteer record. Records are
// normalized on the way in, so stored state never carries the legacy
// date-list form and reads stay mutation-free.
func (s *Store) SaveVolunteer(ctx context.Context, v *model.Volunteer) error {
	model.NormalizeVolunteer(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.volunteers {
		if s.volunteers[i].ID == v.ID {
			s.volunteers[i] = *v
			return nil
		}
	}
	s.volunteers = append(s.volunteers, *v)
	return nil
}

// Assignments returns the active assignments for an event
func (s *Store) Assignments(ctx context.Context, eventID string) ([]model.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Assignment
	for _, a := range store.Active(s.assignments) {
		if a.EventID == eventID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) IsAssigned(ctx context.Context, volunteerID, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAssignedLocked(volunteerID, eventID), nil
}

func (s *Store) isAssignedLocked(volunteerID, eventID string) bool {
	for _, a := range s.assignments {
		if !a.Deleted && a.VolunteerID == volunteerID && a.EventID == eventID {
			return true
		}
	}
	return false
}

// InsertAssignment records an assignment. Inserting an already-active
// pair is a no-op, keeping the at-most-one-active invariant.
func (s *Store) InsertAssignment(ctx context.Context, a *model.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isAssignedLocked(a.VolunteerID, a.EventID) {
		return nil
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	s.assignments = append(s.assignments, *a)
	return nil
}

// SoftDeleteAssignment marks the active assignment for the pair deleted
func (s *Store) SoftDeleteAssignment(ctx context.Context, volunteerID, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		a := &s.assignments[i]
		if !a.Deleted && a.VolunteerID == volunteerID && a.EventID == eventID {
			a.Deleted = true
		}
	}
	return nil
}

// CountAssigned derives the assigned count from the active records
func (s *Store) CountAssigned(ctx context.Context, eventID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, a := range s.assignments {
		if !a.Deleted && a.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (s *Store) CreateNotification(ctx context.Context, n *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	s.notifications = append(s.notifications, *n)
	return nil
}

func (s *Store) NotificationsFor(ctx context.Context, volunteerID string) ([]model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Notification
	for _, n := range store.Active(s.notifications) {
		if n.VolunteerID == volunteerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Store) SoftDeleteNotification(ctx context.Context, volunteerID, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		n := &s.notifications[i]
		if !n.Deleted && n.VolunteerID == volunteerID && n.EventID == eventID {
			n.Deleted = true
		}
	}
	return nil
}

func (s *Store) AddHistory(ctx context.Context, entry *model.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.historySeq
	s.historySeq++
	s.history = append(s.history, *entry)
	return nil
}

func (s *Store) History(ctx context.Context) ([]model.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out, nil
}

func (s *Store) HistoryFor(ctx context.Context, volunteerID string) ([]model.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.HistoryEntry
	for _, h := range s.history {
		if h.VolunteerID == volunteerID {
			out = append(out, h)
		}
	}
	return out, nil
}
