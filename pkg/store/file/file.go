// Package file implements the entity store as a single JSON blob persisted
// to disk: loaded once on open, rewritten after every mutation. It is the
// durable single-machine backend, the shape the original kept in
// browser-local storage.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store/memory"
)

// Store is a JSON-file-backed entity store. All operations run against an
// in-memory snapshot; mutations rewrite the file.
type Store struct {
	path  string
	inner *memory.Store

	// saveMu serializes snapshot+rename so concurrent mutations cannot
	// land their renames out of order and leave a stale blob on disk
	saveMu sync.Mutex
}

// Open loads (or initializes) the store at path
func Open(path string) (*Store, error) {
	s := &Store{path: path, inner: memory.NewStore()}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	var state memory.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
	}
	s.inner.Restore(state)
	return s, nil
}

// save rewrites the blob via a temp file and rename. The snapshot is
// taken under saveMu, so later saves always write later state.
func (s *Store) save() error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	state := s.inner.Snapshot()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store state: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

func (s *Store) SeedIfEmpty(ctx context.Context) error {
	if err := s.inner.SeedIfEmpty(ctx); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) Close(ctx context.Context) error {
	return s.inner.Close(ctx)
}

func (s *Store) Events(ctx context.Context) ([]model.Event, error) {
	return s.inner.Events(ctx)
}

func (s *Store) Event(ctx context.Context, id string) (*model.Event, error) {
	return s.inner.Event(ctx, id)
}

func (s *Store) CreateEvent(ctx context.Context, e *model.Event) error {
	if err := s.inner.CreateEvent(ctx, e); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) UpdateEvent(ctx context.Context, e *model.Event) error {
	if err := s.inner.UpdateEvent(ctx, e); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) SoftDeleteEvent(ctx context.Context, id string) error {
	if err := s.inner.SoftDeleteEvent(ctx, id); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) Volunteers(ctx context.Context) ([]model.Volunteer, error) {
	return s.inner.Volunteers(ctx)
}

func (s *Store) SaveVolunteer(ctx context.Context, v *model.Volunteer) error {
	if err := s.inner.SaveVolunteer(ctx, v); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) Assignments(ctx context.Context, eventID string) ([]model.Assignment, error) {
	return s.inner.Assignments(ctx, eventID)
}

func (s *Store) IsAssigned(ctx context.Context, volunteerID, eventID string) (bool, error) {
	return s.inner.IsAssigned(ctx, volunteerID, eventID)
}

func (s *Store) InsertAssignment(ctx context.Context, a *model.Assignment) error {
	if err := s.inner.InsertAssignment(ctx, a); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) SoftDeleteAssignment(ctx context.Context, volunteerID, eventID string) error {
	if err := s.inner.SoftDeleteAssignment(ctx, volunteerID, eventID); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) CountAssigned(ctx context.Context, eventID string) (int, error) {
	return s.inner.CountAssigned(ctx, eventID)
}

func (s *Store) CreateNotification(ctx context.Context, n *model.Notification) error {
	if err := s.inner.CreateNotification(ctx, n); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) NotificationsFor(ctx context.Context, volunteerID string) ([]model.Notification, error) {
	return s.inner.NotificationsFor(ctx, volunteerID)
}

func (s *Store) SoftDeleteNotification(ctx context.Context, volunteerID, eventID string) error {
	if err := s.inner.SoftDeleteNotification(ctx, volunteerID, eventID); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) AddHistory(ctx context.Context, entry *model.HistoryEntry) error {
	if err := s.inner.AddHistory(ctx, entry); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) History(ctx context.Context) ([]model.HistoryEntry, error) {
	return s.inner.History(ctx)
}

func (s *Store) HistoryFor(ctx context.Context, volunteerID string) ([]model.HistoryEntry, error) {
	return s.inner.HistoryFor(ctx, volunteerID)
}

var _ store.Store = (*Store)(nil)
