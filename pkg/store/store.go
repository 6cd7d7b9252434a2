package store

import (
	"context"
	"errors"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// ErrNotFound is returned when a referenced record does not resolve
var ErrNotFound = errors.New("record not found")

// Store is the entity store the matching engine runs against. The engine
// is agnostic to the backing: in-memory, a persisted JSON blob, Postgres,
// or a remote document collection all implement the same operations.
//
// Read paths exclude soft-deleted records. Stores are constructed
// explicitly and injected; seeding is an explicit step, never an implicit
// first-access side effect.
type Store interface {
	EventStore
	VolunteerStore
	AssignmentStore
	NotificationStore
	HistoryStore

	// SeedIfEmpty loads the seed data when the store holds no events and
	// no volunteers. It is a no-op otherwise.
	SeedIfEmpty(ctx context.Context) error

	Close(ctx context.Context) error
}

// EventStore provides event persistence
type EventStore interface {
	// Events returns all non-deleted events
	Events(ctx context.Context) ([]model.Event, error)

	// Event returns one non-deleted event, or ErrNotFound
	Event(ctx context.Context, id string) (*model.Event, error)

	CreateEvent(ctx context.Context, e *model.Event) error
	UpdateEvent(ctx context.Context, e *model.Event) error

	// SoftDeleteEvent marks the event deleted and cascades the soft delete
	// to its active assignments
	SoftDeleteEvent(ctx context.Context, id string) error
}

// VolunteerStore provides volunteer persistence. Volunteers returned from
// the store are already normalized (legacy availability migrated, nil
// collections replaced).
type VolunteerStore interface {
	Volunteers(ctx context.Context) ([]model.Volunteer, error)
	SaveVolunteer(ctx context.Context, v *model.Volunteer) error
}

// AssignmentStore provides assignment persistence
type AssignmentStore interface {
	// Assignments returns the active assignments for an event
	Assignments(ctx context.Context, eventID string) ([]model.Assignment, error)

	IsAssigned(ctx context.Context, volunteerID, eventID string) (bool, error)
	InsertAssignment(ctx context.Context, a *model.Assignment) error

	// SoftDeleteAssignment marks the active assignment for the pair
	// deleted; no-op if none exists
	SoftDeleteAssignment(ctx context.Context, volunteerID, eventID string) error

	// CountAssigned returns the number of active assignments referencing
	// the event. Always derived from the assignment records, never a
	// separate counter.
	CountAssigned(ctx context.Context, eventID string) (int, error)
}

// NotificationStore provides notification persistence
type NotificationStore interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
	NotificationsFor(ctx context.Context, volunteerID string) ([]model.Notification, error)

	// SoftDeleteNotification marks any active notification for the pair
	// deleted; no-op if none exists
	SoftDeleteNotification(ctx context.Context, volunteerID, eventID string) error
}

// HistoryStore provides volunteer-history persistence
type HistoryStore interface {
	AddHistory(ctx context.Context, entry *model.HistoryEntry) error
	History(ctx context.Context) ([]model.HistoryEntry, error)
	HistoryFor(ctx context.Context, volunteerID string) ([]model.HistoryEntry, error)
}
