package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

// DefaultHours is credited to a volunteer's history per assignment when
// the caller does not specify a figure
const DefaultHours = 2

// AssignStore is the store surface needed by the assignment manager
type AssignStore interface {
	Event(ctx context.Context, id string) (*model.Event, error)
	Assignments(ctx context.Context, eventID string) ([]model.Assignment, error)
	IsAssigned(ctx context.Context, volunteerID, eventID string) (bool, error)
	InsertAssignment(ctx context.Context, a *model.Assignment) error
	SoftDeleteAssignment(ctx context.Context, volunteerID, eventID string) error
	CountAssigned(ctx context.Context, eventID string) (int, error)
	CreateNotification(ctx context.Context, n *model.Notification) error
	SoftDeleteNotification(ctx context.Context, volunteerID, eventID string) error
	AddHistory(ctx context.Context, entry *model.HistoryEntry) error
}

// Notifier delivers an out-of-band assignment notice (email). A nil
// Notifier means records only.
type Notifier interface {
	NotifyAssigned(ctx context.Context, volunteerID string, event *model.Event) error
}

// AssignResult reports which volunteers from a batch were admitted
type AssignResult struct {
	Assigned []string `json:"assigned"`
	EventID  string   `json:"eventId"`
}

// AssignVolunteers assigns a batch of volunteers to an event.
//
// Already-assigned volunteers are dropped from the batch (assignment is
// idempotent, never duplicated). When the event has a capacity, only the
// first remaining = max(0, capacity - assignedCount) requested volunteers
// are admitted; the rest are silently omitted from the result. Each
// admitted volunteer gets a history entry and a notification record; a
// configured Notifier is additionally invoked, with failures logged but
// never failing the assignment.
func AssignVolunteers(ctx context.Context, database AssignStore, logger *zap.Logger, notifier Notifier, eventID string, volunteerIDs []string, hours float64) (*AssignResult, error) {
	event, err := database.Event(ctx, eventID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	if hours <= 0 {
		hours = DefaultHours
	}

	assignments, err := database.Assignments(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	already := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		already[a.VolunteerID] = true
	}

	var fresh []string
	for _, id := range volunteerIDs {
		if !already[id] {
			fresh = append(fresh, id)
			already[id] = true // dedupe within the batch too
		}
	}

	toAssign := fresh
	if event.Capacity != nil {
		remaining := *event.Capacity - len(assignments)
		if remaining < 0 {
			remaining = 0
		}
		if len(toAssign) > remaining {
			toAssign = toAssign[:remaining]
		}
	}

	assigned := make([]string, 0, len(toAssign))
	for _, volunteerID := range toAssign {
		a := &model.Assignment{
			ID:          uuid.New().String(),
			VolunteerID: volunteerID,
			EventID:     eventID,
			Hours:       hours,
		}
		if err := database.InsertAssignment(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to insert assignment: %w", err)
		}
		assigned = append(assigned, volunteerID)

		entry := &model.HistoryEntry{
			VolunteerID: volunteerID,
			Date:        event.Date,
			Event:       event.Name,
			Hours:       hours,
		}
		if err := database.AddHistory(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to record history: %w", err)
		}

		notification := &model.Notification{
			ID:            uuid.New().String(),
			VolunteerID:   volunteerID,
			EventID:       eventID,
			Message:       fmt.Sprintf("You have been assigned to %s on %s.", event.Name, event.Date),
			AudienceRoles: []string{"volunteer"},
		}
		if err := database.CreateNotification(ctx, notification); err != nil {
			return nil, fmt.Errorf("failed to create notification: %w", err)
		}

		if notifier != nil {
			if err := notifier.NotifyAssigned(ctx, volunteerID, event); err != nil {
				logger.Warn("Failed to send assignment notice",
					zap.String("volunteer_id", volunteerID),
					zap.String("event_id", eventID),
					zap.Error(err))
			}
		}
	}

	logger.Info("Assigned volunteers to event",
		zap.String("event_id", eventID),
		zap.Int("requested", len(volunteerIDs)),
		zap.Int("assigned", len(assigned)))

	return &AssignResult{Assigned: assigned, EventID: event.ID}, nil
}

// Assign assigns a single volunteer to an event. A no-op if an active
// assignment already exists for the pair.
func Assign(ctx context.Context, database AssignStore, logger *zap.Logger, notifier Notifier, volunteerID, eventID string) error {
	_, err := AssignVolunteers(ctx, database, logger, notifier, eventID, []string{volunteerID}, DefaultHours)
	return err
}

// Unassign soft-deletes the active assignment for the pair and any active
// notification tied to it. A no-op when no assignment exists; missing
// entities are deliberately not errors here.
func Unassign(ctx context.Context, database AssignStore, logger *zap.Logger, volunteerID, eventID string) error {
	if err := database.SoftDeleteAssignment(ctx, volunteerID, eventID); err != nil {
		return fmt.Errorf("failed to unassign volunteer: %w", err)
	}
	if err := database.SoftDeleteNotification(ctx, volunteerID, eventID); err != nil {
		return fmt.Errorf("failed to clear notification: %w", err)
	}

	logger.Info("Unassigned volunteer from event",
		zap.String("volunteer_id", volunteerID),
		zap.String("event_id", eventID))
	return nil
}
