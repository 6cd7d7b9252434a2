package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

func intPtr(n int) *int { return &n }

func assignFixture() *mockStore {
	return &mockStore{
		events: []model.Event{
			{ID: "evt-1", Name: "Adoption Event", Location: "Midtown", Urgency: model.UrgencyMedium, Date: "2025-10-13"},
		},
	}
}

func TestAssignVolunteers_Batch(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db := assignFixture()

	result, err := AssignVolunteers(ctx, db, logger, nil, "evt-1", []string{"vol-1", "vol-2"}, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"vol-1", "vol-2"}, result.Assigned)
	assert.Equal(t, "evt-1", result.EventID)

	// Each admitted volunteer gets an assignment, a history entry and a
	// notification record
	assert.Len(t, db.assignments, 2)
	assert.Len(t, db.history, 2)
	assert.Len(t, db.notifications, 2)

	assert.Equal(t, 3.0, db.assignments[0].Hours)
	assert.Equal(t, "Adoption Event", db.history[0].Event)
	assert.Equal(t, "2025-10-13", db.history[0].Date)
	assert.Contains(t, db.notifications[0].Message, "Adoption Event")
}

func TestAssignVolunteers_CapacityClamp(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db := assignFixture()
	db.events[0].Capacity = intPtr(1)

	result, err := AssignVolunteers(ctx, db, logger, nil, "evt-1", []string{"vol-1", "vol-2"}, 0)
	require.NoError(t, err)

	// Only the first requested volunteer fits
	assert.Equal(t, []string{"vol-1"}, result.Assigned)
	assert.Len(t, db.assignments, 1)
}

func TestAssignVolunteers_CapacityAlreadyFull(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db := assignFixture()
	db.events[0].Capacity = intPtr(1)
	db.assignments = []model.Assignment{{ID: "asg-0", VolunteerID: "vol-0", EventID: "evt-1"}}

	result, err := AssignVolunteers(ctx, db, logger, nil, "evt-1", []string{"vol-1"}, 0)
	require.NoError(t, err)

	assert.Empty(t, result.Assigned)
	assert.Len(t, db.assignments, 1)
}

func TestAssignVolunteers_DedupesRequest(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db := assignFixture()
	db.assignments = []model.Assignment{{ID: "asg-0", VolunteerID: "vol-1", EventID: "evt-1"}}

	result, err := AssignVolunteers(ctx, db, logger, nil, "evt-1", []string{"vol-1", "vol-2", "vol-2"}, 0)
	require.NoError(t, err)

	// vol-1 was already assigned, vol-2 appears twice in the request
	assert.Equal(t, []string{"vol-2"}, result.Assigned)
	assert.Len(t, db.assignments, 2)
}

func TestAssignVolunteers_EventNotFound(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db := &mockStore{}

	_, err := AssignVolunteers(ctx, db, logger, nil, "missing", []string{"vol-1"}, 0)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestAssignVolunteers_DefaultHours(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db := assignFixture()

	_, err := AssignVolunteers(ctx, db, logger, nil, "evt-1", []string{"vol-1"}, 0)
	require.NoError(t, err)

	require.Len(t, db.history, 1)
	assert.Equal(t, float64(DefaultHours), db.history[0].Hours)
}

func TestAssignVolunteers_NotifierCalled(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db := assignFixture()
	notifier := &mockNotifier{}

	_, err := AssignVolunteers(ctx, db, logger, notifier, "evt-1", []string{"vol-1", "vol-2"}, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"vol-1", "vol-2"}, notifier.notified)
}

func TestAssignVolunteers_NotifierFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db := assignFixture()
	notifier := &mockNotifier{err: errors.New("smtp down")}

	result, err := AssignVolunteers(ctx, db, logger, notifier, "evt-1", []string{"vol-1"}, 0)
	require.NoError(t, err)

	// The assignment sticks even when the email does not go out
	assert.Equal(t, []string{"vol-1"}, result.Assigned)
	assert.Len(t, db.assignments, 1)
}

func TestUnassign_RemovesAssignmentAndNotification(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db := assignFixture()

	_, err := AssignVolunteers(ctx, db, logger, nil, "evt-1", []string{"vol-1"}, 0)
	require.NoError(t, err)

	require.NoError(t, Unassign(ctx, db, logger, "vol-1", "evt-1"))

	assigned, err := db.IsAssigned(ctx, "vol-1", "evt-1")
	require.NoError(t, err)
	assert.False(t, assigned)

	notifications, err := db.NotificationsFor(ctx, "vol-1")
	require.NoError(t, err)
	assert.Empty(t, notifications)

	// History survives the unassign
	assert.Len(t, db.history, 1)
}

func TestUnassign_NoopWhenNotAssigned(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	db := assignFixture()

	assert.NoError(t, Unassign(ctx, db, logger, "vol-ghost", "evt-1"))
}
