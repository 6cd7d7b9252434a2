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

// mockSender records sent emails
type mockSender struct {
	to      []string
	subject []string
	body    []string
	err     error
}

func (m *mockSender) SendEmail(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, to)
	m.subject = append(m.subject, subject)
	m.body = append(m.body, body)
	return nil
}

func notifyFixture() (*mockStore, *model.Event) {
	db := &mockStore{
		volunteers: []model.Volunteer{
			{ID: "vol-1", Name: "Alex Kim", Email: "alex@example.com"},
			{ID: "vol-2", Name: "Sam Lee"}, // no email on file
		},
	}
	event := &model.Event{
		ID:        "evt-1",
		Name:      "Adoption Event",
		Location:  "Midtown Shelter",
		Date:      "2025-10-13",
		TimeOfDay: "Morning",
	}
	return db, event
}

func TestEmailNotifier_SendsNotice(t *testing.T) {
	ctx := context.Background()
	db, event := notifyFixture()
	sender := &mockSender{}
	n := NewEmailNotifier(sender, db, zap.NewNop())

	require.NoError(t, n.NotifyAssigned(ctx, "vol-1", event))

	require.Len(t, sender.to, 1)
	assert.Equal(t, "alex@example.com", sender.to[0])
	assert.Contains(t, sender.subject[0], "Adoption Event")
	assert.Contains(t, sender.body[0], "2025-10-13")
	assert.Contains(t, sender.body[0], "Morning")
	assert.Contains(t, sender.body[0], "Midtown Shelter")
}

func TestEmailNotifier_SkipsWithoutEmail(t *testing.T) {
	ctx := context.Background()
	db, event := notifyFixture()
	sender := &mockSender{}
	n := NewEmailNotifier(sender, db, zap.NewNop())

	require.NoError(t, n.NotifyAssigned(ctx, "vol-2", event))
	assert.Empty(t, sender.to)
}

func TestEmailNotifier_SenderError(t *testing.T) {
	ctx := context.Background()
	db, event := notifyFixture()
	sender := &mockSender{err: errors.New("quota exceeded")}
	n := NewEmailNotifier(sender, db, zap.NewNop())

	assert.Error(t, n.NotifyAssigned(ctx, "vol-1", event))
}
