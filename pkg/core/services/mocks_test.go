package services

import (
	"context"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

// mockStore is an in-place fake of the store surfaces the services use
type mockStore struct {
	events        []model.Event
	volunteers    []model.Volunteer
	assignments   []model.Assignment
	notifications []model.Notification
	history       []model.HistoryEntry

	eventErr  error
	insertErr error

	historySeq int64
}

func (m *mockStore) Events(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	for _, e := range m.events {
		if !e.Deleted {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockStore) Event(ctx context.Context, id string) (*model.Event, error) {
	if m.eventErr != nil {
		return nil, m.eventErr
	}
	for i := range m.events {
		if m.events[i].ID == id && !m.events[i].Deleted {
			e := m.events[i]
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockStore) CreateEvent(ctx context.Context, e *model.Event) error {
	m.events = append(m.events, *e)
	return nil
}

func (m *mockStore) UpdateEvent(ctx context.Context, e *model.Event) error {
	for i := range m.events {
		if m.events[i].ID == e.ID {
			m.events[i] = *e
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *mockStore) SoftDeleteEvent(ctx context.Context, id string) error {
	for i := range m.events {
		if m.events[i].ID == id {
			m.events[i].Deleted = true
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *mockStore) Volunteers(ctx context.Context) ([]model.Volunteer, error) {
	return m.volunteers, nil
}

func (m *mockStore) SaveVolunteer(ctx context.Context, v *model.Volunteer) error {
	for i := range m.volunteers {
		if m.volunteers[i].ID == v.ID {
			m.volunteers[i] = *v
			return nil
		}
	}
	m.volunteers = append(m.volunteers, *v)
	return nil
}

func (m *mockStore) Assignments(ctx context.Context, eventID string) ([]model.Assignment, error) {
	var out []model.Assignment
	for _, a := range m.assignments {
		if !a.Deleted && a.EventID == eventID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockStore) IsAssigned(ctx context.Context, volunteerID, eventID string) (bool, error) {
	for _, a := range m.assignments {
		if !a.Deleted && a.VolunteerID == volunteerID && a.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStore) InsertAssignment(ctx context.Context, a *model.Assignment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.assignments = append(m.assignments, *a)
	return nil
}

func (m *mockStore) SoftDeleteAssignment(ctx context.Context, volunteerID, eventID string) error {
	for i := range m.assignments {
		a := &m.assignments[i]
		if !a.Deleted && a.VolunteerID == volunteerID && a.EventID == eventID {
			a.Deleted = true
		}
	}
	return nil
}

func (m *mockStore) CountAssigned(ctx context.Context, eventID string) (int, error) {
	count := 0
	for _, a := range m.assignments {
		if !a.Deleted && a.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (m *mockStore) CreateNotification(ctx context.Context, n *model.Notification) error {
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *mockStore) NotificationsFor(ctx context.Context, volunteerID string) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range m.notifications {
		if !n.Deleted && n.VolunteerID == volunteerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockStore) SoftDeleteNotification(ctx context.Context, volunteerID, eventID string) error {
	for i := range m.notifications {
		n := &m.notifications[i]
		if !n.Deleted && n.VolunteerID == volunteerID && n.EventID == eventID {
			n.Deleted = true
		}
	}
	return nil
}

func (m *mockStore) AddHistory(ctx context.Context, entry *model.HistoryEntry) error {
	m.historySeq++
	entry.ID = m.historySeq
	m.history = append(m.history, *entry)
	return nil
}

func (m *mockStore) History(ctx context.Context) ([]model.HistoryEntry, error) {
	return m.history, nil
}

func (m *mockStore) HistoryFor(ctx context.Context, volunteerID string) ([]model.HistoryEntry, error) {
	var out []model.HistoryEntry
	for _, h := range m.history {
		if h.VolunteerID == volunteerID {
			out = append(out, h)
		}
	}
	return out, nil
}

// mockNotifier records NotifyAssigned calls
type mockNotifier struct {
	notified []string
	err      error
}

func (m *mockNotifier) NotifyAssigned(ctx context.Context, volunteerID string, event *model.Event) error {
	if m.err != nil {
		return m.err
	}
	m.notified = append(m.notified, volunteerID)
	return nil
}
