package memory

import "github.com/pawsitive-rescue/volunteer-match/pkg/core/model"

// State is a serializable snapshot of the whole store. The file-backed
// store persists it as a single JSON blob, mirroring how the original
// local store kept everything under one key.
type State struct {
	Events        []model.Event        `json:"events"`
	Volunteers    []model.Volunteer    `json:"volunteers"`
	Assignments   []model.Assignment   `json:"assignments"`
	Notifications []model.Notification `json:"notifications"`
	History       []model.HistoryEntry `json:"history"`
	HistorySeq    int64                `json:"historySeq"`
}

// Snapshot copies the current store contents
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := State{
		Events:        make([]model.Event, len(s.events)),
		Volunteers:    make([]model.Volunteer, len(s.volunteers)),
		Assignments:   make([]model.Assignment, len(s.assignments)),
		Notifications: make([]model.Notification, len(s.notifications)),
		History:       make([]model.HistoryEntry, len(s.history)),
		HistorySeq:    s.historySeq,
	}
	copy(st.Events, s.events)
	copy(st.Volunteers, s.volunteers)
	copy(st.Assignments, s.assignments)
	copy(st.Notifications, s.notifications)
	copy(st.History, s.history)
	return st
}

// Restore replaces the store contents with a snapshot. Volunteers are
// normalized here because persisted blobs may predate the weekday-map
// availability form; stored records must never keep the legacy date list,
// or reads would have to migrate it on the fly.
func (s *Store) Restore(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = st.Events
	s.volunteers = st.Volunteers
	for i := range s.volunteers {
		model.NormalizeVolunteer(&s.volunteers[i])
	}
	s.assignments = st.Assignments
	s.notifications = st.Notifications
	s.history = st.History
	s.historySeq = st.HistorySeq
	if s.historySeq < 1 {
		// Recover the sequence from the last entry, matching how the
		// original backfilled a missing counter
		var last int64
		for _, h := range s.history {
			if h.ID > last {
				last = h.ID
			}
		}
		s.historySeq = last + 1
	}
}
