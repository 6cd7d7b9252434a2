package postgres

import (
	"context"
	"fmt"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// AddHistory appends a history entry and fills in its sequential ID
func (s *Store) AddHistory(ctx context.Context, entry *model.HistoryEntry) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO history (volunteer_id, date, event, hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, entry.VolunteerID, entry.Date, entry.Event, entry.Hours).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

// History retrieves all history entries in insertion order
func (s *Store) History(ctx context.Context) ([]model.HistoryEntry, error) {
	return s.queryHistory(ctx, `
		SELECT id, volunteer_id, date, event, hours FROM history ORDER BY id
	`)
}

// HistoryFor retrieves one volunteer's history entries
func (s *Store) HistoryFor(ctx context.Context, volunteerID string) ([]model.HistoryEntry, error) {
	return s.queryHistory(ctx, `
		SELECT id, volunteer_id, date, event, hours FROM history
		WHERE volunteer_id = $1 ORDER BY id
	`, volunteerID)
}

func (s *Store) queryHistory(ctx context.Context, sql string, args ...any) ([]model.HistoryEntry, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var h model.HistoryEntry
		if err := rows.Scan(&h.ID, &h.VolunteerID, &h.Date, &h.Event, &h.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}
	return entries, nil
}
