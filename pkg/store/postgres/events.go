package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

const eventColumns = `id, COALESCE(series_id, ''), name, description, location,
	required_skills, urgency, date, COALESCE(time_of_day, ''), capacity, deleted, created_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	var urgency string
	if err := row.Scan(&e.ID, &e.SeriesID, &e.Name, &e.Description, &e.Location,
		&e.RequiredSkills, &urgency, &e.Date, &e.TimeOfDay, &e.Capacity, &e.Deleted, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Urgency = model.Urgency(urgency)
	return &e, nil
}

// Events retrieves all non-deleted events
func (s *Store) Events(ctx context.Context) ([]model.Event, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM event
		WHERE NOT deleted
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

// Event retrieves one non-deleted event by ID
func (s *Store) Event(ctx context.Context, id string) (*model.Event, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM event
		WHERE id = $1 AND NOT deleted
	`, id)

	e, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}
	return e, nil
}

// CreateEvent inserts a new event record
func (s *Store) CreateEvent(ctx context.Context, e *model.Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO event (id, series_id, name, description, location, required_skills,
			urgency, date, time_of_day, capacity, deleted, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12)
	`, e.ID, e.SeriesID, e.Name, e.Description, e.Location, e.RequiredSkills,
		string(e.Urgency), e.Date, e.TimeOfDay, e.Capacity, e.Deleted, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// UpdateEvent replaces an event record
func (s *Store) UpdateEvent(ctx context.Context, e *model.Event) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE event
		SET name = $2, description = $3, location = $4, required_skills = $5,
			urgency = $6, date = $7, time_of_day = NULLIF($8, ''), capacity = $9
		WHERE id = $1
	`, e.ID, e.Name, e.Description, e.Location, e.RequiredSkills,
		string(e.Urgency), e.Date, e.TimeOfDay, e.Capacity)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// SoftDeleteEvent marks the event deleted and cascades the soft delete to
// its active assignments, in one transaction
func (s *Store) SoftDeleteEvent(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE event SET deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `UPDATE assignment SET deleted = TRUE WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event assignments: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
