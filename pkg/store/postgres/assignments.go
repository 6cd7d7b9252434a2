package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// Assignments retrieves the active assignments for an event
func (s *Store) Assignments(ctx context.Context, eventID string) ([]model.Assignment, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, volunteer_id, event_id, hours, deleted, created_at
		FROM assignment
		WHERE event_id = $1 AND NOT deleted
		ORDER BY created_at
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.VolunteerID, &a.EventID, &a.Hours, &a.Deleted, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return assignments, nil
}

// IsAssigned reports whether an active assignment exists for the pair
func (s *Store) IsAssigned(ctx context.Context, volunteerID, eventID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM assignment
			WHERE volunteer_id = $1 AND event_id = $2 AND NOT deleted
		)
	`, volunteerID, eventID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return exists, nil
}

// InsertAssignment records an assignment. The partial unique index on
// active pairs plus ON CONFLICT DO NOTHING makes this idempotent, even
// against concurrent callers racing the duplicate check.
func (s *Store) InsertAssignment(ctx context.Context, a *model.Assignment) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO assignment (id, volunteer_id, event_id, hours, deleted, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)
		ON CONFLICT (volunteer_id, event_id) WHERE NOT deleted DO NOTHING
	`, a.ID, a.VolunteerID, a.EventID, a.Hours, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

// SoftDeleteAssignment marks the active assignment for the pair deleted;
// no-op when none exists
func (s *Store) SoftDeleteAssignment(ctx context.Context, volunteerID, eventID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE assignment SET deleted = TRUE
		WHERE volunteer_id = $1 AND event_id = $2 AND NOT deleted
	`, volunteerID, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// CountAssigned counts active assignments referencing the event
func (s *Store) CountAssigned(ctx context.Context, eventID string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM assignment WHERE event_id = $1 AND NOT deleted
	`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}
