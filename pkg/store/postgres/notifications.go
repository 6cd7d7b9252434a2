package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// CreateNotification inserts a notification record
func (s *Store) CreateNotification(ctx context.Context, n *model.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO notification (id, volunteer_id, event_id, message, audience_roles, deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
	`, n.ID, n.VolunteerID, n.EventID, n.Message, n.AudienceRoles, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// NotificationsFor retrieves a volunteer's active notifications, newest first
func (s *Store) NotificationsFor(ctx context.Context, volunteerID string) ([]model.Notification, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, volunteer_id, event_id, message, audience_roles, deleted, created_at
		FROM notification
		WHERE volunteer_id = $1 AND NOT deleted
		ORDER BY created_at DESC
	`, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.VolunteerID, &n.EventID, &n.Message, &n.AudienceRoles, &n.Deleted, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return notifications, nil
}

// SoftDeleteNotification marks active notifications for the pair deleted
func (s *Store) SoftDeleteNotification(ctx context.Context, volunteerID, eventID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE notification SET deleted = TRUE
		WHERE volunteer_id = $1 AND event_id = $2 AND NOT deleted
	`, volunteerID, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
