package postgres

import (
	"context"
	"fmt"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// Volunteers retrieves all volunteer records, normalized
func (s *Store) Volunteers(ctx context.Context) ([]model.Volunteer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, location, skills, availability, preferred_times, is_admin
		FROM volunteer
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []model.Volunteer
	for rows.Next() {
		var v model.Volunteer
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Location, &v.Skills,
			&v.Availability, &v.PreferredTimes, &v.IsAdmin); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		model.NormalizeVolunteer(&v)
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteers: %w", err)
	}
	return volunteers, nil
}

// SaveVolunteer upserts a volunteer record. Legacy availability is
// migrated before the write, so only the weekday map is ever persisted.
func (s *Store) SaveVolunteer(ctx context.Context, v *model.Volunteer) error {
	model.NormalizeVolunteer(v)
	_, err := s.pool.Exec(ctx, `
		INSERT INTO volunteer (id, name, email, location, skills, availability, preferred_times, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, location = EXCLUDED.location,
			skills = EXCLUDED.skills, availability = EXCLUDED.availability,
			preferred_times = EXCLUDED.preferred_times, is_admin = EXCLUDED.is_admin
	`, v.ID, v.Name, v.Email, v.Location, v.Skills, v.Availability, v.PreferredTimes, v.IsAdmin)
	if err != nil {
		return fmt.Errorf("failed to save volunteer: %w", err)
	}
	return nil
}
