package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// ProfileStore is the store surface needed for volunteer profiles
type ProfileStore interface {
	Volunteers(ctx context.Context) ([]model.Volunteer, error)
	SaveVolunteer(ctx context.Context, v *model.Volunteer) error
}

// SaveProfile validates and persists a volunteer profile. A profile needs
// a name, a location, and at least one skill; everything else defaults to
// the safest empty value. The record is normalized before the write, so
// any legacy date-list availability is migrated here.
func SaveProfile(ctx context.Context, database ProfileStore, logger *zap.Logger, v *model.Volunteer) error {
	model.NormalizeVolunteer(v)
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if v.ID == "" {
		v.ID = uuid.New().String()
	}

	if err := database.SaveVolunteer(ctx, v); err != nil {
		return fmt.Errorf("failed to save volunteer: %w", err)
	}

	logger.Info("Saved volunteer profile", zap.String("volunteer_id", v.ID), zap.String("name", v.Name))
	return nil
}

// ListVolunteers returns all non-staff volunteers, normalized
func ListVolunteers(ctx context.Context, database ProfileStore) ([]model.Volunteer, error) {
	all, err := database.Volunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	volunteers := make([]model.Volunteer, 0, len(all))
	for _, v := range all {
		if !v.IsAdmin {
			volunteers = append(volunteers, v)
		}
	}
	return volunteers, nil
}
