package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// HistoryLogStore is the store surface needed for volunteer history
type HistoryLogStore interface {
	AddHistory(ctx context.Context, entry *model.HistoryEntry) error
	History(ctx context.Context) ([]model.HistoryEntry, error)
	HistoryFor(ctx context.Context, volunteerID string) ([]model.HistoryEntry, error)
}

// AddHistoryEntry validates and appends a history entry. Date, event name
// and positive hours are required; the volunteer ID is optional for
// backward compatibility with older callers.
func AddHistoryEntry(ctx context.Context, database HistoryLogStore, logger *zap.Logger, entry *model.HistoryEntry) error {
	if err := validate.Struct(entry); err != nil {
		return fmt.Errorf("history validation failed: %w", err)
	}
	if err := database.AddHistory(ctx, entry); err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}
	logger.Debug("Added history entry",
		zap.Int64("id", entry.ID),
		zap.String("volunteer_id", entry.VolunteerID),
		zap.String("event", entry.Event))
	return nil
}

// ListHistory returns all history entries
func ListHistory(ctx context.Context, database HistoryLogStore) ([]model.HistoryEntry, error) {
	entries, err := database.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	return entries, nil
}

// HistoryForVolunteer returns one volunteer's history entries
func HistoryForVolunteer(ctx context.Context, database HistoryLogStore, volunteerID string) ([]model.HistoryEntry, error) {
	entries, err := database.HistoryFor(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	return entries, nil
}
