package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/matching"
	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

// ErrEventNotFound is returned when a referenced event does not resolve
var ErrEventNotFound = errors.New("event-not-found")

// MatchStore is the store surface needed to rank candidates for an event
type MatchStore interface {
	Event(ctx context.Context, id string) (*model.Event, error)
	Volunteers(ctx context.Context) ([]model.Volunteer, error)
	Assignments(ctx context.Context, eventID string) ([]model.Assignment, error)
}

// MatchResult is the ranked candidate pool for an event
type MatchResult struct {
	Event    *model.Event
	Ranking  matching.Ranking
	Assigned []model.Volunteer
}

// MatchCandidates ranks all volunteers against the event. Staff accounts
// and soft-deleted events are excluded; volunteers already assigned to the
// event appear only in the Assigned list. A temporarily empty store ranks
// as zero candidates rather than failing the caller.
func MatchCandidates(ctx context.Context, database MatchStore, logger *zap.Logger, eventID string, includeUnavailable bool) (*MatchResult, error) {
	event, err := database.Event(ctx, eventID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	// Staff accounts never appear in the candidate pool
	pool := make([]model.Volunteer, 0, len(volunteers))
	for _, v := range volunteers {
		if !v.IsAdmin {
			pool = append(pool, v)
		}
	}

	assignments, err := database.Assignments(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	assignedIDs := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		assignedIDs[a.VolunteerID] = true
	}

	var assigned []model.Volunteer
	for _, v := range pool {
		if assignedIDs[v.ID] {
			assigned = append(assigned, v)
		}
	}

	ranking := matching.Rank(event, pool, assignedIDs, includeUnavailable)

	logger.Debug("Ranked candidates for event",
		zap.String("event_id", eventID),
		zap.Int("pool", len(pool)),
		zap.Int("best_matches", len(ranking.BestMatches)),
		zap.Int("others", len(ranking.Others)),
		zap.Int("assigned", len(assigned)))

	return &MatchResult{Event: event, Ranking: ranking, Assigned: assigned}, nil
}

// Candidates returns the volunteers sharing at least one required skill
// with the event. This is the legacy skill-overlap-only query kept for
// compatibility with existing callers; it applies no availability or time
// scoring.
func Candidates(ctx context.Context, database MatchStore, eventID string) ([]model.Volunteer, error) {
	event, err := database.Event(ctx, eventID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	volunteers, err := database.Volunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	need := make(map[string]bool, len(event.RequiredSkills))
	for _, s := range event.RequiredSkills {
		need[s] = true
	}

	var candidates []model.Volunteer
	for _, v := range volunteers {
		if v.IsAdmin {
			continue
		}
		for _, s := range v.Skills {
			if need[s] {
				candidates = append(candidates, v)
				break
			}
		}
	}
	return candidates, nil
}
