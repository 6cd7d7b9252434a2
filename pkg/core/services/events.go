package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

// maxSeriesOccurrences caps how many events a recurrence rule may expand
// into in one create
const maxSeriesOccurrences = 26

var validate = validator.New()

// EventStore is the store surface needed for event management
type EventStore interface {
	Events(ctx context.Context) ([]model.Event, error)
	Event(ctx context.Context, id string) (*model.Event, error)
	CreateEvent(ctx context.Context, e *model.Event) error
	UpdateEvent(ctx context.Context, e *model.Event) error
	SoftDeleteEvent(ctx context.Context, id string) error
}

// CreateEventInput carries the event form fields. Recurrence, when set,
// expands the create into a series of dated events sharing a SeriesID.
type CreateEventInput struct {
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	Location       string   `json:"location" validate:"required"`
	RequiredSkills []string `json:"requiredSkills"`
	Urgency        string   `json:"urgency" validate:"required"`
	Date           string   `json:"date" validate:"required"`
	TimeOfDay      string   `json:"timeOfDay"`
	Capacity       *int     `json:"capacity" validate:"omitempty,min=1"`
	Recurrence     string   `json:"recurrence"`
}

// CreateEvent validates the input and creates one event, or a whole
// series when a recurrence rule is given
func CreateEvent(ctx context.Context, database EventStore, logger *zap.Logger, input CreateEventInput) ([]model.Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("event validation failed: %w", err)
	}
	if !model.ValidUrgency(model.Urgency(input.Urgency)) {
		return nil, fmt.Errorf("invalid urgency %q", input.Urgency)
	}
	startDate, err := time.Parse(model.DateLayout, input.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid event date %q: %w", input.Date, err)
	}

	dates := []time.Time{startDate}
	seriesID := ""
	if input.Recurrence != "" {
		rule, err := rrule.StrToRRule(input.Recurrence)
		if err != nil {
			return nil, fmt.Errorf("invalid recurrence rule: %w", err)
		}
		rule.DTStart(startDate.UTC())
		occurrences := rule.All()
		if len(occurrences) == 0 {
			return nil, fmt.Errorf("recurrence rule produces no occurrences")
		}
		if len(occurrences) > maxSeriesOccurrences {
			occurrences = occurrences[:maxSeriesOccurrences]
		}
		dates = occurrences
		seriesID = uuid.New().String()
	}

	events := make([]model.Event, 0, len(dates))
	for _, date := range dates {
		e := model.Event{
			ID:             uuid.New().String(),
			SeriesID:       seriesID,
			Name:           input.Name,
			Description:    input.Description,
			Location:       input.Location,
			RequiredSkills: input.RequiredSkills,
			Urgency:        model.Urgency(input.Urgency),
			Date:           date.Format(model.DateLayout),
			TimeOfDay:      input.TimeOfDay,
			Capacity:       input.Capacity,
		}
		if err := database.CreateEvent(ctx, &e); err != nil {
			return nil, fmt.Errorf("failed to create event: %w", err)
		}
		events = append(events, e)
	}

	logger.Info("Created events",
		zap.Int("count", len(events)),
		zap.String("name", input.Name),
		zap.String("series_id", seriesID))
	return events, nil
}

// UpdateEvent applies the form fields to an existing event
func UpdateEvent(ctx context.Context, database EventStore, logger *zap.Logger, id string, input CreateEventInput) (*model.Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("event validation failed: %w", err)
	}
	if !model.ValidUrgency(model.Urgency(input.Urgency)) {
		return nil, fmt.Errorf("invalid urgency %q", input.Urgency)
	}

	event, err := database.Event(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	event.Name = input.Name
	event.Description = input.Description
	event.Location = input.Location
	event.RequiredSkills = input.RequiredSkills
	event.Urgency = model.Urgency(input.Urgency)
	event.Date = input.Date
	event.TimeOfDay = input.TimeOfDay
	event.Capacity = input.Capacity

	if err := database.UpdateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	logger.Info("Updated event", zap.String("event_id", id))
	return event, nil
}

// DeleteEvent soft-deletes the event; historical assignments stay
// resolvable
func DeleteEvent(ctx context.Context, database EventStore, logger *zap.Logger, id string) error {
	err := database.SoftDeleteEvent(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	logger.Info("Deleted event", zap.String("event_id", id))
	return nil
}

// ListEvents returns all active events
func ListEvents(ctx context.Context, database EventStore) ([]model.Event, error) {
	events, err := database.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}
