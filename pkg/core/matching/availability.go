package matching

import (
	"strings"
	"time"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// IsAvailable reports whether the volunteer is available for the event.
//
// Availability is resolved against the weekday map: the event date's
// weekday name is looked up, then the event's time of day within it
// (case-insensitively). An event with no time of day counts as available
// if any slot that day is open. Missing or malformed data resolves to
// not available.
//
// Matching on the weekday name rather than the literal date means a
// volunteer's availability recurs weekly: "Monday Morning" covers every
// event that falls on any Monday morning.
func IsAvailable(v *model.Volunteer, e *model.Event) bool {
	if v.Availability == nil {
		return false
	}

	date, err := time.Parse(model.DateLayout, e.Date)
	if err != nil {
		return false
	}
	// Weekday from the parsed calendar date, in UTC. Splitting the raw
	// string or parsing in a local zone shifts the weekday near midnight.
	day := date.UTC().Weekday().String()

	slots, ok := v.Availability[day]
	if !ok || len(slots) == 0 {
		return false
	}

	if e.TimeOfDay == "" {
		for _, open := range slots {
			if open {
				return true
			}
		}
		return false
	}

	for tod, open := range slots {
		if strings.EqualFold(tod, e.TimeOfDay) {
			return open
		}
	}
	return false
}
