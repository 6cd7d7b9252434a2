package model

import "time"

// Urgency is an event's staffing-priority level
type Urgency string

const (
	UrgencyLow      Urgency = "Low"
	UrgencyMedium   Urgency = "Medium"
	UrgencyHigh     Urgency = "High"
	UrgencyCritical Urgency = "Critical"
)

// UrgencyLevels lists the valid urgency values in ascending severity
var UrgencyLevels = []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

// TimesOfDay lists the coarse daypart tags used both as an event attribute
// and as a volunteer preference
var TimesOfDay = []string{"Morning", "Afternoon", "Evening"}

// Weekdays lists weekday names in time.Weekday order (Sunday first)
var Weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Skills is the canonical skill-tag list offered by the profile and event forms
var Skills = []string{
	"Dog Walking",
	"Cat Care",
	"Small Animal Handling",
	"Animal Grooming",
	"Cleaning & Sanitation",
	"Feeding",
	"Laundry & Bedding Maintenance",
	"Facility Upkeep",
	"Photography & Social Media",
	"Fundraising & Donations Management",
	"Administrative / Clerical Skills",
	"First Aid",
	"Customer Service",
	"Teamwork",
}

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// WeekAvailability is the canonical availability representation:
// weekday name -> time-of-day tag -> available.
// Matching is done on the weekday name, not the calendar date, so a
// volunteer marked available "Monday Morning" is available for every
// event falling on any Monday morning.
type WeekAvailability map[string]map[string]bool

// Volunteer is a person who has completed a volunteer profile
type Volunteer struct {
	ID             string           `json:"id" bson:"_id,omitempty" yaml:"id"`
	Name           string           `json:"name" bson:"name" validate:"required"`
	Email          string           `json:"email,omitempty" bson:"email,omitempty"`
	Location       string           `json:"location,omitempty" bson:"location,omitempty" validate:"required"`
	Skills         []string         `json:"skills" bson:"skills" validate:"min=1"`
	Availability   WeekAvailability `json:"availability,omitempty" bson:"availability,omitempty"`
	PreferredTimes []string         `json:"preferredTimes,omitempty" bson:"preferred_times,omitempty"`
	IsAdmin        bool             `json:"isAdmin" bson:"is_admin"`

	// LegacyAvailableDates holds the flat ISO-date-list availability used by
	// older profiles. It is migrated to Availability by NormalizeVolunteer
	// and never written back.
	LegacyAvailableDates []string `json:"availableDates,omitempty" bson:"available_dates,omitempty"`
}

// Event is a staffing need created by an administrator
type Event struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	SeriesID       string    `json:"seriesId,omitempty" bson:"series_id,omitempty"`
	Name           string    `json:"name" bson:"name" validate:"required"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Location       string    `json:"location" bson:"location" validate:"required"`
	RequiredSkills []string  `json:"requiredSkills" bson:"required_skills"`
	Urgency        Urgency   `json:"urgency" bson:"urgency" validate:"required"`
	Date           string    `json:"date" bson:"date" validate:"required"`
	TimeOfDay      string    `json:"timeOfDay,omitempty" bson:"time_of_day,omitempty"`
	Capacity       *int      `json:"capacity,omitempty" bson:"capacity,omitempty"`
	Deleted        bool      `json:"deleted,omitempty" bson:"deleted"`
	CreatedAt      time.Time `json:"createdAt,omitempty" bson:"created_at,omitempty"`
}

// Assignment links one volunteer to one event. At most one active
// assignment exists per (volunteer, event) pair; unassigning soft-deletes
// the record rather than removing it, preserving history.
type Assignment struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	VolunteerID string    `json:"volunteerId" bson:"volunteer_id"`
	EventID     string    `json:"eventId" bson:"event_id"`
	Hours       float64   `json:"hours,omitempty" bson:"hours,omitempty"`
	Deleted     bool      `json:"deleted,omitempty" bson:"deleted"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"created_at,omitempty"`
}

// Notification is written to a volunteer's feed when they are assigned to
// an event, and soft-deleted when they are unassigned
type Notification struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	VolunteerID   string    `json:"volunteerId" bson:"volunteer_id"`
	EventID       string    `json:"eventId" bson:"event_id"`
	Message       string    `json:"message" bson:"message"`
	AudienceRoles []string  `json:"audienceRoles,omitempty" bson:"audience_roles,omitempty"`
	Deleted       bool      `json:"deleted,omitempty" bson:"deleted"`
	CreatedAt     time.Time `json:"createdAt,omitempty" bson:"created_at,omitempty"`
}

// HistoryEntry records hours a volunteer contributed to an event
type HistoryEntry struct {
	ID          int64   `json:"id" bson:"_id,omitempty"`
	VolunteerID string  `json:"volunteerId,omitempty" bson:"volunteer_id,omitempty"`
	Date        string  `json:"date" bson:"date" validate:"required"`
	Event       string  `json:"event" bson:"event" validate:"required,max=100"`
	Hours       float64 `json:"hours" bson:"hours" validate:"required,gt=0"`
}

// ValidUrgency reports whether u is one of the enumerated urgency levels
func ValidUrgency(u Urgency) bool {
	for _, level := range UrgencyLevels {
		if u == level {
			return true
		}
	}
	return false
}
