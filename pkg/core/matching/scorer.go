package matching

import (
	"math"
	"strings"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// Score weights. Hard availability dominates the ranking, the soft time
// preference is secondary, and skill fit acts as a tertiary tie-breaker.
// The UI additionally uses available && timeOk as a hard partition gate,
// so the ordering of these three contributions must hold.
const (
	availableWeight = 100
	timeOkWeight    = 50
	overlapWeight   = 10
)

// MatchScore is the scored evaluation of one (volunteer, event) pair
type MatchScore struct {
	Available  bool    `json:"available"`
	TimeOK     bool    `json:"timeOk"`
	Overlap    int     `json:"overlap"`
	OverlapPct float64 `json:"overlapPct"`
	Score      int     `json:"score"`
}

// Score evaluates a volunteer against an event
func Score(v *model.Volunteer, e *model.Event) MatchScore {
	overlap := skillOverlap(v.Skills, e.RequiredSkills)

	// Vacuously a full match when the event requires no skills
	overlapPct := 1.0
	if len(e.RequiredSkills) > 0 {
		overlapPct = float64(overlap) / float64(len(e.RequiredSkills))
	}

	available := IsAvailable(v, e)
	timeOk := timeOK(v, e)

	score := int(math.Round(overlapPct * overlapWeight))
	if available {
		score += availableWeight
	}
	if timeOk {
		score += timeOkWeight
	}

	return MatchScore{
		Available:  available,
		TimeOK:     timeOk,
		Overlap:    overlap,
		OverlapPct: overlapPct,
		Score:      score,
	}
}

// timeOK reports whether the event's time of day is acceptable to the
// volunteer. True when the event has no time of day, when the volunteer
// has no stated preference, or when the preference set contains it.
func timeOK(v *model.Volunteer, e *model.Event) bool {
	if e.TimeOfDay == "" || len(v.PreferredTimes) == 0 {
		return true
	}
	for _, pref := range v.PreferredTimes {
		if strings.EqualFold(pref, e.TimeOfDay) {
			return true
		}
	}
	return false
}

// skillOverlap counts the required skills the volunteer possesses.
// Skills are compared as sets; order is irrelevant.
func skillOverlap(skills, required []string) int {
	if len(skills) == 0 || len(required) == 0 {
		return 0
	}
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[s] = true
	}
	overlap := 0
	for _, s := range required {
		if have[s] {
			overlap++
		}
	}
	return overlap
}
