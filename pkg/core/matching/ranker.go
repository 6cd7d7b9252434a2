package matching

import (
	"sort"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

// Candidate pairs a volunteer with their score for a specific event
type Candidate struct {
	Volunteer *model.Volunteer `json:"volunteer"`
	MatchScore
}

// Ranking partitions the candidate pool for an event
type Ranking struct {
	// BestMatches are candidates that pass the available && timeOk gate,
	// sorted by score descending
	BestMatches []Candidate `json:"bestMatches"`

	// Others is the complement, populated only when requested
	Others []Candidate `json:"others"`
}

// Rank scores every volunteer against the event and partitions them.
// Volunteers with an active assignment to the event (their IDs in
// assignedIDs) are excluded from both lists; they are shown separately as
// assigned. Others is filled only when includeUnavailable is set.
//
// Both lists are sorted by score descending with a stable sort, so ties
// keep the input order. The ranking is recomputed in full on every call;
// the pool is tens of volunteers, not thousands.
func Rank(e *model.Event, volunteers []model.Volunteer, assignedIDs map[string]bool, includeUnavailable bool) Ranking {
	var best, others []Candidate

	for i := range volunteers {
		v := &volunteers[i]
		if assignedIDs[v.ID] {
			continue
		}

		score := Score(v, e)
		c := Candidate{Volunteer: v, MatchScore: score}

		if score.Available && score.TimeOK {
			best = append(best, c)
		} else if includeUnavailable {
			others = append(others, c)
		}
	}

	sort.SliceStable(best, func(i, j int) bool { return best[i].Score > best[j].Score })
	sort.SliceStable(others, func(i, j int) bool { return others[i].Score > others[j].Score })

	return Ranking{BestMatches: best, Others: others}
}
