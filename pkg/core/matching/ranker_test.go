package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawsitive-rescue/volunteer-match/pkg/core/model"
)

func rankFixture() (*model.Event, []model.Volunteer) {
	e := &model.Event{
		ID:             "evt-1",
		Name:           "Adoption Event",
		RequiredSkills: []string{"Dog Walking", "Animal Grooming"},
		Urgency:        model.UrgencyHigh,
		Date:           "2025-10-13", // Monday
		TimeOfDay:      "Morning",
	}
	volunteers := []model.Volunteer{
		{
			ID:           "vol-full",
			Name:         "Full Match",
			Skills:       []string{"Dog Walking", "Animal Grooming"},
			Availability: model.WeekAvailability{"Monday": {"Morning": true}},
		},
		{
			ID:           "vol-partial",
			Name:         "Partial Match",
			Skills:       []string{"Dog Walking"},
			Availability: model.WeekAvailability{"Monday": {"Morning": true}},
		},
		{
			ID:           "vol-busy",
			Name:         "Wrong Day",
			Skills:       []string{"Dog Walking", "Animal Grooming"},
			Availability: model.WeekAvailability{"Tuesday": {"Morning": true}},
		},
	}
	return e, volunteers
}

func TestRank_PartitionAndOrder(t *testing.T) {
	e, volunteers := rankFixture()

	ranking := Rank(e, volunteers, nil, true)

	require.Len(t, ranking.BestMatches, 2)
	assert.Equal(t, "vol-full", ranking.BestMatches[0].Volunteer.ID)
	assert.Equal(t, "vol-partial", ranking.BestMatches[1].Volunteer.ID)
	assert.Greater(t, ranking.BestMatches[0].Score, ranking.BestMatches[1].Score)

	require.Len(t, ranking.Others, 1)
	assert.Equal(t, "vol-busy", ranking.Others[0].Volunteer.ID)
}

func TestRank_OthersHiddenByDefault(t *testing.T) {
	e, volunteers := rankFixture()

	ranking := Rank(e, volunteers, nil, false)

	assert.Len(t, ranking.BestMatches, 2)
	assert.Empty(t, ranking.Others)
}

func TestRank_ExcludesAssigned(t *testing.T) {
	e, volunteers := rankFixture()
	assigned := map[string]bool{"vol-full": true}

	ranking := Rank(e, volunteers, assigned, true)

	require.Len(t, ranking.BestMatches, 1)
	assert.Equal(t, "vol-partial", ranking.BestMatches[0].Volunteer.ID)
	for _, c := range ranking.Others {
		assert.NotEqual(t, "vol-full", c.Volunteer.ID)
	}
}

func TestRank_StableTieBreak(t *testing.T) {
	e := &model.Event{
		ID:      "evt-tie",
		Name:    "Open Day",
		Urgency: model.UrgencyLow,
		Date:    "2025-10-13",
	}
	volunteers := []model.Volunteer{
		{ID: "vol-a", Name: "A", Availability: model.WeekAvailability{"Monday": {"Morning": true}}},
		{ID: "vol-b", Name: "B", Availability: model.WeekAvailability{"Monday": {"Morning": true}}},
		{ID: "vol-c", Name: "C", Availability: model.WeekAvailability{"Monday": {"Morning": true}}},
	}

	ranking := Rank(e, volunteers, nil, false)

	// Equal scores keep input order
	require.Len(t, ranking.BestMatches, 3)
	assert.Equal(t, "vol-a", ranking.BestMatches[0].Volunteer.ID)
	assert.Equal(t, "vol-b", ranking.BestMatches[1].Volunteer.ID)
	assert.Equal(t, "vol-c", ranking.BestMatches[2].Volunteer.ID)
}

func TestRank_EmptyPool(t *testing.T) {
	e, _ := rankFixture()

	ranking := Rank(e, nil, nil, true)

	assert.Empty(t, ranking.BestMatches)
	assert.Empty(t, ranking.Others)
}
