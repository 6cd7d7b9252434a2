package model

// SeedEvents and SeedVolunteers provide the initial records loaded into an
// empty store when seeding is enabled. Kept deliberately small: they exist
// so a fresh local environment has something to match against.

var SeedEvents = []Event{
	{
		ID:             "evt-1",
		Name:           "Adoption Event - Midtown",
		Description:    "Help handle animals and meet adopters.",
		Location:       "123 Midtown Ave",
		RequiredSkills: []string{"Dog Walking"},
		Urgency:        UrgencyMedium,
		Date:           "2025-10-12",
	},
}

var SeedVolunteers = []Volunteer{
	{
		ID:                   "vol-1",
		Name:                 "Alex Kim",
		Location:             "Midtown",
		Skills:               []string{"Dog Walking", "Feeding"},
		LegacyAvailableDates: []string{"2025-10-12", "2025-10-19"},
	},
}
