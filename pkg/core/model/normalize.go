package model

import "time"

// NormalizeVolunteer brings a volunteer record into canonical form.
// Nil collections become empty ones so downstream code never branches on
// nil, and legacy flat date-list availability is migrated into the weekday
// map representation. Normalization is applied on every read path so that
// the matching engine only ever sees the canonical form.
func NormalizeVolunteer(v *Volunteer) {
	if v.Skills == nil {
		v.Skills = []string{}
	}
	if v.PreferredTimes == nil {
		v.PreferredTimes = []string{}
	}
	if v.Availability == nil {
		v.Availability = WeekAvailability{}
	}
	if len(v.LegacyAvailableDates) > 0 {
		migrateLegacyDates(v)
	}
}

// migrateLegacyDates converts a flat list of free dates into the weekday
// map. Each listed date marks its weekday available for every time of day;
// the date-list form never carried time-of-day information, so all slots
// are opened. Unparseable dates are skipped. The legacy list is cleared
// afterwards so it is never persisted again.
func migrateLegacyDates(v *Volunteer) {
	for _, raw := range v.LegacyAvailableDates {
		date, err := time.Parse(DateLayout, raw)
		if err != nil {
			continue
		}
		day := date.UTC().Weekday().String()
		if v.Availability[day] == nil {
			v.Availability[day] = make(map[string]bool, len(TimesOfDay))
		}
		for _, tod := range TimesOfDay {
			v.Availability[day][tod] = true
		}
	}
	v.LegacyAvailableDates = nil
}
