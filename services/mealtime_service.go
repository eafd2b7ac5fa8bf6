package services

import (
	"sort"

	"TripMate/models"
	"TripMate/utils"
)

// MealTimes holds the candidate clock-times for one day. A nil slot means the
// meal is skipped for that day.
type MealTimes struct {
	Breakfast *string
	Lunch     *string
	Dinner    *string
}

// MealTimeService computes candidate breakfast/lunch/dinner times for a day
// from its existing non-meal activities. Determine is a pure function.
type MealTimeService struct{}

func NewMealTimeService() *MealTimeService {
	return &MealTimeService{}
}

const (
	defaultBreakfast = "08:00"
	defaultLunch     = "12:30"
	defaultDinner    = "19:00"

	lunchWindowStart = 11 * 60 // 11:00
	lunchWindowEnd   = 14 * 60 // 14:00
)

// activityDuration estimates how long an activity occupies, in minutes. Used
// where a rule needs an activity's end rather than its start.
func activityDuration(role ActivityRole) int {
	switch role {
	case RoleMosque:
		return 45
	case RoleMeal:
		return 60
	}
	return 90
}

// Determine computes the meal slots for one day's activities.
func (s *MealTimeService) Determine(dayActivities []models.Activity) MealTimes {
	activities := schedulable(dayActivities)

	if len(activities) == 0 {
		return MealTimes{
			Breakfast: clockPtr(defaultBreakfast),
			Lunch:     clockPtr(defaultLunch),
			Dinner:    clockPtr(defaultDinner),
		}
	}

	first := activities[0]
	last := activities[len(activities)-1]
	firstRole := ClassifyActivity(first)
	lastRole := ClassifyActivity(last)
	firstStart := utils.ParseClock(first.Time)
	lastStart := utils.ParseClock(last.Time)

	var times MealTimes

	// Breakfast: none on arrival days; otherwise only when the day starts
	// late enough to fit one.
	if firstRole != RoleArrival {
		switch {
		case firstStart >= 9*60:
			times.Breakfast = clockPtr(defaultBreakfast)
		case firstStart >= 8*60:
			times.Breakfast = clockPtr(utils.FormatClock(firstStart - 30))
		}
	}

	// Departure days use fixed slots; the gap search below does not apply.
	if lastRole == RoleDeparture {
		times.Lunch = clockPtr("14:00")
		switch {
		case lastStart <= 14*60:
			// Too early a departure for dinner.
		case lastStart >= 18*60 && lastStart < 20*60:
			// Departure eats the dinner window.
		default:
			times.Dinner = clockPtr(defaultDinner)
		}
		return times
	}

	times.Lunch = clockPtr(s.lunchSlot(activities))
	times.Dinner = clockPtr(s.dinnerSlot(last, lastRole))

	return times
}

// lunchSlot looks for room between consecutive activities. A gap covering the
// whole 11:00-14:00 window keeps the default; otherwise the first gap that
// overlaps the window with at least an hour of room gets lunch at its
// midpoint.
func (s *MealTimeService) lunchSlot(activities []models.Activity) string {
	for i := 0; i+1 < len(activities); i++ {
		start := utils.ParseClock(activities[i].Time)
		end := utils.ParseClock(activities[i+1].Time)
		if start <= lunchWindowStart && end >= lunchWindowEnd {
			return defaultLunch
		}
	}

	for i := 0; i+1 < len(activities); i++ {
		start := utils.ParseClock(activities[i].Time)
		end := utils.ParseClock(activities[i+1].Time)
		overlaps := start < lunchWindowEnd && end > lunchWindowStart
		if overlaps && end-start >= 60 {
			return utils.FormatClock((start + end) / 2)
		}
	}

	return defaultLunch
}

func (s *MealTimeService) dinnerSlot(last models.Activity, lastRole ActivityRole) string {
	lastEnd := utils.ParseClock(last.Time) + activityDuration(lastRole)

	switch {
	case lastEnd < 18*60:
		return defaultDinner
	case lastEnd <= 20*60:
		return utils.FormatClock(lastEnd + 30)
	default:
		slot := lastEnd + 30
		if slot < 20*60+30 {
			slot = 20*60 + 30
		}
		return utils.FormatClock(slot)
	}
}

// schedulable filters out meal activities and anything without a parseable
// time, then sorts ascending. Meal slots are computed from the non-meal frame
// of the day.
func schedulable(activities []models.Activity) []models.Activity {
	var out []models.Activity
	for _, a := range activities {
		if ClassifyActivity(a) == RoleMeal {
			continue
		}
		if utils.ParseClock(a.Time) < 0 {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return utils.ParseClock(out[i].Time) < utils.ParseClock(out[j].Time)
	})
	return out
}

func clockPtr(clock string) *string {
	return &clock
}
