package services

import (
	"sort"
	"strings"

	"TripMate/models"
	"TripMate/utils"
)

// OrderService repositions and re-times activities so the itinerary is
// schedulable: the arrival opens day 1, the departure closes the last day with
// checkout before it, and every other day is simply time-sorted. Applied once
// per itinerary, after per-day enrichment.
type OrderService struct {
	MealTimes *MealTimeService
}

func NewOrderService(mealTimes *MealTimeService) *OrderService {
	return &OrderService{MealTimes: mealTimes}
}

const (
	departureClock    = 18 * 60 // departure is pinned to 18:00
	checkoutLeadTime  = 180     // checkout sits 3h before departure
	lastDayStartClock = 9 * 60

	lunchZoneStart = 12 * 60    // 12:00
	lunchZoneEnd   = 12*60 + 90 // 13:30
)

// Normalize enforces the ordering invariants over the whole itinerary.
func (s *OrderService) Normalize(days []models.Day) []models.Day {
	for i := range days {
		switch {
		case days[i].Day == 1:
			s.normalizeArrivalDay(&days[i])
		case len(days) > 1 && i == len(days)-1:
			s.normalizeDepartureDay(&days[i])
		default:
			sortByTime(days[i].Activities)
		}
	}
	return days
}

// gapAfter is how much room an activity needs before the next one can start,
// used when the arrival-day cursor pushes activities forward.
func gapAfter(role ActivityRole) int {
	switch role {
	case RoleMeal:
		return 60
	case RoleMosque:
		return 30
	}
	return 90 // hotel check-in and everything else
}

// normalizeArrivalDay pins the arrival first and walks a forward cursor over
// the rest, pushing anything that would start before the cursor.
func (s *OrderService) normalizeArrivalDay(day *models.Day) {
	arrivalIdx := -1
	for i, a := range day.Activities {
		if ClassifyActivity(a) == RoleArrival {
			arrivalIdx = i
			break
		}
	}
	if arrivalIdx == -1 {
		sortByTime(day.Activities)
		return
	}

	arrival := day.Activities[arrivalIdx]
	rest := make([]models.Activity, 0, len(day.Activities)-1)
	rest = append(rest, day.Activities[:arrivalIdx]...)
	rest = append(rest, day.Activities[arrivalIdx+1:]...)
	sortByTime(rest)

	cursor := utils.ParseClock(arrival.Time)
	if cursor < 0 {
		cursor = 0
	}

	for i := range rest {
		t := utils.ParseClock(rest[i].Time)
		if t > cursor {
			cursor = t
			continue
		}
		cursor += gapAfter(ClassifyActivity(rest[i]))
		rest[i].Time = utils.FormatClock(cursor)
	}

	day.Activities = append([]models.Activity{arrival}, rest...)
}

// normalizeDepartureDay strips duplicate airport activities, pins the
// departure last at 18:00 with checkout three hours ahead, recomputes meal
// slots under the departure-day rules and reschedules the rest on a forward
// cursor that avoids the meal windows.
func (s *OrderService) normalizeDepartureDay(day *models.Day) {
	departureIdx := -1
	for i, a := range day.Activities {
		if ClassifyActivity(a) == RoleDeparture {
			departureIdx = i
			break
		}
	}
	if departureIdx == -1 {
		sortByTime(day.Activities)
		return
	}

	departure := day.Activities[departureIdx]
	departure.Time = utils.FormatClock(departureClock)

	// Everything airport-worded that is not the canonical departure is a
	// duplicate the generator tends to produce; drop it.
	var kept []models.Activity
	var checkout *models.Activity
	for i, a := range day.Activities {
		if i == departureIdx {
			continue
		}
		role := ClassifyActivity(a)
		if role == RoleDeparture || IsAirportRelated(a) {
			continue
		}
		if role == RoleCheckOut && checkout == nil {
			a.Time = utils.FormatClock(departureClock - checkoutLeadTime)
			checkout = &a
			continue
		}
		kept = append(kept, a)
	}

	// Meal slots under the departure-day rules. Determine sees the retimed
	// departure, so the 18:00 dinner-window skip applies.
	frame := append(append([]models.Activity{}, kept...), departure)
	times := s.MealTimes.Determine(frame)

	var nonMeals []models.Activity
	var meals []models.Activity
	for _, a := range kept {
		if ClassifyActivity(a) != RoleMeal {
			nonMeals = append(nonMeals, a)
			continue
		}
		if slot := mealSlotFor(a, times); slot != nil {
			a.Time = *slot
			meals = append(meals, a)
		}
		// A meal without a slot (late-departure dinner) is dropped; there is
		// no time to eat it.
	}

	checkoutClock := -1
	if checkout != nil {
		checkoutClock = utils.ParseClock(checkout.Time)
	}
	s.scheduleLastDay(nonMeals, times, checkoutClock)

	ordered := append(nonMeals, meals...)
	if checkout != nil {
		ordered = append(ordered, *checkout)
	}
	sortByTime(ordered)
	day.Activities = append(ordered, departure)
}

// scheduleLastDay assigns times from a 09:00 cursor, hopping over the lunch
// window and the dinner exclusion zone, and never past checkout minus 30.
func (s *OrderService) scheduleLastDay(activities []models.Activity, times MealTimes, checkoutClock int) {
	dinnerClock := -1
	if times.Dinner != nil {
		dinnerClock = utils.ParseClock(*times.Dinner)
	}

	cursor := lastDayStartClock
	for i := range activities {
		cursor = skipMealZones(cursor, dinnerClock)
		if checkoutClock >= 0 && cursor > checkoutClock-30 {
			// Out of room before checkout; whatever is left keeps its time.
			break
		}
		activities[i].Time = utils.FormatClock(cursor)
		if ClassifyActivity(activities[i]) == RoleMosque {
			cursor += 45
		} else {
			cursor += 90
		}
	}
}

// skipMealZones moves the cursor out of the lunch window (12:00-13:30) and
// the dinner zone (dinner-30 to dinner+60). A lunch skip can land inside the
// dinner zone, so loop until stable.
func skipMealZones(cursor, dinnerClock int) int {
	for {
		if cursor >= lunchZoneStart && cursor < lunchZoneEnd {
			cursor = lunchZoneEnd
			continue
		}
		if dinnerClock >= 0 && cursor >= dinnerClock-30 && cursor < dinnerClock+60 {
			cursor = dinnerClock + 60
			continue
		}
		return cursor
	}
}

// mealSlotFor picks the recomputed slot matching a meal activity. Meals
// without an explicit meal type fall back to title classification.
func mealSlotFor(a models.Activity, times MealTimes) *string {
	switch mealTypeOf(a) {
	case "breakfast":
		return times.Breakfast
	case "lunch":
		return times.Lunch
	case "dinner":
		return times.Dinner
	}
	return nil
}

func mealTypeOf(a models.Activity) string {
	if a.MealType != "" {
		return a.MealType
	}
	title := strings.ToLower(a.Title)
	for _, meal := range []string{"breakfast", "lunch", "dinner"} {
		if strings.Contains(title, meal) {
			return meal
		}
	}
	return ""
}

func sortByTime(activities []models.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return utils.ParseClock(activities[i].Time) < utils.ParseClock(activities[j].Time)
	})
}
