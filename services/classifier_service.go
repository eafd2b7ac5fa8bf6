package services

import (
	"strings"

	"TripMate/models"
)

// ActivityRole is the single classification of an activity used by meal
// scheduling and order enforcement.
type ActivityRole int

const (
	RoleOther ActivityRole = iota
	RoleArrival
	RoleDeparture
	RoleCheckIn
	RoleCheckOut
	RoleMeal
	RoleMosque
)

func (r ActivityRole) String() string {
	switch r {
	case RoleArrival:
		return "arrival"
	case RoleDeparture:
		return "departure"
	case RoleCheckIn:
		return "check-in"
	case RoleCheckOut:
		return "check-out"
	case RoleMeal:
		return "meal"
	case RoleMosque:
		return "mosque"
	}
	return "other"
}

// ClassifyActivity resolves every title/type heuristic in one place.
//
// Precedence, highest first: Departure > Arrival > CheckOut > CheckIn > Meal >
// Mosque > Other. "Transfer to hotel" used to hit both the arrival and the
// check-in heuristics in different call sites; it is canonically an Arrival
// here (the airport-to-hotel leg of arrival day). Check-in requires an
// explicit "check in" wording or a checkin type. Never fails: anything
// unmatched is RoleOther.
func ClassifyActivity(a models.Activity) ActivityRole {
	title := strings.ToLower(a.Title)
	typ := strings.ToLower(a.Type)

	switch {
	case typ == "departure" ||
		strings.Contains(title, "depart") ||
		strings.Contains(title, "fly home") ||
		strings.Contains(title, "return flight"):
		return RoleDeparture

	case typ == "arrival" ||
		strings.Contains(title, "arriv") ||
		strings.Contains(title, "land at") ||
		strings.Contains(title, "transfer to hotel"):
		return RoleArrival

	case typ == "checkout" ||
		strings.Contains(title, "check out") ||
		strings.Contains(title, "check-out") ||
		strings.Contains(title, "checkout"):
		return RoleCheckOut

	case typ == "checkin" ||
		strings.Contains(title, "check in") ||
		strings.Contains(title, "check-in") ||
		strings.Contains(title, "checkin"):
		return RoleCheckIn

	case typ == "meal" || a.MealType != "" ||
		strings.Contains(title, "breakfast") ||
		strings.Contains(title, "lunch") ||
		strings.Contains(title, "dinner"):
		return RoleMeal

	case typ == "mosque" ||
		strings.Contains(title, "mosque") ||
		strings.Contains(title, "masjid") ||
		strings.Contains(title, "prayer"):
		return RoleMosque
	}

	return RoleOther
}

// IsAirportRelated reports whether an activity looks like a duplicate of the
// canonical departure (airport transfers and the like on the last day).
func IsAirportRelated(a models.Activity) bool {
	title := strings.ToLower(a.Title)
	return strings.Contains(title, "airport") ||
		strings.Contains(title, "transfer") ||
		strings.Contains(title, "travel to airport")
}
