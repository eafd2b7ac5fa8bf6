package models

// Coordinates is a lat/lng pair as returned by the geocoder.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is one scheduled item inside a Day. It is created by the skeleton
// generator and mutated in place by each enrichment stage.
type Activity struct {
	Time              string                 `json:"time"` // HH:MM, 24h
	Title             string                 `json:"title"`
	Location          string                 `json:"location"`
	Description       string                 `json:"description,omitempty"`
	Coordinates       *Coordinates           `json:"coordinates,omitempty"`
	Type              string                 `json:"type,omitempty"`     // activity, meal, mosque, airport, hotel...
	MealType          string                 `json:"mealType,omitempty"` // breakfast, lunch, dinner
	PhotoURL          string                 `json:"photoUrl,omitempty"`
	RestaurantOptions []Restaurant           `json:"restaurantOptions,omitempty"`
	TransportToNext   *TransportationDetails `json:"transportToNext,omitempty"`
}

// Day is one calendar day of the trip.
type Day struct {
	Day        int        `json:"day"` // 1-based ordinal
	Summary    string     `json:"summary,omitempty"`
	Activities []Activity `json:"activities"`
}

// Restaurant is one dining candidate. Identity is PlaceID; immutable once built.
type Restaurant struct {
	PlaceID          string       `json:"placeId"`
	Name             string       `json:"name"`
	Vicinity         string       `json:"vicinity"`
	Rating           float64      `json:"rating"`
	UserRatingsTotal int          `json:"userRatingsTotal"`
	PriceLevel       int          `json:"priceLevel"` // 1-4
	Cuisine          []string     `json:"cuisine,omitempty"`
	OpenNow          bool         `json:"openNow"`
	Distance         string       `json:"distance,omitempty"`
	WalkingTime      string       `json:"walkingTime,omitempty"`
	Badges           []string     `json:"badges,omitempty"`
	PhotoURL         string       `json:"photoUrl,omitempty"`
	Coordinates      *Coordinates `json:"coordinates,omitempty"`
}

// TransportationDetails describes the leg from an activity to the next one in
// the same day. Absent on a day's last activity.
type TransportationDetails struct {
	Mode     string `json:"mode"` // walking, transit, taxi, driving, flight, ferry, bicycle
	ModeName string `json:"modeName"`
	Icon     string `json:"icon"`
	Duration string `json:"duration"`
	Distance string `json:"distance"`
	Cost     string `json:"cost"`
}

// DietaryPreferences are the hard dietary constraints for restaurant search.
type DietaryPreferences struct {
	Halal          bool `json:"halal"`
	Vegetarian     bool `json:"vegetarian"`
	Vegan          bool `json:"vegan"`
	NutAllergy     bool `json:"nutAllergy"`
	SeafoodAllergy bool `json:"seafoodAllergy"`
}

// Preferences carries the traveler inputs the enrichment engine consumes.
type Preferences struct {
	City        string             `json:"city"`
	CountryCode string             `json:"countryCode"`
	Budget      string             `json:"budget"` // low, medium, high
	Dietary     DietaryPreferences `json:"dietary"`
	Interests   []string           `json:"interests,omitempty"`
}

// MealExclusions accumulates the placeIds already offered per meal type across
// the days processed so far, so later days never repeat a restaurant.
type MealExclusions struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
}

// ForMeal returns the exclusion list for one meal type.
func (m *MealExclusions) ForMeal(mealType string) []string {
	switch mealType {
	case "breakfast":
		return m.Breakfast
	case "lunch":
		return m.Lunch
	case "dinner":
		return m.Dinner
	}
	return nil
}

// Add records placeIds as used for a meal type.
func (m *MealExclusions) Add(mealType string, placeIDs ...string) {
	switch mealType {
	case "breakfast":
		m.Breakfast = append(m.Breakfast, placeIDs...)
	case "lunch":
		m.Lunch = append(m.Lunch, placeIDs...)
	case "dinner":
		m.Dinner = append(m.Dinner, placeIDs...)
	}
}

// Itinerary is the persisted unit: the enriched days plus the inputs that
// produced them.
type Itinerary struct {
	ID          string      `json:"id" firestore:"id"`
	UserID      string      `json:"userId" firestore:"userId"`
	Destination string      `json:"destination" firestore:"destination"`
	Preferences Preferences `json:"preferences" firestore:"preferences"`
	Days        []Day       `json:"days" firestore:"days"`
	CreatedAt   string      `json:"createdAt" firestore:"createdAt"`
}
