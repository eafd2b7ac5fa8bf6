package services

import (
	"TripMate/models"
	"TripMate/utils"
	"context"
	"log"
	"time"
)

// PhotoFinder is the slice of the places client used to attach a photo to an
// activity: a text lookup for the photo reference, with a maps-page scrape as
// last resort.
type PhotoFinder interface {
	TextSearch(ctx context.Context, query string) ([]models.PlaceResult, error)
	PhotoURL(photoRef string, maxWidth int) string
	ScrapePhotoURL(ctx context.Context, pageURL string) (string, error)
}

// EnrichmentService runs the whole pipeline: geocode and photograph each
// activity, compute meal slots, search and insert meal activities while
// threading the cross-day exclusion accumulator, compute transport legs, then
// normalize ordering across all days.
//
// Days are processed strictly in order because day N+1's restaurant
// exclusions depend on day N's results. Run always returns a best-effort
// result and never an error; every collaborator failure degrades one field.
type EnrichmentService struct {
	Geocode     *GeocodeService
	Transport   *TransportService
	MealTimes   *MealTimeService
	Restaurants *RestaurantService
	Order       *OrderService
	Photos      PhotoFinder

	// Separate pacers because the upstream rate limits differ per API.
	GeocodePacer   utils.Pacer
	TransportPacer utils.Pacer
}

// NewEnrichmentService wires the pipeline against the live places client with
// production pacing.
func NewEnrichmentService() *EnrichmentService {
	places := NewPlacesService()
	mealTimes := NewMealTimeService()
	return &EnrichmentService{
		Geocode:        NewGeocodeService(places),
		Transport:      NewTransportService(places),
		MealTimes:      mealTimes,
		Restaurants:    NewRestaurantService(places, utils.NewIntervalPacer(200*time.Millisecond)),
		Order:          NewOrderService(mealTimes),
		Photos:         places,
		GeocodePacer:   utils.NewIntervalPacer(150 * time.Millisecond),
		TransportPacer: utils.NewIntervalPacer(50 * time.Millisecond),
	}
}

// Run enriches the raw skeleton into a schedulable itinerary.
func (s *EnrichmentService) Run(ctx context.Context, days []models.Day, prefs models.Preferences) []models.Day {
	exclusions := &models.MealExclusions{}

	for i := range days {
		if len(days[i].Activities) == 0 {
			log.Printf("⚠️ Day %d has no activities, skipping enrichment", days[i].Day)
			continue
		}
		s.enrichDay(ctx, &days[i], prefs, exclusions)
	}

	return s.Order.Normalize(days)
}

func (s *EnrichmentService) enrichDay(ctx context.Context, day *models.Day, prefs models.Preferences, exclusions *models.MealExclusions) {
	s.geocodeActivities(ctx, day, prefs)
	s.insertMeals(ctx, day, prefs, exclusions)
	s.computeTransportLegs(ctx, day, prefs)
}

func (s *EnrichmentService) geocodeActivities(ctx context.Context, day *models.Day, prefs models.Preferences) {
	locationContext := prefs.City
	if prefs.CountryCode != "" {
		locationContext += ", " + prefs.CountryCode
	}

	for i := range day.Activities {
		activity := &day.Activities[i]
		if activity.Location == "" {
			log.Printf("⚠️ Day %d: activity %q has no location, skipping geocode", day.Day, activity.Title)
			continue
		}

		if activity.Coordinates == nil {
			s.GeocodePacer.Wait(ctx)
			activity.Coordinates = s.Geocode.Resolve(ctx, activity.Location, locationContext)
		}

		if activity.PhotoURL == "" && activity.Coordinates != nil {
			s.GeocodePacer.Wait(ctx)
			activity.PhotoURL = s.findPhoto(ctx, activity.Location, locationContext)
		}
	}
}

// findPhoto looks the location up by text and returns its photo URL, falling
// back to scraping the place's maps page for an og:image.
func (s *EnrichmentService) findPhoto(ctx context.Context, location, locationContext string) string {
	results, err := s.Photos.TextSearch(ctx, location+", "+locationContext)
	if err != nil || len(results) == 0 {
		return ""
	}

	place := results[0]
	if len(place.Photos) > 0 {
		if photoURL := s.Photos.PhotoURL(place.Photos[0].PhotoReference, 800); photoURL != "" {
			return photoURL
		}
	}

	if place.MapsURL != "" {
		photoURL, err := s.Photos.ScrapePhotoURL(ctx, place.MapsURL)
		if err != nil {
			log.Printf("⚠️ Photo scrape failed for %q: %v", location, err)
			return ""
		}
		return photoURL
	}
	return ""
}

var mealTitles = map[string]string{
	"breakfast": "Breakfast",
	"lunch":     "Lunch",
	"dinner":    "Dinner",
}

func (s *EnrichmentService) insertMeals(ctx context.Context, day *models.Day, prefs models.Preferences, exclusions *models.MealExclusions) {
	times := s.MealTimes.Determine(day.Activities)

	slots := []struct {
		mealType string
		clock    *string
	}{
		{"breakfast", times.Breakfast},
		{"lunch", times.Lunch},
		{"dinner", times.Dinner},
	}

	for _, slot := range slots {
		if slot.clock == nil || s.hasMeal(day, slot.mealType) {
			continue
		}

		anchor := anchorCoordinates(day, *slot.clock)
		if anchor == nil {
			// Nothing geocoded to search around.
			continue
		}

		options := s.Restaurants.Search(ctx, *anchor, slot.mealType, prefs.Budget,
			prefs.Dietary, prefs.Interests, exclusions.ForMeal(slot.mealType), prefs.City)
		if len(options) == 0 {
			log.Printf("⚠️ Day %d: no %s options found", day.Day, slot.mealType)
			continue
		}

		meal := models.Activity{
			Time:              *slot.clock,
			Title:             mealTitles[slot.mealType],
			Location:          options[0].Name,
			Type:              "meal",
			MealType:          slot.mealType,
			Coordinates:       options[0].Coordinates,
			PhotoURL:          options[0].PhotoURL,
			RestaurantOptions: options,
		}
		day.Activities = append(day.Activities, meal)

		for _, option := range options {
			exclusions.Add(slot.mealType, option.PlaceID)
		}
	}

	sortByTime(day.Activities)
}

func (s *EnrichmentService) hasMeal(day *models.Day, mealType string) bool {
	for _, a := range day.Activities {
		if a.MealType == mealType {
			return true
		}
	}
	return false
}

// anchorCoordinates picks the geocoded activity closest in time to the meal
// slot, so the restaurant search happens near where the traveler will be.
func anchorCoordinates(day *models.Day, clock string) *models.Coordinates {
	slotMinutes := utils.ParseClock(clock)
	var best *models.Coordinates
	bestDelta := 1 << 30

	for i := range day.Activities {
		a := &day.Activities[i]
		if a.Coordinates == nil {
			continue
		}
		t := utils.ParseClock(a.Time)
		if t < 0 {
			continue
		}
		delta := t - slotMinutes
		if delta < 0 {
			delta = -delta
		}
		if delta < bestDelta {
			bestDelta = delta
			best = a.Coordinates
		}
	}
	return best
}

func (s *EnrichmentService) computeTransportLegs(ctx context.Context, day *models.Day, prefs models.Preferences) {
	for i := 0; i+1 < len(day.Activities); i++ {
		from := &day.Activities[i]
		to := &day.Activities[i+1]
		if from.Coordinates == nil || to.Coordinates == nil {
			from.TransportToNext = nil
			continue
		}

		s.TransportPacer.Wait(ctx)
		details := s.Transport.Compute(ctx, *from.Coordinates, *to.Coordinates, prefs.City, prefs.CountryCode)
		from.TransportToNext = &details
	}

	if n := len(day.Activities); n > 0 {
		day.Activities[n-1].TransportToNext = nil
	}
}
