package services

import (
	"TripMate/models"
	"TripMate/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
)

// PlaceSearcher is the slice of the places client the restaurant finder needs.
type PlaceSearcher interface {
	NearbySearch(ctx context.Context, loc models.Coordinates, radiusMeters int, keyword string) ([]models.PlaceResult, error)
	TextSearch(ctx context.Context, query string) ([]models.PlaceResult, error)
	PhotoURL(photoRef string, maxWidth int) string
}

// SearchStrategy is one level of the progressive fallback chain.
type SearchStrategy struct {
	RadiusMeters int
	MinRating    float64
	StrictBudget bool
}

// The chain widens the radius and relaxes rating/budget until enough unique
// candidates are collected.
var searchStrategies = []SearchStrategy{
	{RadiusMeters: 2000, MinRating: 4.0, StrictBudget: true},
	{RadiusMeters: 5000, MinRating: 4.0, StrictBudget: true},
	{RadiusMeters: 10000, MinRating: 3.5, StrictBudget: true},
	{RadiusMeters: 10000, MinRating: 3.5, StrictBudget: false},
	{RadiusMeters: 15000, MinRating: 3.0, StrictBudget: false},
	{RadiusMeters: 20000, MinRating: 0, StrictBudget: false},
}

const maxRestaurantOptions = 3

// RestaurantService finds dining candidates for a meal slot, honoring budget,
// dietary constraints and the cross-day exclusion lists. Search never returns
// an error: when every level fails the result is simply an empty slice.
type RestaurantService struct {
	Places PlaceSearcher
	Pacer  utils.Pacer
}

func NewRestaurantService(places PlaceSearcher, pacer utils.Pacer) *RestaurantService {
	return &RestaurantService{Places: places, Pacer: pacer}
}

// Search returns up to 3 ranked restaurants near loc for the given meal.
func (s *RestaurantService) Search(
	ctx context.Context,
	loc models.Coordinates,
	mealType string,
	budgetLevel string,
	dietary models.DietaryPreferences,
	interests []string,
	excludePlaceIDs []string,
	cityName string,
) []models.Restaurant {
	keyword := buildKeyword(mealType, dietary, interests)
	excluded := make(map[string]bool, len(excludePlaceIDs))
	for _, id := range excludePlaceIDs {
		excluded[id] = true
	}

	var picked []models.Restaurant
	seen := make(map[string]bool)

	for level, strategy := range searchStrategies {
		s.Pacer.Wait(ctx)

		candidates, err := s.Places.NearbySearch(ctx, loc, strategy.RadiusMeters, keyword)
		if err != nil {
			if errors.Is(err, utils.ErrServiceUnavailable) {
				return picked
			}
			log.Printf("⚠️ Restaurant search level %d failed: %v", level+1, err)
			continue
		}

		candidates = filterByRating(candidates, strategy.MinRating)
		candidates = filterDietary(candidates, dietary)
		if strategy.StrictBudget {
			candidates = filterByBudget(candidates, budgetLevel)
		}

		ranked := rankCandidates(candidates, loc, strategy.RadiusMeters)
		for _, candidate := range ranked {
			if excluded[candidate.PlaceID] || seen[candidate.PlaceID] {
				continue
			}
			seen[candidate.PlaceID] = true
			picked = append(picked, s.enrich(candidate, loc, dietary))
			if len(picked) >= maxRestaurantOptions {
				return picked
			}
		}
	}

	// Still short after all six levels: one text search by city and meal.
	picked = s.textSearchFallback(ctx, picked, seen, excluded, loc, mealType, dietary, cityName)

	if len(picked) > maxRestaurantOptions {
		picked = picked[:maxRestaurantOptions]
	}
	return picked
}

func (s *RestaurantService) textSearchFallback(
	ctx context.Context,
	picked []models.Restaurant,
	seen, excluded map[string]bool,
	loc models.Coordinates,
	mealType string,
	dietary models.DietaryPreferences,
	cityName string,
) []models.Restaurant {
	if len(picked) >= maxRestaurantOptions || cityName == "" {
		return picked
	}

	query := fmt.Sprintf("%s restaurant in %s", mealType, cityName)
	if dietary.Halal {
		query = "halal " + query
	}

	s.Pacer.Wait(ctx)
	candidates, err := s.Places.TextSearch(ctx, query)
	if err != nil {
		log.Printf("⚠️ Text search fallback failed: %v", err)
		return picked
	}

	filtered := filterDietary(candidates, dietary)
	if dietary.Halal && len(filtered) == 0 {
		// The query already narrowed to halal places; a second strict pass
		// can empty the set entirely, so relax it.
		filtered = candidates
	}

	for _, candidate := range filtered {
		if excluded[candidate.PlaceID] || seen[candidate.PlaceID] {
			continue
		}
		seen[candidate.PlaceID] = true
		picked = append(picked, s.enrich(candidate, loc, dietary))
		if len(picked) >= maxRestaurantOptions {
			break
		}
	}
	return picked
}

// buildKeyword composes the nearby-search keyword from the meal, the dietary
// flags and interest-driven modifiers.
func buildKeyword(mealType string, dietary models.DietaryPreferences, interests []string) string {
	parts := []string{}
	if dietary.Halal {
		parts = append(parts, "halal")
	}
	if dietary.Vegan {
		parts = append(parts, "vegan")
	} else if dietary.Vegetarian {
		parts = append(parts, "vegetarian")
	}
	parts = append(parts, mealType)

	for _, interest := range interests {
		switch strings.ToLower(interest) {
		case "food", "culinary":
			parts = append(parts, "local cuisine")
		case "culture", "history":
			parts = append(parts, "traditional")
		case "luxury":
			parts = append(parts, "fine dining")
		}
	}
	return strings.Join(parts, " ")
}

func filterByRating(candidates []models.PlaceResult, minRating float64) []models.PlaceResult {
	if minRating <= 0 {
		return candidates
	}
	var out []models.PlaceResult
	for _, c := range candidates {
		if c.Rating >= minRating {
			out = append(out, c)
		}
	}
	return out
}

// budgetPriceLevels maps a budget level to acceptable price levels (1-4).
var budgetPriceLevels = map[string][]int{
	"low":    {1, 2},
	"medium": {2, 3},
	"high":   {3, 4},
}

func filterByBudget(candidates []models.PlaceResult, budgetLevel string) []models.PlaceResult {
	allowed, ok := budgetPriceLevels[strings.ToLower(budgetLevel)]
	if !ok {
		return candidates
	}
	var out []models.PlaceResult
	for _, c := range candidates {
		// Unknown price level passes; it is missing data, not a violation.
		if c.PriceLevel == 0 {
			out = append(out, c)
			continue
		}
		for _, level := range allowed {
			if c.PriceLevel == level {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

var haramPlaceTypes = map[string]bool{
	"bar": true, "pub": true, "night_club": true, "nightclub": true,
	"brewery": true, "liquor_store": true,
}

var haramNameWords = map[string]bool{
	"bar": true, "pub": true, "tavern": true, "wine": true, "cocktail": true,
	"cocktails": true, "brewery": true, "spirit": true, "spirits": true,
}

var nutWords = map[string]bool{
	"nut": true, "nuts": true, "almond": true, "peanut": true, "peanuts": true,
}

var seafoodWords = map[string]bool{
	"seafood": true, "sushi": true, "fish": true,
}

// filterDietary drops candidates that violate a hard dietary constraint.
// Matching is per word so "Barbecue House" survives a halal filter and
// "Donut Palace" survives a nut-allergy filter.
func filterDietary(candidates []models.PlaceResult, dietary models.DietaryPreferences) []models.PlaceResult {
	if !dietary.Halal && !dietary.NutAllergy && !dietary.SeafoodAllergy {
		return candidates
	}

	var out []models.PlaceResult
	for _, c := range candidates {
		if dietary.Halal && servesAlcohol(c) {
			continue
		}
		if dietary.NutAllergy && mentionsWords(c.Name+" "+c.Address(), nutWords) {
			continue
		}
		if dietary.SeafoodAllergy && isSeafood(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func servesAlcohol(c models.PlaceResult) bool {
	for _, t := range c.Types {
		if haramPlaceTypes[strings.ToLower(t)] {
			return true
		}
	}
	if mentionsWords(c.Name, haramNameWords) {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), "beer garden")
}

func isSeafood(c models.PlaceResult) bool {
	for _, t := range c.Types {
		if strings.Contains(strings.ToLower(t), "seafood") {
			return true
		}
	}
	return mentionsWords(c.Name, seafoodWords)
}

func mentionsWords(text string, words map[string]bool) bool {
	for _, field := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if words[field] {
			return true
		}
	}
	return false
}

// rankCandidates sorts by the combined score: rating (40%), log review count
// (30%) and closeness within the search radius (30%).
func rankCandidates(candidates []models.PlaceResult, origin models.Coordinates, radiusMeters int) []models.PlaceResult {
	type scored struct {
		place models.PlaceResult
		score float64
	}

	scoredList := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		distMeters := haversine(origin.Lat, origin.Lng, c.Geometry.Location.Lat, c.Geometry.Location.Lng) * 1000
		closeness := (float64(radiusMeters) - distMeters) / float64(radiusMeters)
		score := c.Rating*0.4 +
			math.Log(math.Max(float64(c.UserRatingsTotal), 1))*0.3 +
			closeness*0.3
		scoredList = append(scoredList, scored{place: c, score: score})
	}

	sort.SliceStable(scoredList, func(i, j int) bool {
		return scoredList[i].score > scoredList[j].score
	})

	out := make([]models.PlaceResult, len(scoredList))
	for i, sc := range scoredList {
		out[i] = sc.place
	}
	return out
}

// Place types that say nothing about cuisine.
var genericPlaceTypes = map[string]bool{
	"restaurant": true, "food": true, "point_of_interest": true,
	"establishment": true, "meal_takeaway": true, "meal_delivery": true,
	"store": true,
}

// enrich converts a raw search result into a presentable Restaurant.
func (s *RestaurantService) enrich(c models.PlaceResult, origin models.Coordinates, dietary models.DietaryPreferences) models.Restaurant {
	distKm := haversine(origin.Lat, origin.Lng, c.Geometry.Location.Lat, c.Geometry.Location.Lng)
	walkingMinutes := int(math.Ceil(distKm / 5.0 * 60))

	restaurant := models.Restaurant{
		PlaceID:          c.PlaceID,
		Name:             c.Name,
		Vicinity:         c.Address(),
		Rating:           c.Rating,
		UserRatingsTotal: c.UserRatingsTotal,
		PriceLevel:       c.PriceLevel,
		Distance:         formatDistance(distKm),
		WalkingTime:      fmt.Sprintf("%d min walk", walkingMinutes),
		Coordinates: &models.Coordinates{
			Lat: c.Geometry.Location.Lat,
			Lng: c.Geometry.Location.Lng,
		},
	}

	if c.OpeningHours != nil {
		restaurant.OpenNow = c.OpeningHours.OpenNow
	}

	for _, t := range c.Types {
		if !genericPlaceTypes[strings.ToLower(t)] {
			restaurant.Cuisine = append(restaurant.Cuisine, strings.ReplaceAll(t, "_", " "))
		}
	}

	if c.Rating >= 4.5 {
		restaurant.Badges = append(restaurant.Badges, "Top Rated")
	}
	if c.UserRatingsTotal >= 1000 {
		restaurant.Badges = append(restaurant.Badges, "Popular")
	}
	if dietary.Halal {
		restaurant.Badges = append(restaurant.Badges, "Halal")
	}

	if len(c.Photos) > 0 {
		restaurant.PhotoURL = s.Places.PhotoURL(c.Photos[0].PhotoReference, 400)
	}

	return restaurant
}
