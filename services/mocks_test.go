package services_test

import (
	"context"

	"TripMate/models"
	"TripMate/services"
	"TripMate/utils"
)

// mockPlaces is a test double for the places collaborator interfaces.
// Set only the function fields your test needs; unset calls report NotFound.
type mockPlaces struct {
	nearby func(ctx context.Context, loc models.Coordinates, radiusMeters int, keyword string) ([]models.PlaceResult, error)
	text   func(ctx context.Context, query string) ([]models.PlaceResult, error)
	geo    func(ctx context.Context, address string) (*models.Coordinates, error)
	route  func(ctx context.Context, origin, destination models.Coordinates, mode string) (*models.DirectionsLeg, error)
}

func (m *mockPlaces) NearbySearch(ctx context.Context, loc models.Coordinates, radiusMeters int, keyword string) ([]models.PlaceResult, error) {
	if m.nearby == nil {
		return nil, utils.ErrNotFound
	}
	return m.nearby(ctx, loc, radiusMeters, keyword)
}

func (m *mockPlaces) TextSearch(ctx context.Context, query string) ([]models.PlaceResult, error) {
	if m.text == nil {
		return nil, utils.ErrNotFound
	}
	return m.text(ctx, query)
}

func (m *mockPlaces) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	if m.geo == nil {
		return nil, utils.ErrNotFound
	}
	return m.geo(ctx, address)
}

func (m *mockPlaces) Route(ctx context.Context, origin, destination models.Coordinates, mode string) (*models.DirectionsLeg, error) {
	if m.route == nil {
		return nil, utils.ErrNotFound
	}
	return m.route(ctx, origin, destination, mode)
}

func (m *mockPlaces) PhotoURL(photoRef string, maxWidth int) string {
	return ""
}

func (m *mockPlaces) ScrapePhotoURL(ctx context.Context, pageURL string) (string, error) {
	return "", utils.ErrNotFound
}

// compile-time checks against the consumer interfaces.
var (
	_ services.PlaceSearcher   = (*mockPlaces)(nil)
	_ services.GeocodeProvider = (*mockPlaces)(nil)
	_ services.RouteProvider   = (*mockPlaces)(nil)
	_ services.PhotoFinder     = (*mockPlaces)(nil)
)

// newTestEnrichment wires the pipeline against a mock with no pacing delays.
func newTestEnrichment(places *mockPlaces) *services.EnrichmentService {
	mealTimes := services.NewMealTimeService()
	return &services.EnrichmentService{
		Geocode:        services.NewGeocodeService(places),
		Transport:      services.NewTransportService(places),
		MealTimes:      mealTimes,
		Restaurants:    services.NewRestaurantService(places, utils.NopPacer()),
		Order:          services.NewOrderService(mealTimes),
		Photos:         places,
		GeocodePacer:   utils.NopPacer(),
		TransportPacer: utils.NopPacer(),
	}
}
