package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripMate/models"
	"TripMate/services"
)

// 0.0045 degrees of latitude is roughly 500 m.
func TestComputeShortHopIsFreeWalk(t *testing.T) {
	svc := services.NewTransportService(nil)

	details := svc.Compute(context.Background(),
		models.Coordinates{Lat: 35.0000, Lng: 139.0000},
		models.Coordinates{Lat: 35.0045, Lng: 139.0000},
		"Tokyo", "JP")

	assert.Equal(t, "walking", details.Mode)
	assert.Equal(t, "Free", details.Cost)
	assert.Equal(t, "🚶", details.Icon)
}

func TestComputeModeSelection(t *testing.T) {
	svc := services.NewTransportService(nil)
	origin := models.Coordinates{Lat: 35.0, Lng: 139.0}

	tests := []struct {
		name     string
		dest     models.Coordinates
		city     string
		wantMode string
	}{
		{"mid range in transit city", models.Coordinates{Lat: 35.045, Lng: 139.0}, "Tokyo", "transit"},
		{"mid range elsewhere", models.Coordinates{Lat: 35.045, Lng: 139.0}, "Springfield", "taxi"},
		{"long range drives", models.Coordinates{Lat: 35.2, Lng: 139.0}, "Tokyo", "driving"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := svc.Compute(context.Background(), origin, tt.dest, tt.city, "JP")
			assert.Equal(t, tt.wantMode, details.Mode)
		})
	}
}

func TestComputeFallbackCostUsesFareTable(t *testing.T) {
	svc := services.NewTransportService(nil)
	origin := models.Coordinates{Lat: 35.0, Lng: 139.0}
	dest := models.Coordinates{Lat: 35.045, Lng: 139.0} // ~5 km

	transit := svc.Compute(context.Background(), origin, dest, "Tokyo", "JP")
	assert.Equal(t, "~$1.50", transit.Cost)

	// Unknown country falls back to the default fare row.
	taxi := svc.Compute(context.Background(), origin, dest, "Nowhere City", "ZZ")
	assert.Equal(t, "taxi", taxi.Mode)
	assert.Contains(t, taxi.Cost, "~$")
}

func TestComputeDirectionsOverrideAndTransitRefinement(t *testing.T) {
	places := &mockPlaces{
		route: func(ctx context.Context, origin, destination models.Coordinates, mode string) (*models.DirectionsLeg, error) {
			require.Equal(t, "transit", mode)
			return &models.DirectionsLeg{
				Duration: models.TextValue{Text: "18 mins", Value: 1080},
				Distance: models.TextValue{Text: "5.2 km", Value: 5200},
				Steps: []models.DirectionsStep{
					{TravelMode: "WALKING"},
					{
						TravelMode: "TRANSIT",
						TransitDetails: &models.TransitDetails{
							Line: models.TransitLine{
								ShortName: "G",
								Vehicle:   models.TransitVehicle{Type: "SUBWAY"},
							},
						},
					},
				},
			}, nil
		},
	}
	svc := services.NewTransportService(places)

	details := svc.Compute(context.Background(),
		models.Coordinates{Lat: 35.0, Lng: 139.0},
		models.Coordinates{Lat: 35.045, Lng: 139.0},
		"Tokyo", "JP")

	assert.Equal(t, "transit", details.Mode)
	assert.Equal(t, "18 mins", details.Duration)
	assert.Equal(t, "5.2 km", details.Distance)
	assert.Equal(t, "Train (G)", details.ModeName)
	assert.Equal(t, "🚆", details.Icon)
}

func TestComputeDirectionsFailureKeepsEstimate(t *testing.T) {
	places := &mockPlaces{} // Route reports NotFound
	svc := services.NewTransportService(places)

	details := svc.Compute(context.Background(),
		models.Coordinates{Lat: 35.0, Lng: 139.0},
		models.Coordinates{Lat: 35.045, Lng: 139.0},
		"Tokyo", "JP")

	assert.Equal(t, "transit", details.Mode)
	// ~5 km at 30 km/h, rounded up.
	assert.Equal(t, "11 min", details.Duration)
	assert.Equal(t, "5.0 km", details.Distance)
}
