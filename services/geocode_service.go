package services

import (
	"TripMate/models"
	"TripMate/utils"
	"context"
	"errors"
	"log"
)

// GeocodeProvider is the slice of the places client the geocoder needs.
type GeocodeProvider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

// GeocodeService resolves free-text locations to coordinates. It never
// returns an error: every failure is logged and yields nil, and dependent
// enrichment is simply skipped.
type GeocodeService struct {
	Provider GeocodeProvider
}

func NewGeocodeService(provider GeocodeProvider) *GeocodeService {
	return &GeocodeService{Provider: provider}
}

// Resolve geocodes "location, context" (context is usually "city, country").
func (s *GeocodeService) Resolve(ctx context.Context, locationName, locationContext string) *models.Coordinates {
	if locationName == "" {
		return nil
	}

	query := locationName
	if locationContext != "" {
		query = locationName + ", " + locationContext
	}

	coords, err := s.Provider.Geocode(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrServiceUnavailable):
			// No key configured; stay quiet, the whole step is off.
		case errors.Is(err, utils.ErrNotFound), errors.Is(err, utils.ErrQuotaExceeded):
			log.Printf("⚠️ Geocode found nothing for %q: %v", query, err)
		default:
			log.Printf("⚠️ Geocode failed for %q: %v", query, err)
		}
		return nil
	}

	return coords
}
