package services

import (
	"TripMate/config/environment"
	"TripMate/models"
	"TripMate/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcloughlin/geohash"
)

// PlacesService is the raw HTTP client for the Google-Maps-shaped collaborators:
// geocoding, nearby/text place search, directions and place photos. Every
// method fails softly with the utils error taxonomy; callers degrade the
// affected field instead of aborting.
type PlacesService struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client

	cacheMu sync.Mutex
	cache   map[string][]models.PlaceResult
}

// NewPlacesService reads the API key from the environment. A missing key is
// not fatal: every call then returns ErrServiceUnavailable and enrichment
// skips that step.
func NewPlacesService() *PlacesService {
	return &PlacesService{
		APIKey:     environment.GetMapsAPIKey(),
		BaseURL:    "https://maps.googleapis.com/maps/api",
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		cache:      make(map[string][]models.PlaceResult),
	}
}

// Geocode resolves a free-text address to coordinates.
func (s *PlacesService) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	if s.APIKey == "" {
		return nil, utils.ErrServiceUnavailable
	}

	endpoint := fmt.Sprintf("%s/geocode/json?address=%s&key=%s",
		s.BaseURL, url.QueryEscape(address), s.APIKey)

	var result models.GeocodeResponse
	if err := s.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	if err := statusToError(result.Status); err != nil {
		return nil, err
	}
	if len(result.Results) == 0 {
		return nil, utils.ErrNotFound
	}

	loc := result.Results[0].Geometry.Location
	return &models.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// NearbySearch finds restaurants around a point. Results are cached in memory
// by precision-5 geohash (~5 km cell) + radius + keyword, so the progressive
// fallback chain does not refetch identical queries across meals and days.
func (s *PlacesService) NearbySearch(ctx context.Context, loc models.Coordinates, radiusMeters int, keyword string) ([]models.PlaceResult, error) {
	if s.APIKey == "" {
		return nil, utils.ErrServiceUnavailable
	}

	cacheKey := fmt.Sprintf("%s|%d|%s", geohash.EncodeWithPrecision(loc.Lat, loc.Lng, 5), radiusMeters, keyword)
	s.cacheMu.Lock()
	cached, ok := s.cache[cacheKey]
	s.cacheMu.Unlock()
	if ok {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/place/nearbysearch/json?location=%f,%f&radius=%d&type=restaurant&keyword=%s&key=%s",
		s.BaseURL, loc.Lat, loc.Lng, radiusMeters, url.QueryEscape(keyword), s.APIKey)

	var result models.PlacesResponse
	if err := s.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	if err := statusToError(result.Status); err != nil {
		return nil, err
	}

	s.cacheMu.Lock()
	s.cache[cacheKey] = result.Results
	s.cacheMu.Unlock()

	return result.Results, nil
}

// TextSearch runs a free-text restaurant search (the last-resort fallback).
func (s *PlacesService) TextSearch(ctx context.Context, query string) ([]models.PlaceResult, error) {
	if s.APIKey == "" {
		return nil, utils.ErrServiceUnavailable
	}

	endpoint := fmt.Sprintf("%s/place/textsearch/json?query=%s&type=restaurant&key=%s",
		s.BaseURL, url.QueryEscape(query), s.APIKey)

	var result models.PlacesResponse
	if err := s.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	if err := statusToError(result.Status); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// Route asks the directions collaborator for one leg. Returns the first leg
// of the first route.
func (s *PlacesService) Route(ctx context.Context, origin, destination models.Coordinates, mode string) (*models.DirectionsLeg, error) {
	if s.APIKey == "" {
		return nil, utils.ErrServiceUnavailable
	}

	endpoint := fmt.Sprintf("%s/directions/json?origin=%f,%f&destination=%f,%f&mode=%s&key=%s",
		s.BaseURL, origin.Lat, origin.Lng, destination.Lat, destination.Lng, url.QueryEscape(mode), s.APIKey)

	var result models.DirectionsResponse
	if err := s.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	if err := statusToError(result.Status); err != nil {
		return nil, err
	}
	if len(result.Routes) == 0 || len(result.Routes[0].Legs) == 0 {
		return nil, utils.ErrNotFound
	}
	return &result.Routes[0].Legs[0], nil
}

// PhotoURL builds the photo endpoint URL for a photo reference. Empty when the
// service is not configured.
func (s *PlacesService) PhotoURL(photoRef string, maxWidth int) string {
	if s.APIKey == "" || photoRef == "" {
		return ""
	}
	return fmt.Sprintf("%s/place/photo?maxwidth=%d&photo_reference=%s&key=%s",
		s.BaseURL, maxWidth, url.QueryEscape(photoRef), s.APIKey)
}

// ScrapePhotoURL is the fallback when a place carries no photo reference but
// has a maps page URL: fetch the page and read its og:image meta tag.
func (s *PlacesService) ScrapePhotoURL(ctx context.Context, pageURL string) (string, error) {
	if pageURL == "" {
		return "", utils.ErrNotFound
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("photo page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	photo, ok := doc.Find(`meta[property="og:image"]`).Attr("content")
	if !ok || photo == "" {
		return "", utils.ErrNotFound
	}
	return photo, nil
}

func (s *PlacesService) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing JSON: %w", err)
	}
	return nil
}

// statusToError maps the Google-style status field to the soft-failure
// taxonomy. OK and ZERO_RESULTS are the only non-surprising statuses, so
// anything else gets logged here once.
func statusToError(status string) error {
	switch status {
	case "OK", "":
		return nil
	case "ZERO_RESULTS", "NOT_FOUND":
		return utils.ErrNotFound
	case "OVER_QUERY_LIMIT", "RESOURCE_EXHAUSTED":
		return utils.ErrQuotaExceeded
	default:
		log.Printf("⚠️ Unexpected API status: %s", status)
		return utils.ErrNotFound
	}
}
