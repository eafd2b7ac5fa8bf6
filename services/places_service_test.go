package services_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TripMate/services"
	"TripMate/utils"
)

func newPlacesClient(serverURL string) *services.PlacesService {
	svc := services.NewPlacesService()
	svc.APIKey = "test-key"
	svc.BaseURL = serverURL
	return svc
}

func TestGeocodeParsesFirstResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "Senso-ji, Tokyo", r.URL.Query().Get("address"))
		fmt.Fprint(w, `{"status":"OK","results":[{"geometry":{"location":{"lat":35.7148,"lng":139.7967}}}]}`)
	}))
	defer server.Close()

	coords, err := newPlacesClient(server.URL).Geocode(context.Background(), "Senso-ji, Tokyo")

	require.NoError(t, err)
	assert.InDelta(t, 35.7148, coords.Lat, 1e-6)
	assert.InDelta(t, 139.7967, coords.Lng, 1e-6)
}

func TestGeocodeStatusMapping(t *testing.T) {
	status := "ZERO_RESULTS"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"status":%q,"results":[]}`, status)
	}))
	defer server.Close()
	client := newPlacesClient(server.URL)

	_, err := client.Geocode(context.Background(), "nowhere")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	status = "OVER_QUERY_LIMIT"
	_, err = client.Geocode(context.Background(), "nowhere")
	assert.ErrorIs(t, err, utils.ErrQuotaExceeded)
}

func TestMissingKeyIsServiceUnavailable(t *testing.T) {
	svc := services.NewPlacesService()
	svc.APIKey = ""

	_, err := svc.Geocode(context.Background(), "anywhere")
	assert.ErrorIs(t, err, utils.ErrServiceUnavailable)

	_, err = svc.NearbySearch(context.Background(), testOrigin, 2000, "lunch")
	assert.ErrorIs(t, err, utils.ErrServiceUnavailable)

	assert.Empty(t, svc.PhotoURL("ref", 400))
}

func TestNearbySearchCachesByGeohashCell(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"status":"OK","results":[{"place_id":"p1","name":"Alpha Kitchen","geometry":{"location":{"lat":35.0,"lng":139.0}}}]}`)
	}))
	defer server.Close()
	client := newPlacesClient(server.URL)

	first, err := client.NearbySearch(context.Background(), testOrigin, 2000, "halal lunch")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Same cell, radius and keyword: served from cache.
	second, err := client.NearbySearch(context.Background(), testOrigin, 2000, "halal lunch")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)

	// A different radius is a different query.
	_, err = client.NearbySearch(context.Background(), testOrigin, 5000, "halal lunch")
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestScrapePhotoURLReadsOgImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><meta property="og:image" content="https://img.example/photo.jpg"></head><body></body></html>`)
	}))
	defer server.Close()
	client := newPlacesClient(server.URL)

	photo, err := client.ScrapePhotoURL(context.Background(), server.URL+"/place")

	require.NoError(t, err)
	assert.Equal(t, "https://img.example/photo.jpg", photo)
}

func TestScrapePhotoURLWithoutOgImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>no photos here</title></head></html>`)
	}))
	defer server.Close()
	client := newPlacesClient(server.URL)

	_, err := client.ScrapePhotoURL(context.Background(), server.URL+"/place")

	assert.ErrorIs(t, err, utils.ErrNotFound)
}
