package services

import (
	"TripMate/models"
	"context"
	"fmt"
	"log"
	"math"
	"strings"
)

const earthRadiusKm = 6371.0 // Radius of Earth in km

// Haversine formula to calculate distance between two lat/lng points
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1 = lat1 * (math.Pi / 180.0)
	lat2 = lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// RouteProvider is the slice of the places client the transport calculator
// needs. Optional: a nil provider means estimate-only.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination models.Coordinates, mode string) (*models.DirectionsLeg, error)
}

// TransportService infers the travel mode between two points and estimates
// duration, distance and cost. Compute never fails: when the directions
// collaborator is unavailable or errors, the heuristic estimate stands.
type TransportService struct {
	Routes RouteProvider
}

func NewTransportService(routes RouteProvider) *TransportService {
	return &TransportService{Routes: routes}
}

// Cities with metro/rail networks dense enough that transit beats taxi for
// mid-range hops. Matched case-insensitively as a substring of the city name.
var transitCities = []string{
	"tokyo", "kyoto", "osaka", "seoul", "singapore", "hong kong", "taipei",
	"london", "paris", "berlin", "madrid", "barcelona", "amsterdam", "vienna",
	"prague", "moscow", "istanbul", "new york", "chicago", "boston",
	"kuala lumpur", "bangkok", "dubai", "shanghai", "beijing",
}

type fareTable struct {
	TransitFlat float64 // flat fare per ride
	TaxiBase    float64
	TaxiPerKm   float64
}

// Approximate fares in USD. Unknown countries use the default row.
var faresByCountry = map[string]fareTable{
	"JP": {TransitFlat: 1.50, TaxiBase: 3.50, TaxiPerKm: 2.80},
	"KR": {TransitFlat: 1.10, TaxiBase: 3.00, TaxiPerKm: 1.00},
	"SG": {TransitFlat: 1.20, TaxiBase: 2.80, TaxiPerKm: 0.70},
	"MY": {TransitFlat: 0.70, TaxiBase: 0.70, TaxiPerKm: 0.45},
	"ID": {TransitFlat: 0.40, TaxiBase: 0.50, TaxiPerKm: 0.40},
	"TH": {TransitFlat: 0.90, TaxiBase: 1.00, TaxiPerKm: 0.30},
	"TR": {TransitFlat: 0.60, TaxiBase: 0.90, TaxiPerKm: 0.60},
	"AE": {TransitFlat: 1.00, TaxiBase: 3.30, TaxiPerKm: 0.90},
	"SA": {TransitFlat: 1.10, TaxiBase: 2.70, TaxiPerKm: 1.00},
	"GB": {TransitFlat: 3.40, TaxiBase: 4.30, TaxiPerKm: 2.50},
	"FR": {TransitFlat: 2.30, TaxiBase: 3.00, TaxiPerKm: 1.90},
	"DE": {TransitFlat: 3.20, TaxiBase: 4.20, TaxiPerKm: 2.20},
	"ES": {TransitFlat: 1.70, TaxiBase: 2.80, TaxiPerKm: 1.30},
	"IT": {TransitFlat: 1.80, TaxiBase: 3.50, TaxiPerKm: 1.40},
	"US": {TransitFlat: 2.75, TaxiBase: 3.50, TaxiPerKm: 1.75},
	"":   {TransitFlat: 1.50, TaxiBase: 2.50, TaxiPerKm: 1.20}, // default
}

// Average speeds used for the fallback duration estimate, km/h.
var speedByMode = map[string]float64{
	"walking": 5,
	"transit": 30,
	"taxi":    40,
	"driving": 50,
}

var modeLabels = map[string][2]string{
	"walking": {"Walk", "🚶"},
	"transit": {"Public Transit", "🚌"},
	"taxi":    {"Taxi", "🚕"},
	"driving": {"Drive", "🚗"},
}

// Compute builds the transport leg between two geocoded points.
func (s *TransportService) Compute(ctx context.Context, origin, destination models.Coordinates, cityName, countryCode string) models.TransportationDetails {
	distanceKm := haversine(origin.Lat, origin.Lng, destination.Lat, destination.Lng)
	mode := pickMode(distanceKm, cityName)

	label := modeLabels[mode]
	details := models.TransportationDetails{
		Mode:     mode,
		ModeName: label[0],
		Icon:     label[1],
		Duration: estimateDuration(distanceKm, mode),
		Distance: formatDistance(distanceKm),
		Cost:     estimateCost(distanceKm, mode, countryCode),
	}

	if s.Routes == nil {
		return details
	}

	leg, err := s.Routes.Route(ctx, origin, destination, apiMode(mode))
	if err != nil {
		// Any directions failure leaves the estimate in place.
		return details
	}

	if leg.Duration.Text != "" {
		details.Duration = leg.Duration.Text
	}
	if leg.Distance.Text != "" {
		details.Distance = leg.Distance.Text
	}

	if mode == "transit" {
		refineTransit(&details, leg)
	}

	return details
}

func pickMode(distanceKm float64, cityName string) string {
	switch {
	case distanceKm < 0.8:
		return "walking"
	case distanceKm < 20:
		if isTransitCity(cityName) {
			return "transit"
		}
		return "taxi"
	default:
		return "driving"
	}
}

func isTransitCity(cityName string) bool {
	city := strings.ToLower(cityName)
	if city == "" {
		return false
	}
	for _, known := range transitCities {
		if strings.Contains(city, known) {
			return true
		}
	}
	return false
}

func estimateDuration(distanceKm float64, mode string) string {
	speed := speedByMode[mode]
	if speed == 0 {
		speed = 40
	}
	minutes := int(math.Ceil(distanceKm / speed * 60))
	if minutes < 1 {
		minutes = 1
	}
	if minutes >= 60 {
		return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%d min", minutes)
}

func formatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%d m", int(distanceKm*1000))
	}
	return fmt.Sprintf("%.1f km", distanceKm)
}

func estimateCost(distanceKm float64, mode, countryCode string) string {
	if mode == "walking" {
		return "Free"
	}

	fares, ok := faresByCountry[strings.ToUpper(countryCode)]
	if !ok {
		fares = faresByCountry[""]
	}

	if mode == "transit" {
		return fmt.Sprintf("~$%.2f", fares.TransitFlat)
	}
	return fmt.Sprintf("~$%.2f", fares.TaxiBase+fares.TaxiPerKm*distanceKm)
}

// apiMode maps our mode to what the directions collaborator understands.
func apiMode(mode string) string {
	if mode == "taxi" {
		return "driving"
	}
	return mode
}

// refineTransit inspects the leg steps for a transit line and adjusts the
// mode name and icon to the actual vehicle (bus, train or ferry).
func refineTransit(details *models.TransportationDetails, leg *models.DirectionsLeg) {
	for _, step := range leg.Steps {
		if step.TransitDetails == nil {
			continue
		}

		line := step.TransitDetails.Line
		vehicle := strings.ToUpper(line.Vehicle.Type)
		switch vehicle {
		case "BUS", "INTERCITY_BUS", "TROLLEYBUS":
			details.ModeName = "Bus"
			details.Icon = "🚌"
		case "FERRY":
			details.Mode = "ferry"
			details.ModeName = "Ferry"
			details.Icon = "⛴️"
		case "HEAVY_RAIL", "COMMUTER_TRAIN", "HIGH_SPEED_TRAIN", "METRO_RAIL", "MONORAIL", "RAIL", "SUBWAY", "TRAM":
			details.ModeName = "Train"
			details.Icon = "🚆"
		default:
			log.Printf("Unknown transit vehicle type: %s", vehicle)
			continue
		}

		if line.ShortName != "" {
			details.ModeName = fmt.Sprintf("%s (%s)", details.ModeName, line.ShortName)
		} else if line.Name != "" {
			details.ModeName = fmt.Sprintf("%s (%s)", details.ModeName, line.Name)
		}
		return
	}
}
