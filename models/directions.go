package models

// DirectionsResponse is the shape of a directions reply, trimmed to the leg
// and transit-step fields the transport calculator consumes.
type DirectionsResponse struct {
	Routes []DirectionsRoute `json:"routes"`
	Status string            `json:"status"`
}

type DirectionsRoute struct {
	Legs []DirectionsLeg `json:"legs"`
}

type DirectionsLeg struct {
	Duration TextValue        `json:"duration"`
	Distance TextValue        `json:"distance"`
	Steps    []DirectionsStep `json:"steps"`
}

type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"` // seconds or meters
}

type DirectionsStep struct {
	TravelMode     string          `json:"travel_mode"`
	TransitDetails *TransitDetails `json:"transit_details,omitempty"`
}

type TransitDetails struct {
	Line TransitLine `json:"line"`
}

type TransitLine struct {
	Name      string         `json:"name"`
	ShortName string         `json:"short_name"`
	Vehicle   TransitVehicle `json:"vehicle"`
}

type TransitVehicle struct {
	Type string `json:"type"` // BUS, HEAVY_RAIL, SUBWAY, FERRY...
	Name string `json:"name"`
}
