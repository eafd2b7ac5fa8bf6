package models

// PlacesResponse is the shape of a Places nearby/text search reply, trimmed to
// the fields the engine consumes.
type PlacesResponse struct {
	Results []PlaceResult `json:"results"`
	Status  string        `json:"status"`
}

type PlaceResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Vicinity         string        `json:"vicinity,omitempty"`
	FormattedAddress string        `json:"formatted_address,omitempty"`
	Rating           float64       `json:"rating,omitempty"`
	UserRatingsTotal int           `json:"user_ratings_total,omitempty"`
	PriceLevel       int           `json:"price_level,omitempty"`
	Types            []string      `json:"types,omitempty"`
	Geometry         PlaceGeometry `json:"geometry"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	Photos           []PlacePhoto  `json:"photos,omitempty"`
	MapsURL          string        `json:"url,omitempty"`
}

// Address prefers vicinity, which nearby search returns, over the text-search
// formatted address.
func (p *PlaceResult) Address() string {
	if p.Vicinity != "" {
		return p.Vicinity
	}
	return p.FormattedAddress
}

type PlaceGeometry struct {
	Location Coordinates `json:"location"`
}

type OpeningHours struct {
	OpenNow bool `json:"open_now"`
}

type PlacePhoto struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// GeocodeResponse is the shape of a geocoding reply.
type GeocodeResponse struct {
	Results []struct {
		Geometry PlaceGeometry `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}
