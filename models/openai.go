package models

// GenerateRequest asks the skeleton generator for a raw day-by-day itinerary.
type GenerateRequest struct {
	Destination string      `json:"destination" binding:"required"`
	CountryCode string      `json:"country_code"`
	Days        int         `json:"days" binding:"required,min=1,max=30"`
	Preferences Preferences `json:"preferences"`
}

// EnrichRequest runs the enrichment pipeline over an existing skeleton.
type EnrichRequest struct {
	Days        []Day       `json:"days" binding:"required"`
	Preferences Preferences `json:"preferences"`
}
