package controllers

import (
	"TripMate/models"
	"TripMate/services"
	"TripMate/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ItineraryController struct {
	EnrichmentService *services.EnrichmentService
	OpenAIService     *services.OpenAIService
	ItineraryService  *services.ItineraryService
}

func NewItineraryController() *ItineraryController {
	return &ItineraryController{
		EnrichmentService: services.NewEnrichmentService(),
		OpenAIService:     services.NewOpenAIService(),
		ItineraryService:  services.NewItineraryService(),
	}
}

// EnrichItinerary runs the enrichment pipeline over a caller-supplied skeleton.
func (h *ItineraryController) EnrichItinerary(c *gin.Context) {
	var req models.EnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	days := h.EnrichmentService.Run(c, req.Days, req.Preferences)

	utils.SuccessResponse(c, http.StatusOK, "Itinerary enriched successfully", days)
}

// GenerateItinerary generates a skeleton, enriches it and saves the result.
func (h *ItineraryController) GenerateItinerary(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	days, err := h.OpenAIService.GenerateSkeleton(c, req)
	if err != nil {
		log.Println("Error generating skeleton:", err)
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to generate itinerary")
		return
	}

	prefs := req.Preferences
	if prefs.City == "" {
		prefs.City = req.Destination
	}
	if prefs.CountryCode == "" {
		prefs.CountryCode = req.CountryCode
	}

	days = h.EnrichmentService.Run(c, days, prefs)

	itinerary := &models.Itinerary{
		Destination: req.Destination,
		Preferences: prefs,
		Days:        days,
	}

	saved, err := h.ItineraryService.SaveItinerary(c, userId.(string), itinerary)
	if err != nil {
		log.Println("Error saving itinerary:", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to save itinerary")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Itinerary generated successfully", saved)
}

func (h *ItineraryController) GetAllItineraries(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	itineraries, err := h.ItineraryService.GetAllItineraries(c, userId.(string))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Itineraries fetched successfully", itineraries)
}

func (h *ItineraryController) GetItineraryByID(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	itinerary, err := h.ItineraryService.GetItineraryByID(c, userId.(string), c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Itinerary not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Itinerary fetched successfully", itinerary)
}
