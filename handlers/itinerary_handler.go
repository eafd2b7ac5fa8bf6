package handlers

import (
	"TripMate/controllers"
	"TripMate/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterItineraryRoutes(router *gin.RouterGroup, itineraryController *controllers.ItineraryController) {
	itineraryGroup := router.Group("/itineraries")
	itineraryGroup.Use(middleware.AuthMiddleware())
	{
		itineraryGroup.POST("/enrich", itineraryController.EnrichItinerary)

		itineraryGroup.POST("/generate", itineraryController.GenerateItinerary)

		itineraryGroup.GET("/", itineraryController.GetAllItineraries)

		itineraryGroup.GET("/:id", itineraryController.GetItineraryByID)
	}
}
