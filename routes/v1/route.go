package route

import (
	"TripMate/controllers"
	"TripMate/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	itineraryHandler := controllers.NewItineraryController()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterItineraryRoutes(v1Routes, itineraryHandler)
	}
}
