package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires middleware and every API route
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		// Listing
		api.GET("/trains", GetTrains)
		api.GET("/trains/:number", GetTrain)
		api.GET("/stations", GetStations)
		api.POST("/search", SearchTrains)
		api.GET("/filters", GetFilters)
		api.POST("/filters/toggle", ToggleFilter)
		api.POST("/filters/clear", ClearFilters)

		// Fare preview
		api.POST("/bookings/fare", CalculateFare)

		// Auth
		api.POST("/auth/register", Register)
		api.POST("/auth/login", Login)

		// Assistant
		api.POST("/ai/chat", ChatWithAI)
		api.POST("/gemini/ask", AskAssistant)
		api.POST("/waitlist/estimate", EstimateWaitlist)

		protected := api.Group("")
		protected.Use(RequireAuth())
		{
			protected.GET("/auth/me", Me)
			protected.POST("/bookings", CreateBooking)
			protected.GET("/bookings", GetBookings)
			protected.GET("/bookings/:id", GetBooking)
			protected.DELETE("/bookings/:id", CancelBooking)
			protected.GET("/bookings/:id/ticket", GetTicket)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
