package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"train-booking/models"
	"train-booking/services"
)

// GetTrains returns the whole listing snapshot
func GetTrains(c *gin.Context) {
	trains, err := services.GetAllTrains(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, trains)
}

// GetTrain returns one train with its route
func GetTrain(c *gin.Context) {
	train, err := services.GetTrainDetails(c.Request.Context(), c.Param("number"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, train)
}

// GetStations returns all known stations
func GetStations(c *gin.Context) {
	stations, err := services.GetAllStations(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, stations)
}

// SearchTrains filters the listing by search parameters and checkboxes
func SearchTrains(c *gin.Context) {
	var req models.SearchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	results, err := services.SearchTrains(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetFilters returns the checkbox catalog with nothing ticked
func GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, services.DefaultFilterSelection())
}

// ToggleFilter flips one checkbox and returns the new selection
func ToggleFilter(c *gin.Context) {
	var req models.ToggleFilterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	c.JSON(http.StatusOK, services.ToggleFilter(req.Filters, req.Category, req.Value))
}

// ClearFilters unticks every checkbox of the posted selection
func ClearFilters(c *gin.Context) {
	var selection models.FilterSelection

	if err := c.ShouldBindJSON(&selection); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	c.JSON(http.StatusOK, services.ClearFilters(selection))
}
