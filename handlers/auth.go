package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"train-booking/models"
	"train-booking/services"
)

// Register creates an account
func Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	user, err := services.Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login exchanges credentials for a token
func Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	resp, err := services.Login(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me echoes the authenticated user id
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
}
