package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"train-booking/domain"
	"train-booking/logger"
)

// ErrorResponse standardizes error payloads
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error())
	default:
		logger.GetLogger().Errorw("Request failed",
			"request_id", GetRequestID(c), "path", c.Request.URL.Path, "error", err)
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong, please try again")
	}
}
