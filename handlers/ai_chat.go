package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"train-booking/logger"
	"train-booking/models"
	"train-booking/services"
)

const assistantApology = "I'm sorry, I encountered an error processing your request. Please try again."

// ChatWithAI processes assistant chat messages
func ChatWithAI(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	log := logger.GetLogger()
	log.Debugw("Chat request", "session_id", req.SessionID, "request_id", GetRequestID(c))

	response, err := services.ProcessMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		log.Errorw("Error processing chat message", "session_id", req.SessionID, "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrAssistantUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, models.ChatResponse{
			Success: false,
			Message: assistantApology,
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// AskAssistant answers a single prompt with plain text, as the chat widget expects
func AskAssistant(c *gin.Context) {
	var req models.AskRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "prompt is required")
		return
	}

	reply, err := services.Ask(c.Request.Context(), req.Prompt)
	if err != nil {
		logger.GetLogger().Errorw("Error answering prompt", "request_id", GetRequestID(c), "error", err)
		c.String(http.StatusOK, assistantApology)
		return
	}

	c.String(http.StatusOK, reply)
}

// EstimateWaitlist returns the confirmation chance for a waitlist position
func EstimateWaitlist(c *gin.Context) {
	var req models.WaitlistRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	c.JSON(http.StatusOK, services.EstimateWaitlist(req.Position))
}
