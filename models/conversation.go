package models

import "time"

// ConversationHistory represents a stored conversation message
type ConversationHistory struct {
	ID        int       `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // user, assistant
	Message   string    `json:"message"`
	Route     string    `json:"route"` // waitlist, model
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest represents an incoming chat message
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ChatResponse represents an assistant reply
type ChatResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Waitlist *WaitlistEstimate `json:"waitlist,omitempty"`
}

// AskRequest is the plain prompt sent by the chat widget
type AskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// WaitlistEstimate is the coarse confirmation chance for a waitlist position
type WaitlistEstimate struct {
	Position    int    `json:"position"`
	Probability string `json:"probability"` // e.g. "75%"
	Status      string `json:"status"`      // High Chance, Low Chance
}

// WaitlistRequest asks for an estimate for a known position
type WaitlistRequest struct {
	Position int `json:"position" binding:"required,min=1"`
}
