package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"train-booking/config"
	"train-booking/database"
	"train-booking/logger"
	"train-booking/metrics"
	"train-booking/models"
)

const (
	routeWaitlist = "waitlist"
	routeModel    = "model"

	historyLimit = 20
)

// ErrAssistantUnavailable is returned when free text cannot be forwarded to the model
var ErrAssistantUnavailable = errors.New("assistant model is not configured")

var (
	cfg        *config.Config
	httpClient = &http.Client{Timeout: 30 * time.Second}
)

// InitAIService initializes the AI service with configuration
func InitAIService(config *config.Config) {
	cfg = config
}

// ProcessMessage answers a chat message. Waitlist questions get the scripted
// estimate; anything else goes to the model with the session's recent history.
func ProcessMessage(ctx context.Context, sessionID, message string) (*models.ChatResponse, error) {
	log := logger.GetLogger()

	var history []models.ConversationHistory
	position, isWaitlist, found := ParseWaitlistQuery(message)
	if !isWaitlist {
		var err error
		history, err = loadConversationHistory(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load conversation history: %w", err)
		}
	}

	if err := saveMessage(ctx, sessionID, "user", message, ""); err != nil {
		log.Warnw("Failed to save user message", "session_id", sessionID, "error", err)
	}

	response := &models.ChatResponse{Success: true}
	route := routeModel
	if isWaitlist {
		route = routeWaitlist
		response.Message, response.Waitlist = waitlistReply(position, found)
	} else {
		reply, err := callGemini(ctx, history, message)
		if err != nil {
			metrics.Default.ErrorsCount.WithLabelValues("assistant").Inc()
			return nil, fmt.Errorf("AI provider error: %w", err)
		}
		response.Message = reply
	}
	metrics.Default.ChatMessages.WithLabelValues(route).Inc()

	if err := saveMessage(ctx, sessionID, "assistant", response.Message, route); err != nil {
		log.Warnw("Failed to save assistant message", "session_id", sessionID, "error", err)
	}

	return response, nil
}

// Ask is the stateless plain text variant used by the chat widget
func Ask(ctx context.Context, prompt string) (string, error) {
	if position, isWaitlist, found := ParseWaitlistQuery(prompt); isWaitlist {
		metrics.Default.ChatMessages.WithLabelValues(routeWaitlist).Inc()
		reply, _ := waitlistReply(position, found)
		return reply, nil
	}
	reply, err := callGemini(ctx, nil, prompt)
	if err != nil {
		metrics.Default.ErrorsCount.WithLabelValues("assistant").Inc()
		return "", err
	}
	metrics.Default.ChatMessages.WithLabelValues(routeModel).Inc()
	return reply, nil
}

func saveMessage(ctx context.Context, sessionID, role, message, route string) error {
	_, err := database.GetDB().ExecContext(ctx, `
		INSERT INTO conversation_history (session_id, role, message, route)
		VALUES ($1, $2, $3, $4)
	`, sessionID, role, message, route)
	return err
}

// loadConversationHistory loads recent conversation history in chronological order
func loadConversationHistory(ctx context.Context, sessionID string) ([]models.ConversationHistory, error) {
	rows, err := database.GetDB().QueryContext(ctx, `
		SELECT id, session_id, role, message, route, timestamp
		FROM conversation_history
		WHERE session_id = $1
		ORDER BY timestamp DESC
		LIMIT $2
	`, sessionID, historyLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.ConversationHistory
	for rows.Next() {
		var h models.ConversationHistory
		if err := rows.Scan(&h.ID, &h.SessionID, &h.Role, &h.Message, &h.Route, &h.Timestamp); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := 0; i < len(history)/2; i++ {
		j := len(history) - i - 1
		history[i], history[j] = history[j], history[i]
	}
	return history, nil
}

func buildSystemPrompt() string {
	return fmt.Sprintf(`You are the assistant of an Indian Railways ticket booking site.

Current date: %s

You help travellers find trains between stations, explain travel classes
(1A, 2A, 3A, SL, 2S, CC, Executive Class), quotas (General, Ladies, Tatkal,
Premium Tatkal), fares and the booking process. A fare is the class price times
the number of passengers, plus catering (120 per passenger, 150 in Executive
Class), 5%% GST on the base fare and a fixed convenience fee of 30.

Keep answers short and friendly. If you do not know a train's live status or
seat availability, say so instead of guessing.`, time.Now().Format("2006-01-02"))
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// callGemini calls the generateContent endpoint of the configured model
func callGemini(ctx context.Context, history []models.ConversationHistory, userMessage string) (string, error) {
	if cfg == nil || cfg.GeminiAPIKey == "" {
		return "", ErrAssistantUnavailable
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, h := range history {
		role := "user"
		if h.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: h.Message}}})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: userMessage}}})

	body, err := json.Marshal(geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: buildSystemPrompt()}}},
		Contents:          contents,
	})
	if err != nil {
		return "", err
	}

	apiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(cfg.GeminiBaseURL, "/"), url.PathEscape(cfg.GeminiModel), url.QueryEscape(cfg.GeminiAPIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}
