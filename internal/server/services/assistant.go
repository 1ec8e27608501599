package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/inkspot/inkspot/internal/common"
	sc "github.com/inkspot/inkspot/internal/server/config"
	"github.com/inkspot/inkspot/internal/server/models"
	"github.com/inkspot/inkspot/internal/server/repositories/repomanager"
)

const recommendedLimit = 5

// Suggestion is one proposed article angle produced by the writing assistant.
type Suggestion struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// AssistantService proxies writing-suggestion prompts to an upstream
// chat-completion API and serves article recommendations from view counts.
type AssistantService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	http        *http.Client
}

func NewAssistantService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *AssistantService {
	return &AssistantService{
		db:          db,
		repomanager: m,
		config:      config,
		http:        &http.Client{Timeout: 30 * time.Second},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const suggestionPrompt = `Propose three blog article ideas about the topic below.
Respond with a JSON array only; each element has "title", "summary" and
"keywords" (a list of strings). Topic: %s`

// Suggestions asks the upstream model for article ideas on a topic. The
// upstream response content must be a JSON array of suggestions.
func (s *AssistantService) Suggestions(ctx context.Context, topic string) ([]Suggestion, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is required", common.ErrorValidation)
	}

	payload, err := json.Marshal(chatRequest{
		Model: s.config.AssistantModel,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(suggestionPrompt, topic)},
		},
	})
	if err != nil {
		return nil, common.ErrorInternal
	}

	url := strings.TrimRight(s.config.AssistantBaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, common.ErrorInternal
	}
	req.Header.Set("Content-Type", "application/json")
	if s.config.AssistantAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.config.AssistantAPIKey)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assistant upstream: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("assistant upstream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assistant upstream: status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("assistant upstream: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("assistant upstream: empty response")
	}

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(cr.Choices[0].Message.Content), &suggestions); err != nil {
		return nil, fmt.Errorf("assistant upstream: malformed suggestions: %w", err)
	}
	return suggestions, nil
}

// Recommended returns the most viewed recent articles.
func (s *AssistantService) Recommended(ctx context.Context) ([]models.Blog, error) {
	return s.repomanager.Blogs(s.db).ListPopular(ctx, recommendedLimit)
}
