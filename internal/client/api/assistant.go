package api

import (
	"context"

	"github.com/inkspot/inkspot/internal/client/models"
)

type topicRequest struct {
	Topic string `json:"topic"`
}

// Suggestion is one AI-generated writing prompt for a topic.
type Suggestion struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords,omitempty"`
}

// WritingSuggestions asks the assistant for article ideas on a topic.
func (c *Client) WritingSuggestions(ctx context.Context, topic string) ([]Suggestion, error) {
	var out []Suggestion
	if err := c.post(ctx, "/ai/generate-suggestions", topicRequest{Topic: topic}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecommendedArticles returns the assistant's reading picks.
func (c *Client) RecommendedArticles(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := c.get(ctx, "/ai/recommended-articles", nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}
