package models

import "time"

type Blog struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Subtitle       string      `json:"subtitle,omitempty"`
	Content        string      `json:"content"`
	Author         UserSummary `json:"author"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	LikesCount     int         `json:"likes_count"`
	FavoritesCount int         `json:"favorites_count"`
	ViewsCount     int         `json:"views_count"`

	// IsLiked/IsFavorited reflect the requesting user and are only
	// meaningful on authenticated fetches.
	IsLiked     bool `json:"is_liked"`
	IsFavorited bool `json:"is_favorited"`
}
