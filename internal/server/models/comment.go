package models

import "time"

type Comment struct {
	ID         int64       `json:"id"`
	BlogID     int64       `json:"blog_id"`
	Content    string      `json:"content"`
	ParentID   *int64      `json:"parent_id,omitempty"`
	UserID     int64       `json:"-"`
	User       UserSummary `json:"user"`
	CreatedAt  time.Time   `json:"created_at"`
	LikesCount int         `json:"likes_count"`
	IsLiked    bool        `json:"is_liked"`
}
