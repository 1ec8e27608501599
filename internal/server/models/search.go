package models

import "time"

type SearchHistory struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Keyword   string    `json:"keyword"`
	CreatedAt time.Time `json:"created_at"`
}
