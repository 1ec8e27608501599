// Package models defines the JSON shapes the backend returns to the client.
// The structures mirror the wire format and carry no behavior.
package models

import "time"

// UserSummary is the short author/sender form embedded in other resources.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Avatar         string    `json:"avatar,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	BlogsCount     int       `json:"blogs_count"`
}
