// Package models holds the server-side resource structs. The JSON tags define
// the wire format consumed by the CLI client.
package models

import "time"

// UserSummary is the short author/sender form embedded in other resources.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	BlogsCount     int `json:"blogs_count"`
}

// Summary trims a full profile down to the embedded form.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}
