package api

import (
	"context"
	"fmt"

	"github.com/inkspot/inkspot/internal/client/models"
)

type ProfileUpdate struct {
	Username string `json:"username,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type followStatus struct {
	IsFollowing bool `json:"is_following"`
}

// UploadTicket is a presigned PUT the caller uses to upload an avatar image
// directly to object storage, then records the key on the profile.
type UploadTicket struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Me fetches the authenticated profile and refreshes the cached identity
// blob so the advisory copy does not drift from server truth.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	if err := c.session.SetIdentity(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) User(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.put(ctx, "/users/me", in, &u); err != nil {
		return nil, err
	}
	if err := c.session.SetIdentity(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Followers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	var users []models.UserSummary
	if err := c.get(ctx, fmt.Sprintf("/users/%d/followers", userID), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) Following(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	var users []models.UserSummary
	if err := c.get(ctx, fmt.Sprintf("/users/%d/following", userID), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) Follow(ctx context.Context, userID int64) error {
	return c.post(ctx, fmt.Sprintf("/users/%d/follow", userID), nil, nil)
}

func (c *Client) Unfollow(ctx context.Context, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d/follow", userID))
}

func (c *Client) IsFollowing(ctx context.Context, userID int64) (bool, error) {
	var st followStatus
	if err := c.get(ctx, fmt.Sprintf("/users/%d/is_following", userID), nil, &st); err != nil {
		return false, err
	}
	return st.IsFollowing, nil
}

// AvatarUploadURL asks the backend for a presigned PUT for a new avatar.
func (c *Client) AvatarUploadURL(ctx context.Context) (*UploadTicket, error) {
	var t UploadTicket
	if err := c.post(ctx, "/users/me/avatar", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
