package api

import (
	"context"

	"github.com/inkspot/inkspot/internal/client/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

// Register creates a new account. It does not log the user in.
func (c *Client) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	var u models.User
	if err := c.post(ctx, "/auth/register", registerRequest{Username: username, Email: email, Password: password}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges credentials for a bearer token and persists both the token
// and the advisory identity blob. A blank token in the response is rejected
// by the store before anything is written.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp loginResponse
	if err := c.post(ctx, "/auth/token", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	if err := c.session.SetToken(ctx, resp.AccessToken); err != nil {
		return nil, err
	}
	if err := c.session.SetIdentity(ctx, &resp.User); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Logout discards the local session. The backend keeps no server-side
// session state for bearer tokens, so no call is made.
func (c *Client) Logout(ctx context.Context) error {
	return c.session.Clear(ctx)
}
