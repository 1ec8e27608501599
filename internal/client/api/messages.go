package api

import (
	"context"
	"fmt"

	"github.com/inkspot/inkspot/internal/client/models"
)

type messageCreate struct {
	ReceiverID int64  `json:"receiver_id"`
	Content    string `json:"content"`
}

type unreadCount struct {
	Count int `json:"count"`
}

func (c *Client) SendMessage(ctx context.Context, receiverID int64, content string) (*models.Message, error) {
	var m models.Message
	if err := c.post(ctx, "/messages", messageCreate{ReceiverID: receiverID, Content: content}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Conversations lists the inbox: one row per peer with the latest message.
func (c *Client) Conversations(ctx context.Context) ([]models.Conversation, error) {
	var convs []models.Conversation
	if err := c.get(ctx, "/messages", nil, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

// Conversation returns the full thread with one user, oldest first.
// There is no push transport; callers poll this.
func (c *Client) Conversation(ctx context.Context, userID int64) ([]models.Message, error) {
	var msgs []models.Message
	if err := c.get(ctx, fmt.Sprintf("/messages/%d", userID), nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) MarkMessageRead(ctx context.Context, id int64) (*models.Message, error) {
	var m models.Message
	if err := c.put(ctx, fmt.Sprintf("/messages/%d/read", id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var uc unreadCount
	if err := c.get(ctx, "/messages/unread/count", nil, &uc); err != nil {
		return 0, err
	}
	return uc.Count, nil
}
