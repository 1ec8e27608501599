package api

import (
	"context"
	"fmt"

	"github.com/inkspot/inkspot/internal/client/models"
)

type CommentCreate struct {
	BlogID   int64  `json:"blog_id"`
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

type commentUpdate struct {
	Content string `json:"content"`
}

func (c *Client) BlogComments(ctx context.Context, blogID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.get(ctx, fmt.Sprintf("/comments/blog/%d", blogID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) CreateComment(ctx context.Context, in CommentCreate) (*models.Comment, error) {
	var cm models.Comment
	if err := c.post(ctx, "/comments", in, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *Client) UpdateComment(ctx context.Context, id int64, content string) (*models.Comment, error) {
	var cm models.Comment
	if err := c.put(ctx, fmt.Sprintf("/comments/%d", id), commentUpdate{Content: content}, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/comments/%d", id))
}

func (c *Client) LikeComment(ctx context.Context, id int64) (*models.Comment, error) {
	var cm models.Comment
	if err := c.post(ctx, fmt.Sprintf("/comments/%d/like", id), nil, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *Client) UnlikeComment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/comments/%d/like", id))
}
