package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/inkspot/inkspot/internal/client/models"
)

type BlogCreate struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Content  string `json:"content"`
}

type BlogUpdate struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Content  string `json:"content,omitempty"`
}

func (c *Client) Blog(ctx context.Context, id int64) (*models.Blog, error) {
	var b models.Blog
	if err := c.get(ctx, fmt.Sprintf("/blogs/%d", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) Blogs(ctx context.Context, skip, limit int) ([]models.Blog, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var blogs []models.Blog
	if err := c.get(ctx, "/blogs", q, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (c *Client) CreateBlog(ctx context.Context, in BlogCreate) (*models.Blog, error) {
	var b models.Blog
	if err := c.post(ctx, "/blogs", in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id int64, in BlogUpdate) (*models.Blog, error) {
	var b models.Blog
	if err := c.put(ctx, fmt.Sprintf("/blogs/%d", id), in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/blogs/%d", id))
}

func (c *Client) MyBlogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := c.get(ctx, "/blogs/user/me", nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (c *Client) MyLikedBlogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := c.get(ctx, "/blogs/user/me/likes", nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (c *Client) MyFavoriteBlogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := c.get(ctx, "/blogs/user/me/favorites", nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// Like/Unlike and Favorite/Unfavorite are separate endpoints on purpose:
// repeated calls have fixed effects and the caller tracks which one applies.
// The updated blog (with fresh counters) comes back on success.

func (c *Client) LikeBlog(ctx context.Context, id int64) (*models.Blog, error) {
	var b models.Blog
	if err := c.post(ctx, fmt.Sprintf("/blogs/%d/like", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UnlikeBlog(ctx context.Context, id int64) (*models.Blog, error) {
	var b models.Blog
	if err := c.post(ctx, fmt.Sprintf("/blogs/%d/unlike", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) FavoriteBlog(ctx context.Context, id int64) (*models.Blog, error) {
	var b models.Blog
	if err := c.post(ctx, fmt.Sprintf("/blogs/%d/favorite", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UnfavoriteBlog(ctx context.Context, id int64) (*models.Blog, error) {
	var b models.Blog
	if err := c.post(ctx, fmt.Sprintf("/blogs/%d/unfavorite", id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ReadingHistory lists the blogs the current user viewed, newest first.
func (c *Client) ReadingHistory(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := c.get(ctx, "/histories/me", nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}
