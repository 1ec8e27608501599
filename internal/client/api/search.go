package api

import (
	"context"
	"net/url"

	"github.com/inkspot/inkspot/internal/client/models"
)

type searchRecord struct {
	Keyword string `json:"keyword"`
}

func (c *Client) SearchBlogs(ctx context.Context, keyword string) ([]models.Blog, error) {
	q := url.Values{}
	q.Set("keyword", keyword)

	var blogs []models.Blog
	if err := c.get(ctx, "/search/blogs", q, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// SearchHistory returns the user's recent search keywords. Without a stored
// credential the call would be a guaranteed 401 and would tear the session
// down for nothing, so it short-circuits to an empty result instead.
func (c *Client) SearchHistory(ctx context.Context) ([]models.SearchHistory, error) {
	if !c.hasCredential(ctx) {
		return []models.SearchHistory{}, nil
	}

	var history []models.SearchHistory
	if err := c.get(ctx, "/search/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// RecordSearch saves a keyword to the history. Skipped entirely for
// unauthenticated users, same reasoning as SearchHistory.
func (c *Client) RecordSearch(ctx context.Context, keyword string) error {
	if !c.hasCredential(ctx) {
		return nil
	}
	return c.post(ctx, "/search", searchRecord{Keyword: keyword}, nil)
}
