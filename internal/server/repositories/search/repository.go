package search

import (
	"context"

	"github.com/inkspot/inkspot/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, userID int64, keyword string) (*models.SearchHistory, error)
	List(ctx context.Context, userID int64, limit int) ([]models.SearchHistory, error)
	Trim(ctx context.Context, userID int64, keep int) error
}
