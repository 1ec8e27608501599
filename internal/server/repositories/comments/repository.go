package comments

import (
	"context"

	"github.com/inkspot/inkspot/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	GetByID(ctx context.Context, id, viewerID int64) (*models.Comment, error)
	ListByBlog(ctx context.Context, blogID, viewerID int64) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, userID, commentID int64) error
	Unlike(ctx context.Context, userID, commentID int64) error
}
