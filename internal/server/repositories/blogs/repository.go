package blogs

import (
	"context"

	"github.com/inkspot/inkspot/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	GetByID(ctx context.Context, id, viewerID int64) (*models.Blog, error)
	List(ctx context.Context, viewerID int64, limit, offset int) ([]models.Blog, error)
	ListByAuthor(ctx context.Context, authorID, viewerID int64) ([]models.Blog, error)
	ListLiked(ctx context.Context, userID int64) ([]models.Blog, error)
	ListFavorited(ctx context.Context, userID int64) ([]models.Blog, error)
	ListPopular(ctx context.Context, limit int) ([]models.Blog, error)
	Search(ctx context.Context, keyword string, viewerID int64, limit int) ([]models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, userID, blogID int64) error
	Unlike(ctx context.Context, userID, blogID int64) error
	Favorite(ctx context.Context, userID, blogID int64) error
	Unfavorite(ctx context.Context, userID, blogID int64) error
	IncrementViews(ctx context.Context, id int64) error
	RecordReading(ctx context.Context, userID, blogID int64) error
	ListReading(ctx context.Context, userID int64, limit int) ([]models.Blog, error)
}
