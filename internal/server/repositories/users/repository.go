package users

import (
	"context"

	"github.com/inkspot/inkspot/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetSummary(ctx context.Context, id int64) (*models.UserSummary, error)
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID int64, avatar string) error
	Followers(ctx context.Context, userID int64) ([]models.UserSummary, error)
	Following(ctx context.Context, userID int64) ([]models.UserSummary, error)
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
}
