package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/inkspot/inkspot/internal/common"
	"github.com/inkspot/inkspot/internal/server/models"
	"github.com/inkspot/inkspot/internal/server/repositories/repomanager"
)

// CommentService implements the comment tree under blogs plus comment likes.
type CommentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCommentService(db *sql.DB, m repomanager.RepositoryManager) *CommentService {
	return &CommentService{db: db, repomanager: m}
}

func (s *CommentService) ListByBlog(ctx context.Context, blogID, viewerID int64) ([]models.Comment, error) {
	return s.repomanager.Comments(s.db).ListByBlog(ctx, blogID, viewerID)
}

// Create adds a comment, optionally as a reply. The parent must belong to the
// same blog.
func (s *CommentService) Create(ctx context.Context, userID, blogID int64, parentID *int64, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrorValidation)
	}

	repo := s.repomanager.Comments(s.db)

	if _, err := s.repomanager.Blogs(s.db).GetByID(ctx, blogID, userID); err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := repo.GetByID(ctx, *parentID, userID)
		if err != nil {
			return nil, err
		}
		if parent.BlogID != blogID {
			return nil, fmt.Errorf("%w: parent comment belongs to another blog", common.ErrorValidation)
		}
	}

	c := &models.Comment{BlogID: blogID, UserID: userID, ParentID: parentID, Content: content}
	created, err := repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}

	user, err := s.repomanager.Users(s.db).GetSummary(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	created.User = *user
	return created, nil
}

// Update edits a comment owned by userID.
func (s *CommentService) Update(ctx context.Context, id, userID int64, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrorValidation)
	}

	repo := s.repomanager.Comments(s.db)

	c, err := repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, common.ErrorForbidden
	}

	c.Content = content
	if err := repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, id, userID int64) error {
	repo := s.repomanager.Comments(s.db)

	c, err := repo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return common.ErrorForbidden
	}

	return repo.Delete(ctx, id)
}

func (s *CommentService) Like(ctx context.Context, userID, commentID int64) (*models.Comment, error) {
	repo := s.repomanager.Comments(s.db)

	if _, err := repo.GetByID(ctx, commentID, userID); err != nil {
		return nil, err
	}

	if err := repo.Like(ctx, userID, commentID); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	return repo.GetByID(ctx, commentID, userID)
}

func (s *CommentService) Unlike(ctx context.Context, userID, commentID int64) error {
	if err := s.repomanager.Comments(s.db).Unlike(ctx, userID, commentID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrNotLiked
		}
		return err
	}
	return nil
}
