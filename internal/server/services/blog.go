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

const (
	defaultPageSize    = 20
	readingHistorySize = 50
)

// BlogService implements article CRUD, the like/favorite marks, view counting
// and the per-user reading history.
type BlogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewBlogService(db *sql.DB, m repomanager.RepositoryManager) *BlogService {
	return &BlogService{db: db, repomanager: m}
}

func (s *BlogService) Create(ctx context.Context, authorID int64, title, subtitle, content string) (*models.Blog, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", common.ErrorValidation)
	}

	blog := &models.Blog{AuthorID: authorID, Title: title, Subtitle: subtitle, Content: content}
	b, err := s.repomanager.Blogs(s.db).Create(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("error creating blog: %w", err)
	}

	author, err := s.repomanager.Users(s.db).GetSummary(ctx, authorID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	b.Author = *author
	return b, nil
}

// Get returns the blog and counts a view. An authenticated read also lands in
// the viewer's reading history.
func (s *BlogService) Get(ctx context.Context, id, viewerID int64) (*models.Blog, error) {
	repo := s.repomanager.Blogs(s.db)

	b, err := repo.GetByID(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}

	if err := repo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	b.ViewsCount++

	if viewerID != 0 {
		if err := repo.RecordReading(ctx, viewerID, id); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (s *BlogService) List(ctx context.Context, viewerID int64, skip, limit int) ([]models.Blog, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}
	return s.repomanager.Blogs(s.db).List(ctx, viewerID, limit, skip)
}

// Update modifies a blog owned by userID. Editing someone else's blog yields
// common.ErrorForbidden.
func (s *BlogService) Update(ctx context.Context, id, userID int64, title, subtitle, content string) (*models.Blog, error) {
	repo := s.repomanager.Blogs(s.db)

	b, err := repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if b.AuthorID != userID {
		return nil, common.ErrorForbidden
	}

	if title != "" {
		b.Title = title
	}
	if subtitle != "" {
		b.Subtitle = subtitle
	}
	if content != "" {
		b.Content = content
	}

	if err := repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BlogService) Delete(ctx context.Context, id, userID int64) error {
	repo := s.repomanager.Blogs(s.db)

	b, err := repo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if b.AuthorID != userID {
		return common.ErrorForbidden
	}

	return repo.Delete(ctx, id)
}

func (s *BlogService) ListByAuthor(ctx context.Context, authorID, viewerID int64) ([]models.Blog, error) {
	return s.repomanager.Blogs(s.db).ListByAuthor(ctx, authorID, viewerID)
}

func (s *BlogService) ListLiked(ctx context.Context, userID int64) ([]models.Blog, error) {
	return s.repomanager.Blogs(s.db).ListLiked(ctx, userID)
}

func (s *BlogService) ListFavorited(ctx context.Context, userID int64) ([]models.Blog, error) {
	return s.repomanager.Blogs(s.db).ListFavorited(ctx, userID)
}

func (s *BlogService) ReadingHistory(ctx context.Context, userID int64) ([]models.Blog, error) {
	return s.repomanager.Blogs(s.db).ListReading(ctx, userID, readingHistorySize)
}

// Like marks the blog and returns its fresh state. A repeat like yields
// ErrAlreadyLiked.
func (s *BlogService) Like(ctx context.Context, userID, blogID int64) (*models.Blog, error) {
	return s.mark(ctx, userID, blogID, s.repomanager.Blogs(s.db).Like, ErrAlreadyLiked)
}

func (s *BlogService) Unlike(ctx context.Context, userID, blogID int64) (*models.Blog, error) {
	return s.mark(ctx, userID, blogID, s.repomanager.Blogs(s.db).Unlike, ErrNotLiked)
}

func (s *BlogService) Favorite(ctx context.Context, userID, blogID int64) (*models.Blog, error) {
	return s.mark(ctx, userID, blogID, s.repomanager.Blogs(s.db).Favorite, ErrAlreadyFavorited)
}

func (s *BlogService) Unfavorite(ctx context.Context, userID, blogID int64) (*models.Blog, error) {
	return s.mark(ctx, userID, blogID, s.repomanager.Blogs(s.db).Unfavorite, ErrNotFavorited)
}

func (s *BlogService) mark(ctx context.Context, userID, blogID int64,
	op func(context.Context, int64, int64) error, dup error) (*models.Blog, error) {

	repo := s.repomanager.Blogs(s.db)

	if _, err := repo.GetByID(ctx, blogID, userID); err != nil {
		return nil, err
	}

	if err := op(ctx, userID, blogID); err != nil {
		if errors.Is(err, common.ErrorConflict) || errors.Is(err, common.ErrorNotFound) {
			return nil, dup
		}
		return nil, err
	}

	return repo.GetByID(ctx, blogID, userID)
}
