package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/inkspot/inkspot/internal/common"
	"github.com/inkspot/inkspot/internal/dbx"
	"github.com/inkspot/inkspot/internal/server/models"
	"github.com/inkspot/inkspot/internal/server/repositories/repomanager"
)

const (
	searchResultLimit  = 50
	searchHistoryLimit = 100
)

// SearchService implements keyword search over blogs and the per-user search
// history, capped at the newest searchHistoryLimit entries.
type SearchService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSearchService(db *sql.DB, m repomanager.RepositoryManager) *SearchService {
	return &SearchService{db: db, repomanager: m}
}

func (s *SearchService) SearchBlogs(ctx context.Context, keyword string, viewerID int64) ([]models.Blog, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", common.ErrorValidation)
	}
	return s.repomanager.Blogs(s.db).Search(ctx, keyword, viewerID, searchResultLimit)
}

func (s *SearchService) History(ctx context.Context, userID int64) ([]models.SearchHistory, error) {
	return s.repomanager.Search(s.db).List(ctx, userID, searchHistoryLimit)
}

// Record appends a keyword to the user's history and trims the excess in the
// same transaction.
func (s *SearchService) Record(ctx context.Context, userID int64, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return fmt.Errorf("%w: keyword is required", common.ErrorValidation)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Search(tx)
		if _, err := repo.Add(ctx, userID, keyword); err != nil {
			return err
		}
		return repo.Trim(ctx, userID, searchHistoryLimit)
	})
}
