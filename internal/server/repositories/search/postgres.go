package search

import (
	"context"
	"fmt"

	"github.com/inkspot/inkspot/internal/dbx"
	"github.com/inkspot/inkspot/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, userID int64, keyword string) (*models.SearchHistory, error) {

	query :=
		`INSERT INTO search_history (user_id, keyword)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	h := &models.SearchHistory{UserID: userID, Keyword: keyword}
	err := r.db.QueryRowContext(ctx, query, userID, keyword).Scan(&h.ID, &h.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return h, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID int64, limit int) ([]models.SearchHistory, error) {
	query :=
		`SELECT id, keyword, created_at FROM search_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.SearchHistory
	for rows.Next() {
		h := models.SearchHistory{UserID: userID}
		if err := rows.Scan(&h.ID, &h.Keyword, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// Trim drops everything but the user's newest `keep` entries.
func (r *PostgresRepository) Trim(ctx context.Context, userID int64, keep int) error {
	query :=
		`DELETE FROM search_history
		 WHERE user_id = $1 AND id NOT IN (
		   SELECT id FROM search_history
		   WHERE user_id = $1
		   ORDER BY created_at DESC
		   LIMIT $2
		 )`

	if _, err := r.db.ExecContext(ctx, query, userID, keep); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
