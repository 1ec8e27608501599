package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/inkspot/inkspot/internal/common"
	"github.com/inkspot/inkspot/internal/dbx"
	"github.com/inkspot/inkspot/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// $1 is always the viewer id, 0 for anonymous.
const commentColumns = `
	c.id, c.blog_id, c.content, c.parent_id, c.created_at,
	u.id, u.username, u.avatar,
	(SELECT count(*) FROM comment_likes WHERE comment_id = c.id) AS likes_count,
	EXISTS (SELECT 1 FROM comment_likes WHERE comment_id = c.id AND user_id = $1) AS is_liked`

func scanComment(row interface{ Scan(...any) error }) (*models.Comment, error) {
	c := &models.Comment{}
	err := row.Scan(
		&c.ID, &c.BlogID, &c.Content, &c.ParentID, &c.CreatedAt,
		&c.User.ID, &c.User.Username, &c.User.Avatar,
		&c.LikesCount, &c.IsLiked)
	if err != nil {
		return nil, err
	}
	c.UserID = c.User.ID
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {

	query :=
		`INSERT INTO comments (blog_id, user_id, parent_id, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		comment.BlogID, comment.UserID, comment.ParentID, comment.Content).Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return comment, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, viewerID int64) (*models.Comment, error) {
	query :=
		`SELECT ` + commentColumns + `
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.id = $2
		 `

	c, err := scanComment(r.db.QueryRowContext(ctx, query, viewerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListByBlog(ctx context.Context, blogID, viewerID int64) ([]models.Comment, error) {
	query :=
		`SELECT ` + commentColumns + `
		 FROM comments c JOIN users u ON u.id = c.user_id
		 WHERE c.blog_id = $2
		 ORDER BY c.created_at ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, viewerID, blogID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, comment *models.Comment) error {
	query :=
		`UPDATE comments SET content = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, comment.ID, comment.Content)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM comments WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Like reports common.ErrorConflict when the comment is already liked.
func (r *PostgresRepository) Like(ctx context.Context, userID, commentID int64) error {
	query :=
		`INSERT INTO comment_likes (user_id, comment_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, userID, commentID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorConflict
	}
	return nil
}

func (r *PostgresRepository) Unlike(ctx context.Context, userID, commentID int64) error {
	query :=
		`DELETE FROM comment_likes
		 WHERE user_id = $1 AND comment_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, userID, commentID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
