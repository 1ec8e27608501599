package blogs

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

// blogColumns is the shared projection. $1 is always the viewer id (0 for
// anonymous), so is_liked/is_favorited resolve to false when nobody is
// logged in.
const blogColumns = `
	b.id, b.title, b.subtitle, b.content, b.created_at, b.updated_at, b.views_count,
	u.id, u.username, u.avatar,
	(SELECT count(*) FROM blog_likes WHERE blog_id = b.id) AS likes_count,
	(SELECT count(*) FROM blog_favorites WHERE blog_id = b.id) AS favorites_count,
	EXISTS (SELECT 1 FROM blog_likes WHERE blog_id = b.id AND user_id = $1) AS is_liked,
	EXISTS (SELECT 1 FROM blog_favorites WHERE blog_id = b.id AND user_id = $1) AS is_favorited`

func scanBlog(row interface{ Scan(...any) error }) (*models.Blog, error) {
	b := &models.Blog{}
	err := row.Scan(
		&b.ID, &b.Title, &b.Subtitle, &b.Content, &b.CreatedAt, &b.UpdatedAt, &b.ViewsCount,
		&b.Author.ID, &b.Author.Username, &b.Author.Avatar,
		&b.LikesCount, &b.FavoritesCount, &b.IsLiked, &b.IsFavorited)
	if err != nil {
		return nil, err
	}
	b.AuthorID = b.Author.ID
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {

	query :=
		`INSERT INTO blogs (author_id, title, subtitle, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		blog.AuthorID, blog.Title, blog.Subtitle, blog.Content).Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return blog, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, viewerID int64) (*models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + `
		 FROM blogs b JOIN users u ON u.id = b.author_id
		 WHERE b.id = $2
		 `

	b, err := scanBlog(r.db.QueryRowContext(ctx, query, viewerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) List(ctx context.Context, viewerID int64, limit, offset int) ([]models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + `
		 FROM blogs b JOIN users u ON u.id = b.author_id
		 ORDER BY b.created_at DESC
		 LIMIT $2 OFFSET $3
		 `
	return r.queryBlogs(ctx, query, viewerID, limit, offset)
}

func (r *PostgresRepository) ListByAuthor(ctx context.Context, authorID, viewerID int64) ([]models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + `
		 FROM blogs b JOIN users u ON u.id = b.author_id
		 WHERE b.author_id = $2
		 ORDER BY b.created_at DESC
		 `
	return r.queryBlogs(ctx, query, viewerID, authorID)
}

func (r *PostgresRepository) ListLiked(ctx context.Context, userID int64) ([]models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + `
		 FROM blog_likes l
		 JOIN blogs b ON b.id = l.blog_id
		 JOIN users u ON u.id = b.author_id
		 WHERE l.user_id = $1
		 ORDER BY l.created_at DESC
		 `
	return r.queryBlogs(ctx, query, userID)
}

func (r *PostgresRepository) ListFavorited(ctx context.Context, userID int64) ([]models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + `
		 FROM blog_favorites f
		 JOIN blogs b ON b.id = f.blog_id
		 JOIN users u ON u.id = b.author_id
		 WHERE f.user_id = $1
		 ORDER BY f.created_at DESC
		 `
	return r.queryBlogs(ctx, query, userID)
}

func (r *PostgresRepository) ListPopular(ctx context.Context, limit int) ([]models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + `
		 FROM blogs b JOIN users u ON u.id = b.author_id
		 ORDER BY b.views_count DESC, b.created_at DESC
		 LIMIT $2
		 `
	return r.queryBlogs(ctx, query, int64(0), limit)
}

func (r *PostgresRepository) Search(ctx context.Context, keyword string, viewerID int64, limit int) ([]models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + `
		 FROM blogs b JOIN users u ON u.id = b.author_id
		 WHERE b.title ILIKE $2 OR b.subtitle ILIKE $2 OR b.content ILIKE $2
		 ORDER BY b.created_at DESC
		 LIMIT $3
		 `
	return r.queryBlogs(ctx, query, viewerID, "%"+keyword+"%", limit)
}

func (r *PostgresRepository) Update(ctx context.Context, blog *models.Blog) error {
	query :=
		`UPDATE blogs SET title = $2, subtitle = $3, content = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		blog.ID, blog.Title, blog.Subtitle, blog.Content).Scan(&blog.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM blogs WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Like(ctx context.Context, userID, blogID int64) error {
	return r.insertMark(ctx, "blog_likes", "blog_id", userID, blogID)
}

func (r *PostgresRepository) Unlike(ctx context.Context, userID, blogID int64) error {
	return r.deleteMark(ctx, "blog_likes", "blog_id", userID, blogID)
}

func (r *PostgresRepository) Favorite(ctx context.Context, userID, blogID int64) error {
	return r.insertMark(ctx, "blog_favorites", "blog_id", userID, blogID)
}

func (r *PostgresRepository) Unfavorite(ctx context.Context, userID, blogID int64) error {
	return r.deleteMark(ctx, "blog_favorites", "blog_id", userID, blogID)
}

func (r *PostgresRepository) IncrementViews(ctx context.Context, id int64) error {
	query :=
		`UPDATE blogs SET views_count = views_count + 1
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RecordReading(ctx context.Context, userID, blogID int64) error {
	query :=
		`INSERT INTO reading_history (user_id, blog_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, blog_id) DO UPDATE SET read_at = now()
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, blogID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListReading(ctx context.Context, userID int64, limit int) ([]models.Blog, error) {
	query :=
		`SELECT ` + blogColumns + `
		 FROM reading_history h
		 JOIN blogs b ON b.id = h.blog_id
		 JOIN users u ON u.id = b.author_id
		 WHERE h.user_id = $1
		 ORDER BY h.read_at DESC
		 LIMIT $2
		 `
	return r.queryBlogs(ctx, query, userID, limit)
}

// insertMark reports common.ErrorConflict when the mark already exists.
func (r *PostgresRepository) insertMark(ctx context.Context, table, col string, userID, id int64) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (user_id, %s)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `, table, col)

	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorConflict
	}
	return nil
}

func (r *PostgresRepository) deleteMark(ctx context.Context, table, col string, userID, id int64) error {
	query := fmt.Sprintf(
		`DELETE FROM %s
		 WHERE user_id = $1 AND %s = $2
		 `, table, col)

	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) queryBlogs(ctx context.Context, query string, args ...any) ([]models.Blog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
