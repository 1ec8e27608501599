package users

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (username, email, password_hash)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, avatar, bio, created_at FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Avatar, &user.Bio, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT u.id, u.username, u.email, u.avatar, u.bio, u.created_at,
		        (SELECT count(*) FROM follows WHERE followee_id = u.id) AS followers_count,
		        (SELECT count(*) FROM follows WHERE follower_id = u.id) AS following_count,
		        (SELECT count(*) FROM blogs WHERE author_id = u.id) AS blogs_count
		 FROM users u
		 WHERE u.id = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Avatar, &user.Bio, &user.CreatedAt,
		&user.FollowersCount, &user.FollowingCount, &user.BlogsCount)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetSummary(ctx context.Context, id int64) (*models.UserSummary, error) {
	query :=
		`SELECT id, username, avatar FROM users
		 WHERE id = $1
		 `

	s := &models.UserSummary{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Username, &s.Avatar)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`UPDATE users SET username = $2, bio = $3, avatar = $4
		 WHERE id = $1
		 RETURNING email, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.Bio, user.Avatar).Scan(&user.Email, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) UpdateAvatar(ctx context.Context, userID int64, avatar string) error {
	query :=
		`UPDATE users SET avatar = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, userID, avatar)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Followers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	query :=
		`SELECT u.id, u.username, u.avatar
		 FROM follows f JOIN users u ON u.id = f.follower_id
		 WHERE f.followee_id = $1
		 ORDER BY f.created_at DESC
		 `
	return r.querySummaries(ctx, query, userID)
}

func (r *PostgresRepository) Following(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	query :=
		`SELECT u.id, u.username, u.avatar
		 FROM follows f JOIN users u ON u.id = f.followee_id
		 WHERE f.follower_id = $1
		 ORDER BY f.created_at DESC
		 `
	return r.querySummaries(ctx, query, userID)
}

// Follow reports common.ErrorConflict when the relation already exists.
func (r *PostgresRepository) Follow(ctx context.Context, followerID, followeeID int64) error {
	query :=
		`INSERT INTO follows (follower_id, followee_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorConflict
	}
	return nil
}

func (r *PostgresRepository) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	query :=
		`DELETE FROM follows
		 WHERE follower_id = $1 AND followee_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	query :=
		`SELECT EXISTS (
		   SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2
		 )`

	var following bool
	if err := r.db.QueryRowContext(ctx, query, followerID, followeeID).Scan(&following); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return following, nil
}

func (r *PostgresRepository) querySummaries(ctx context.Context, query string, args ...any) ([]models.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.UserSummary
	for rows.Next() {
		var s models.UserSummary
		if err := rows.Scan(&s.ID, &s.Username, &s.Avatar); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
