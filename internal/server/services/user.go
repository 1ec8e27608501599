// Package services contains server-side business logic. This file implements
// UserService: registration, login, profiles and the follow graph.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/inkspot/inkspot/internal/common"
	"github.com/inkspot/inkspot/internal/server/auth"
	"github.com/inkspot/inkspot/internal/server/config"
	"github.com/inkspot/inkspot/internal/server/models"
	"github.com/inkspot/inkspot/internal/server/repositories/repomanager"
)

// UserService provides account and profile operations:
// - Register: create users with a bcrypt password hash
// - Login: verify credentials and mint an access token
// - profile reads/updates and the follow graph
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new account. The password is stored as a bcrypt hash;
// a duplicate email yields ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Username: username, Email: email, PasswordHash: string(hash)}
	u, err := repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns an access token and
// the profile. A missing account and a wrong password are indistinguishable
// to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	full, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		return "", nil, common.ErrorInternal
	}
	return token, full, nil
}

// Profile returns the full profile with counts.
func (s *UserService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// UpdateProfile applies non-empty fields from the patch onto the stored
// profile and returns the result.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, username, bio, avatar string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username != "" {
		user.Username = username
	}
	if bio != "" {
		user.Bio = bio
	}
	if avatar != "" {
		user.Avatar = avatar
	}

	return repo.UpdateProfile(ctx, user)
}

func (s *UserService) Followers(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	return s.repomanager.Users(s.db).Followers(ctx, userID)
}

func (s *UserService) Following(ctx context.Context, userID int64) ([]models.UserSummary, error) {
	return s.repomanager.Users(s.db).Following(ctx, userID)
}

func (s *UserService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetSummary(ctx, followeeID); err != nil {
		return err
	}

	if err := repo.Follow(ctx, followerID, followeeID); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *UserService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if err := s.repomanager.Users(s.db).Unfollow(ctx, followerID, followeeID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrNotFollowing
		}
		return err
	}
	return nil
}

func (s *UserService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return s.repomanager.Users(s.db).IsFollowing(ctx, followerID, followeeID)
}
