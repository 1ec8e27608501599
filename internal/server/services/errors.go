package services

import (
	"fmt"

	"github.com/inkspot/inkspot/internal/common"
)

// Client-facing errors. Each wraps a generic category from internal/common so
// the HTTP layer can derive a status with errors.Is while keeping the
// specific message as the response detail.
var (
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", common.ErrorConflict)
	ErrUsernameTaken      = fmt.Errorf("%w: username already taken", common.ErrorConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: incorrect email or password", common.ErrorUnauthorized)

	ErrAlreadyLiked     = fmt.Errorf("%w: already liked", common.ErrorConflict)
	ErrNotLiked         = fmt.Errorf("%w: not liked", common.ErrorNotFound)
	ErrAlreadyFavorited = fmt.Errorf("%w: already favorited", common.ErrorConflict)
	ErrNotFavorited     = fmt.Errorf("%w: not favorited", common.ErrorNotFound)

	ErrAlreadyFollowing = fmt.Errorf("%w: already following", common.ErrorConflict)
	ErrNotFollowing     = fmt.Errorf("%w: not following", common.ErrorNotFound)
	ErrSelfFollow       = fmt.Errorf("%w: cannot follow yourself", common.ErrorValidation)
	ErrSelfMessage      = fmt.Errorf("%w: cannot message yourself", common.ErrorValidation)
)
