// Package session owns the client's credential and the cached profile blob.
// The store is the single source of truth for "is the user logged in": the
// token is written at login, cleared at logout and whenever the server
// answers 401. Every read goes back to storage; there is no in-memory cache.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/inkspot/inkspot/internal/client/models"
)

const (
	tokenKey    = "token"
	identityKey = "identity"
)

var (
	// ErrInvalidCredential is returned when an empty or whitespace-only
	// token is offered for storage. Nothing is written in that case.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrCorruptIdentity means the cached profile blob exists but is not
	// valid JSON. Callers should treat the session as not authenticated.
	ErrCorruptIdentity = errors.New("corrupt identity blob")
)

// Store persists the bearer token and the advisory identity blob.
// The identity blob is UI sugar only; the backend stays authoritative.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// SetToken trims and persists the credential, overwriting any prior value.
// A value that is empty after trimming is rejected with ErrInvalidCredential.
func (s *Store) SetToken(ctx context.Context, raw string) error {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ErrInvalidCredential
	}
	return s.kv.Set(ctx, tokenKey, []byte(token))
}

// Token returns the stored credential, or "" if none is stored. The value is
// trimmed again on the way out; older writers were not always careful.
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.kv.Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(v)), nil
}

// SetIdentity caches the profile blob next to the token.
func (s *Store) SetIdentity(ctx context.Context, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}
	return s.kv.Set(ctx, identityKey, b)
}

// Identity returns the cached profile, (nil, nil) when none is cached, or
// ErrCorruptIdentity when the blob cannot be decoded.
func (s *Store) Identity(ctx context.Context) (*models.User, error) {
	v, err := s.kv.Get(ctx, identityKey)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptIdentity, err)
	}
	return &u, nil
}

// Clear removes the token and the identity blob. Clearing an already-empty
// store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Clear(ctx)
}
