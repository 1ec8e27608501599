// Package guard gates entry into screens that need an authenticated session.
// It is a fast local check over the session store, not a substitute for the
// server's own authorization: a screen admitted here can still receive a 401
// from any data fetch and must handle it.
package guard

import (
	"context"
	"errors"
	"net/url"

	"github.com/inkspot/inkspot/internal/client/models"
	"github.com/inkspot/inkspot/internal/client/session"
)

type State string

const (
	// StateChecking is the initial state of every activation.
	StateChecking State = "checking"
	// StateAuthorized admits the screen, with the advisory identity attached.
	StateAuthorized State = "authorized"
	// StateRedirecting sends the user to the login screen. Terminal for this
	// activation; a fresh Check starts over at StateChecking.
	StateRedirecting State = "redirecting"
)

const loginPath = "/auth"

// Decision is the outcome of one guard activation.
type Decision struct {
	State State

	// Identity is the cached profile blob, set when authorized and a blob is
	// cached. Advisory only; the backend stays authoritative.
	Identity *models.User

	// RedirectTo carries the login path with the originally requested
	// destination, so the login flow can return the user there.
	RedirectTo string
}

type Guard struct {
	store *session.Store
}

func New(store *session.Store) *Guard {
	return &Guard{store: store}
}

// Check runs one activation for the given destination. A missing credential
// redirects. A cached identity blob that fails to parse counts as "not
// authenticated": the credential is cleared (the local cache is corrupt and
// cannot be trusted) and the user is redirected.
func (g *Guard) Check(ctx context.Context, dest string) (Decision, error) {
	tok, err := g.store.Token(ctx)
	if err != nil {
		return Decision{State: StateChecking}, err
	}
	if tok == "" {
		return g.redirect(dest), nil
	}

	identity, err := g.store.Identity(ctx)
	if err != nil {
		if errors.Is(err, session.ErrCorruptIdentity) {
			_ = g.store.Clear(ctx)
			return g.redirect(dest), nil
		}
		return Decision{State: StateChecking}, err
	}

	return Decision{State: StateAuthorized, Identity: identity}, nil
}

func (g *Guard) redirect(dest string) Decision {
	to := loginPath
	if dest != "" {
		to += "?next=" + url.QueryEscape(dest)
	}
	return Decision{State: StateRedirecting, RedirectTo: to}
}
