package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/inkspot/inkspot/internal/client/guard"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates the account. The user
// still has to log in afterwards; registration does not issue a token.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.api.Register(ctx, username, email, password); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Account created, you can log in now.")
	return nil
}

// Login prompts for credentials, exchanges them for a token and caches the
// profile. On success the connectivity mode flips to online.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, email, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.setMode(ModeOnline)
	printlnFn(fmt.Sprintf("Welcome back, %s!", user.Username))
	return nil
}

// Logout drops the local session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	a.unread.Store(0)
	printlnFn("Logged out.")
	return nil
}

// requireAuth runs the guard for dest and, when it redirects, sends the user
// through the login flow and retries the activation so they land back on the
// screen they asked for. fn runs only in the authorized state.
func (a *App) requireAuth(ctx context.Context, dest string, fn func(context.Context) error) error {
	d, err := a.guard.Check(ctx, dest)
	if err != nil {
		return err
	}

	if d.State == guard.StateRedirecting {
		printlnFn("Please log in first (" + d.RedirectTo + ")")
		if err := a.Login(ctx); err != nil {
			return err
		}
		d, err = a.guard.Check(ctx, dest)
		if err != nil {
			return err
		}
		if d.State != guard.StateAuthorized {
			return fmt.Errorf("not authenticated")
		}
	}

	return fn(ctx)
}
