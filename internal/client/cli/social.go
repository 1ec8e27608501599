package cli

import (
	"context"
	"fmt"
)

// Profile shows the authenticated profile. The guard admits on the cached
// identity; the Me call refreshes it and is the server's word on the matter.
func (a *App) Profile(ctx context.Context) error {
	return a.requireAuth(ctx, "/profile", func(ctx context.Context) error {
		u, err := a.api.Me(ctx)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}

		printlnFn(fmt.Sprintf("%s <%s>", u.Username, u.Email))
		if u.Bio != "" {
			printlnFn(u.Bio)
		}
		printlnFn(fmt.Sprintf("articles %d · followers %d · following %d", u.BlogsCount, u.FollowersCount, u.FollowingCount))
		return nil
	})
}

func (a *App) Follow(ctx context.Context, userID int64) error {
	return a.requireAuth(ctx, fmt.Sprintf("/user/%d", userID), func(ctx context.Context) error {
		if err := a.api.Follow(ctx, userID); err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("Now following user %d", userID))
		return nil
	})
}

func (a *App) Unfollow(ctx context.Context, userID int64) error {
	return a.requireAuth(ctx, fmt.Sprintf("/user/%d", userID), func(ctx context.Context) error {
		if err := a.api.Unfollow(ctx, userID); err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("Unfollowed user %d", userID))
		return nil
	})
}
