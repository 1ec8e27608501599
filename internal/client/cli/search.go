package cli

import (
	"context"
)

// Search queries articles by keyword. For logged-in users the keyword also
// lands in their search history; anonymous searches are not recorded.
func (a *App) Search(ctx context.Context, keyword string) error {
	blogs, err := a.api.SearchBlogs(ctx, keyword)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if err := a.api.RecordSearch(ctx, keyword); err != nil {
		a.log.Warn(ctx, "failed to record search", "keyword", keyword, "error", err.Error())
	}

	if len(blogs) == 0 {
		printlnFn("No results.")
		return nil
	}
	for i := range blogs {
		printBlogLine(&blogs[i])
	}
	return nil
}

// Searches prints the saved search history. Empty without a credential.
func (a *App) Searches(ctx context.Context) error {
	history, err := a.api.SearchHistory(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(history) == 0 {
		printlnFn("No search history.")
		return nil
	}
	for _, h := range history {
		printlnFn(h.Keyword)
	}
	return nil
}
