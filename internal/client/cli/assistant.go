package cli

import (
	"context"
	"fmt"
	"strings"
)

// Suggest asks the writing assistant for article ideas on a topic.
func (a *App) Suggest(ctx context.Context, topic string) error {
	return a.requireAuth(ctx, "/aihelper", func(ctx context.Context) error {
		suggestions, err := a.api.WritingSuggestions(ctx, topic)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}

		for i, s := range suggestions {
			printlnFn(fmt.Sprintf("%d. %s", i+1, s.Title))
			if s.Summary != "" {
				printlnFn("   " + s.Summary)
			}
			if len(s.Keywords) > 0 {
				printlnFn("   keywords: " + strings.Join(s.Keywords, ", "))
			}
		}
		return nil
	})
}

// Recommended prints the assistant's reading picks. Open to everyone.
func (a *App) Recommended(ctx context.Context) error {
	blogs, err := a.api.RecommendedArticles(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for i := range blogs {
		printBlogLine(&blogs[i])
	}
	return nil
}
