package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/inkspot/inkspot/internal/client/api"
	"github.com/inkspot/inkspot/internal/client/models"
)

const feedPageSize = 20

func printBlogLine(b *models.Blog) {
	marks := ""
	if b.IsLiked {
		marks += " ♥"
	}
	if b.IsFavorited {
		marks += " ★"
	}
	printlnFn(fmt.Sprintf("#%d %s - %s (likes %d, views %d)%s",
		b.ID, b.Title, b.Author.Username, b.LikesCount, b.ViewsCount, marks))
}

// Feed lists the newest articles. Works logged out; the like/favorite marks
// only show up on authenticated fetches.
func (a *App) Feed(ctx context.Context) error {
	blogs, err := a.api.Blogs(ctx, 0, feedPageSize)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for i := range blogs {
		printBlogLine(&blogs[i])
	}
	return nil
}

// Read shows one article in full. Viewing an article counts as a read on the
// server side, which feeds the "recent" list.
func (a *App) Read(ctx context.Context, id int64) error {
	b, err := a.api.Blog(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("== " + b.Title + " ==")
	if b.Subtitle != "" {
		printlnFn(b.Subtitle)
	}
	printlnFn(fmt.Sprintf("by %s, %s", b.Author.Username, b.CreatedAt.Format("2006-01-02")))
	printlnFn("")
	printlnFn(b.Content)
	printlnFn("")
	printlnFn(fmt.Sprintf("likes %d · favorites %d · views %d", b.LikesCount, b.FavoritesCount, b.ViewsCount))
	return nil
}

// Compose collects a new article and publishes it.
func (a *App) Compose(ctx context.Context) error {
	return a.requireAuth(ctx, "/post", func(ctx context.Context) error {
		title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
		if err != nil {
			return err
		}
		subtitle, err := getSimpleText(a.reader, "Enter subtitle (optional)", os.Stdout)
		if err != nil {
			return err
		}
		content, err := GetMultiline(a.reader, "Enter article text:", os.Stdout)
		if err != nil {
			return err
		}

		b, err := a.api.CreateBlog(ctx, api.BlogCreate{Title: title, Subtitle: subtitle, Content: content})
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("Published #%d", b.ID))
		return nil
	})
}

// toggleBlog runs one side of a like/favorite pair and prints the fresh
// counters the server returned. The pair being two endpoints keeps repeats
// well-defined; the caller picks which side applies.
func (a *App) toggleBlog(ctx context.Context, dest string, call func(context.Context, int64) (*models.Blog, error), id int64, verb string) error {
	return a.requireAuth(ctx, dest, func(ctx context.Context) error {
		b, err := call(ctx, id)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("%s #%d (likes %d, favorites %d)", verb, b.ID, b.LikesCount, b.FavoritesCount))
		return nil
	})
}

func (a *App) Like(ctx context.Context, id int64) error {
	return a.toggleBlog(ctx, fmt.Sprintf("/detail/%d", id), a.api.LikeBlog, id, "Liked")
}

func (a *App) Unlike(ctx context.Context, id int64) error {
	return a.toggleBlog(ctx, fmt.Sprintf("/detail/%d", id), a.api.UnlikeBlog, id, "Unliked")
}

func (a *App) Favorite(ctx context.Context, id int64) error {
	return a.toggleBlog(ctx, fmt.Sprintf("/detail/%d", id), a.api.FavoriteBlog, id, "Favorited")
}

func (a *App) Unfavorite(ctx context.Context, id int64) error {
	return a.toggleBlog(ctx, fmt.Sprintf("/detail/%d", id), a.api.UnfavoriteBlog, id, "Unfavorited")
}

// Recent lists the viewer's reading history.
func (a *App) Recent(ctx context.Context) error {
	return a.requireAuth(ctx, "/profile", func(ctx context.Context) error {
		blogs, err := a.api.ReadingHistory(ctx)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		for i := range blogs {
			printBlogLine(&blogs[i])
		}
		return nil
	})
}
