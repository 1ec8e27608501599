package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/inkspot/inkspot/internal/client/api"
)

func (a *App) Comments(ctx context.Context, blogID int64) error {
	comments, err := a.api.BlogComments(ctx, blogID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	for _, cm := range comments {
		indent := ""
		if cm.ParentID != nil {
			indent = "    "
		}
		printlnFn(fmt.Sprintf("%s[%d] %s: %s (likes %d)", indent, cm.ID, cm.User.Username, cm.Content, cm.LikesCount))
	}
	return nil
}

func (a *App) Comment(ctx context.Context, blogID int64) error {
	return a.requireAuth(ctx, fmt.Sprintf("/detail/%d", blogID), func(ctx context.Context) error {
		content, err := GetMultiline(a.reader, "Enter comment:", os.Stdout)
		if err != nil {
			return err
		}

		cm, err := a.api.CreateComment(ctx, api.CommentCreate{BlogID: blogID, Content: content})
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn(fmt.Sprintf("Comment #%d posted", cm.ID))
		return nil
	})
}
