package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Feed(ctx context.Context) error
	Read(ctx context.Context, id int64) error
	Compose(ctx context.Context) error
	Like(ctx context.Context, id int64) error
	Unlike(ctx context.Context, id int64) error
	Favorite(ctx context.Context, id int64) error
	Unfavorite(ctx context.Context, id int64) error
	Comments(ctx context.Context, blogID int64) error
	Comment(ctx context.Context, blogID int64) error
	Search(ctx context.Context, keyword string) error
	Searches(ctx context.Context) error
	Recent(ctx context.Context) error
	Profile(ctx context.Context) error
	Follow(ctx context.Context, userID int64) error
	Unfollow(ctx context.Context, userID int64) error
	Inbox(ctx context.Context) error
	Chat(ctx context.Context, userID int64) error
	Suggest(ctx context.Context, topic string) error
	Recommended(ctx context.Context) error
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// runREPL starts the read-eval-print loop for the inkspot CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("inkspot %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed, read <id>, post, like/unlike <id>, fav/unfav <id>,")
				printlnFn("  comments <blog-id>, comment <blog-id>, search <keyword>, searches, recent,")
				printlnFn("  profile, follow/unfollow <user-id>, inbox, chat <user-id>,")
				printlnFn("  suggest <topic>, recommend, logout, exit")
			} else {
				printlnFn("Available commands: register, login, feed, read <id>, search <keyword>, recommend, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "read":
			if id, ok := parseID(args); ok {
				_ = a.Read(ctx, id)
			} else {
				printlnFn("Usage: read <blog-id>")
			}

		case "post":
			_ = a.Compose(ctx)

		case "like":
			if id, ok := parseID(args); ok {
				_ = a.Like(ctx, id)
			} else {
				printlnFn("Usage: like <blog-id>")
			}

		case "unlike":
			if id, ok := parseID(args); ok {
				_ = a.Unlike(ctx, id)
			} else {
				printlnFn("Usage: unlike <blog-id>")
			}

		case "fav":
			if id, ok := parseID(args); ok {
				_ = a.Favorite(ctx, id)
			} else {
				printlnFn("Usage: fav <blog-id>")
			}

		case "unfav":
			if id, ok := parseID(args); ok {
				_ = a.Unfavorite(ctx, id)
			} else {
				printlnFn("Usage: unfav <blog-id>")
			}

		case "comments":
			if id, ok := parseID(args); ok {
				_ = a.Comments(ctx, id)
			} else {
				printlnFn("Usage: comments <blog-id>")
			}

		case "comment":
			if id, ok := parseID(args); ok {
				_ = a.Comment(ctx, id)
			} else {
				printlnFn("Usage: comment <blog-id>")
			}

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <keyword>")
			} else {
				_ = a.Search(ctx, strings.Join(args, " "))
			}

		case "searches":
			_ = a.Searches(ctx)

		case "recent":
			_ = a.Recent(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "follow":
			if id, ok := parseID(args); ok {
				_ = a.Follow(ctx, id)
			} else {
				printlnFn("Usage: follow <user-id>")
			}

		case "unfollow":
			if id, ok := parseID(args); ok {
				_ = a.Unfollow(ctx, id)
			} else {
				printlnFn("Usage: unfollow <user-id>")
			}

		case "inbox":
			_ = a.Inbox(ctx)

		case "chat":
			if id, ok := parseID(args); ok {
				_ = a.Chat(ctx, id)
			} else {
				printlnFn("Usage: chat <user-id>")
			}

		case "suggest":
			if len(args) == 0 {
				printlnFn("Usage: suggest <topic>")
			} else {
				_ = a.Suggest(ctx, strings.Join(args, " "))
			}

		case "recommend":
			_ = a.Recommended(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if id, err := a.api.Session().Identity(context.Background()); err == nil && id != nil {
		s = id.Username
	}
	if a.Mode != "" {
		if s != "" {
			s += " "
		}
		s += string(a.Mode)
	}
	if n := a.unread.Load(); n > 0 {
		s += fmt.Sprintf(" %d unread", n)
	}
	if s != "" {
		s = "(" + s + ") "
	}
	return s
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to inkspot (type 'help' for commands)")

	go a.StartUnreadWatcher(ctx, a.config.UnreadPollInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
