package cli

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/inkspot/inkspot/internal/client/api"
	"github.com/inkspot/inkspot/internal/client/config"
	"github.com/inkspot/inkspot/internal/client/guard"
	"github.com/inkspot/inkspot/internal/client/session"
	"github.com/inkspot/inkspot/internal/logging"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config *config.Config
	api    *api.Client
	guard  *guard.Guard
	log    logging.Logger
	reader *bufio.Reader

	Mode   Mode
	unread atomic.Int64
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(session.NewSQLiteKV(db))
	apiClient := api.New(c.ServerBaseURL, c.RequestTimeout, store)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := &App{
		config: c,
		api:    apiClient,
		guard:  guard.New(store),
		log:    logger,
		reader: bufio.NewReader(os.Stdin),
	}

	// a 401 anywhere tears the session down; tell the user why their next
	// guarded command will bounce to login
	apiClient.OnAuthFailure(func() {
		printlnFn("Session expired, please log in again.")
	})

	return app, nil
}

func (a *App) isLoggedIn() bool {
	tok, err := a.api.Session().Token(context.Background())
	return err == nil && tok != ""
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// StartUnreadWatcher polls the unread-message counter. Messaging has no push
// transport, so this ticker is the only "real-time" signal the CLI gets. The
// probe doubles as a reachability check for the mode indicator.
func (a *App) StartUnreadWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn() {
				continue
			}
			cctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			n, err := a.api.UnreadCount(cctx)
			cancel()

			if err != nil {
				if errors.Is(err, api.ErrNetwork) {
					a.setMode(ModeOffline)
				}
				continue
			}
			a.setMode(ModeOnline)
			a.unread.Store(int64(n))

		case <-ctx.Done():
			return
		}
	}
}
