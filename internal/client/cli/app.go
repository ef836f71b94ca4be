package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/collabdocs/internal/client/client"
	"github.com/dmitrijs2005/collabdocs/internal/client/config"
	"github.com/dmitrijs2005/collabdocs/internal/client/router"
	"github.com/dmitrijs2005/collabdocs/internal/client/services"
	"github.com/dmitrijs2005/collabdocs/internal/logging"
)

type App struct {
	logger logging.Logger
	db     *sql.DB

	session *services.SessionStore
	docs    *services.DocumentStore
	friends *services.FriendStore
	sharing *services.SharingService
	users   *services.UserDirectory
	history *services.HistoryService
	nav     *router.Navigator

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database and builds the client stack from c.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, client.WithLogger(logger))

	a, err := newApp(ctx, api, db, logger, c.UserCacheTTL, bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func newApp(ctx context.Context, api client.Client, db *sql.DB, logger logging.Logger, userTTL time.Duration, in *bufio.Reader, out io.Writer) (*App, error) {
	// the session subscribes first so it is already cleared when the app
	// handler navigates
	session, err := services.NewSessionStore(ctx, api, db, logger)
	if err != nil {
		return nil, err
	}

	docs := services.NewDocumentStore(api, logger)
	a := &App{
		logger:  logger,
		db:      db,
		session: session,
		docs:    docs,
		friends: services.NewFriendStore(api, logger),
		sharing: services.NewSharingService(api),
		users:   services.NewUserDirectory(api, userTTL),
		history: services.NewHistoryService(api, docs),
		nav:     router.NewNavigator(router.NewGuard(session), logger),
		reader:  in,
		out:     out,
	}
	api.OnSessionInvalidated(a.onSessionInvalidated)
	return a, nil
}

func (a *App) onSessionInvalidated(ctx context.Context, _ client.Invalidation) {
	a.resetStores()
	a.nav.RedirectToLogin(ctx)
	fmt.Fprintln(a.out, "Your session has ended. Please log in again.")
}

func (a *App) resetStores() {
	a.docs.Reset()
	a.friends.Reset()
	a.users.Purge()
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	fmt.Fprintln(a.out, "collabdocs (type 'help' for commands)")
	if _, err := a.nav.Push(ctx, router.HomePath); err != nil {
		return err
	}
	if exp := a.session.ExpiresAt(); !exp.IsZero() && time.Now().After(exp) {
		a.logger.Info(ctx, "stored session looks expired", "expires_at", exp)
	}

	runREPL(ctx, a.commands(), a.status, a.reader)
	return nil
}

// status renders the prompt: user and current location.
func (a *App) status() string {
	who := "anonymous"
	if p := a.session.Profile(); p != nil {
		who = p.Username
	} else if a.session.IsAuthenticated() {
		who = "?"
	}
	return fmt.Sprintf("%s %s", who, a.nav.Current().FullPath())
}
