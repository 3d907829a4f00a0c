package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/syncveil/syncveil/internal/client/api"
	"github.com/syncveil/syncveil/internal/client/config"
	"github.com/syncveil/syncveil/internal/client/db"
	"github.com/syncveil/syncveil/internal/client/services"
	"github.com/syncveil/syncveil/internal/client/session"
	"github.com/syncveil/syncveil/internal/client/upload"
	"github.com/syncveil/syncveil/internal/logging"

	_ "modernc.org/sqlite"
)

// App glues the SyncVeil services to the interactive REPL.
type App struct {
	config    *config.Config
	auth      services.AuthService
	vault     services.VaultService
	log       logging.Logger
	db        *sql.DB
	userEmail string
	reader    *bufio.Reader
}

// NewApp opens the local session database, builds the API client and the
// application services, and restores the signed-in user if a session is
// already persisted.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	database, err := db.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(database)
	apiClient := api.NewHTTPClient(c.APIBaseURL, store, log, api.WithTimeout(c.RequestTimeout))
	tracker := upload.NewTracker(c.SettleDelay)

	a := &App{
		config: c,
		auth:   services.NewAuthService(apiClient, store, log),
		vault:  services.NewVaultService(apiClient, tracker, log),
		log:    log,
		db:     database,
		reader: bufio.NewReader(os.Stdin),
	}

	ok, err := a.auth.IsAuthenticated(ctx)
	if err != nil {
		log.Warn(ctx, "could not read stored session", "error", err)
	} else if ok {
		if user, err := a.auth.CurrentUser(ctx); err == nil {
			a.userEmail = user.Email
		}
	}

	return a, nil
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) getStatus() string {
	if a.userEmail == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userEmail)
}

// Run drives the REPL until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.vault.Close()
	defer a.db.Close()

	printlnFn("SyncVeil CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
