package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/alans123s/billtrackery/internal/client/client"
	"github.com/alans123s/billtrackery/internal/client/config"
	"github.com/alans123s/billtrackery/internal/client/export"
	"github.com/alans123s/billtrackery/internal/client/models"
	"github.com/alans123s/billtrackery/internal/client/services"
	"github.com/alans123s/billtrackery/internal/client/session"
	"github.com/alans123s/billtrackery/internal/logging"
)

// App holds the wired services plus the small amount of view state the REPL
// needs: the last fetched site list (for numeric selection), and the site and
// bills of the last history fetch (for export).
type App struct {
	config   *config.Config
	auth     services.AuthService
	billing  services.BillingService
	exporter *export.ExcelExporter
	log      logging.Logger
	reader   *bufio.Reader

	db *sql.DB

	sites    []models.Site
	selected *models.Site
	bills    []models.Bill
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, c.Verbose)

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing state database", "error", err)
		return nil, err
	}

	apiClient := client.NewGraphQLClient(c.APIEndpointURL, c.APIKey, c.Channel, c.RequestTimeout)

	store := session.NewStore()
	as := services.NewAuthService(apiClient, db, store, log)
	bs := services.NewBillingService(apiClient, store, log)

	a := &App{
		config:   c,
		auth:     as,
		billing:  bs,
		exporter: export.NewExcelExporter(),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		db:       db,
	}

	// Transition notifications mirror the toasts of the original product.
	store.Subscribe(a.notifyTransition)

	return a, nil
}

func (a *App) notifyTransition(sess models.Session) {
	if sess.IsAuthenticated {
		notify(fmt.Sprintf("Login bem-sucedido. Bem-vindo, %s!", sess.UserName))
	} else {
		notify("Logout realizado. Você foi desconectado com sucesso")
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.Session().IsAuthenticated
}

func (a *App) userName() string {
	return a.auth.Session().UserName
}

// Run restores the persisted session and drives the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.auth.Close(ctx)
		_ = a.db.Close()
	}()

	sess, err := a.auth.Restore(ctx)
	if err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
	} else if sess.IsAuthenticated {
		notify(fmt.Sprintf("Sessão restaurada. Bem-vindo de volta, %s!", sess.UserName))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if name := a.userName(); name != "" {
		return fmt.Sprintf("(%s)", name)
	}
	return ""
}
