// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "guestbook/internal/api"
	"guestbook/internal/api/handler"
	"guestbook/internal/config"
	"guestbook/internal/repository"
	"guestbook/internal/repository/sqlstore"
	"guestbook/internal/service"
	"guestbook/internal/util"
	"guestbook/pkg/db"
	"guestbook/pkg/sqlexec"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config   *config.AppConfig
	Logger   *slog.Logger
	DB       *sqlx.DB
	Executor *sqlexec.Executor

	// Repositories
	GuestbookRepository repository.GuestbookRepository

	// Services
	GuestbookService service.GuestbookService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance. Logger is usable
// before Initialize so startup failures can be reported.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(util.ParseLevel(cfg.LogLevel))
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.", "driver", cfg.DB.Driver)

	// 3. Connect to Database
	database, err := db.Open(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	app.Executor = sqlexec.NewExecutor(
		db.NewPool(app.DB),
		app.Logger,
		sqlexec.WithQueryTimeout(cfg.QueryTimeout),
		sqlexec.WithSQLLogging(cfg.LogSQL),
	)

	if cfg.InitSchema {
		if err := sqlstore.EnsureSchema(ctx, app.Executor, cfg.DB.Driver); err != nil {
			return err
		}
		app.Logger.Info("Guestbook schema ensured.")
	}

	// 4. Initialize Repositories
	app.GuestbookRepository = sqlstore.NewGuestbookRepository(app.Executor)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.GuestbookService = service.NewGuestbookService(app.GuestbookRepository)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	guestbookHandler := handler.NewGuestbookHandler(app.GuestbookService, app.Logger)
	app.HTTPHandler = router.NewRouter(guestbookHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
