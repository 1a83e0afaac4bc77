// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "commentbox/internal/api"
	"commentbox/internal/api/handler"
	"commentbox/internal/config"
	"commentbox/internal/repository"
	"commentbox/internal/repository/postgres"
	"commentbox/internal/service"
	"commentbox/internal/util"
	"commentbox/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// StoreAvailable is false when the store was unreachable at startup; the
	// server then runs degraded, answering 503 on unmatched routes.
	StoreAvailable bool

	// Repositories
	UserRepository    repository.UserRepository
	DomainRepository  repository.DomainRepository
	CommentRepository repository.CommentRepository

	// Services
	CommentService service.CommentService
	UserService    service.UserService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components. Missing store
// credentials fail initialization outright; an unreachable store does not,
// the application comes up degraded instead.
func (app *Application) Initialize(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	database, err := db.Open(app.Config.Store)
	if err != nil {
		return fmt.Errorf("failed to open database pool: %w", err)
	}
	app.DB = database

	app.StoreAvailable = true
	if err := db.Ping(ctx, database); err != nil {
		app.StoreAvailable = false
		app.Logger.Error("Store unreachable at startup, continuing degraded", "error", err)
	} else {
		app.Logger.Info("Database connection established.")
	}

	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.DomainRepository = postgres.NewDomainRepository(app.DB)
	app.CommentRepository = postgres.NewCommentRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	app.CommentService = service.NewCommentService(
		app.DB,
		app.CommentRepository,
		app.DomainRepository,
	)
	app.UserService = service.NewUserService(
		app.DB,
		app.UserRepository,
		app.DomainRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	app.HTTPHandler = router.NewRouter(router.Handlers{
		Comment: handler.NewCommentHandler(app.CommentService),
		User:    handler.NewUserHandler(app.UserService),
		Test:    handler.NewTestHandler(),
		Site:    handler.NewSiteHandler(app.CommentService),
	}, app.Logger, app.StoreAvailable)
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
