// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "rideflow/internal/api"
	"rideflow/internal/api/handler"
	"rideflow/internal/auth"
	"rideflow/internal/config"
	"rideflow/internal/repository"
	"rideflow/internal/repository/postgres"
	"rideflow/internal/service"
	"rideflow/internal/util"
	"rideflow/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB
	Tokens *auth.TokenManager

	// Repositories
	UserRepository        repository.UserRepository
	WalletRepository      repository.WalletRepository
	TransactionRepository repository.TransactionRepository
	DriverRepository      repository.DriverRepository
	RideRepository        repository.RideRepository

	// Services
	AuthService   service.AuthService
	WalletService service.WalletService
	RideService   service.RideService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
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
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database and migrate
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if err := db.RunMigrations(app.Config.MigrationsPath, app.Config.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Logger.Info("Database migrations applied.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.WalletRepository = postgres.NewWalletRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.DriverRepository = postgres.NewDriverRepository(app.DB)
	app.RideRepository = postgres.NewRideRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.Tokens = auth.NewTokenManager(app.Config.JWTSecret, app.Config.TokenTTL)

	app.AuthService = service.NewAuthService(
		app.DB, // DBTxBeginner
		app.DB, // DBExecutor
		app.UserRepository,
		app.Tokens,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.WalletService = service.NewWalletService(
		app.DB,
		app.DB,
		app.WalletRepository,
		app.TransactionRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.RideService = service.NewRideService(
		app.DB,
		app.DB,
		app.WalletRepository,
		app.TransactionRepository,
		app.DriverRepository,
		app.RideRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
		service.RandomFare,
		service.RandomETA,
	)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	walletHandler := handler.NewWalletHandler(app.WalletService, app.Logger)
	rideHandler := handler.NewRideHandler(app.RideService, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, walletHandler, rideHandler, app.Tokens, app.Logger)
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
