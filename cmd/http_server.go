package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal"
	"github.com/Naxdouglas/contract-renewal-sys/internal/auth"
	authpostgres "github.com/Naxdouglas/contract-renewal-sys/internal/auth/postgres"
	"github.com/Naxdouglas/contract-renewal-sys/internal/core/events"
	"github.com/Naxdouglas/contract-renewal-sys/internal/dashboard"
	"github.com/Naxdouglas/contract-renewal-sys/internal/document"
	"github.com/Naxdouglas/contract-renewal-sys/internal/notification"
	notificationpostgres "github.com/Naxdouglas/contract-renewal-sys/internal/notification/postgres"
	"github.com/Naxdouglas/contract-renewal-sys/internal/officer"
	officerpostgres "github.com/Naxdouglas/contract-renewal-sys/internal/officer/postgres"
	"github.com/Naxdouglas/contract-renewal-sys/internal/renewal"
	renewalpostgres "github.com/Naxdouglas/contract-renewal-sys/internal/renewal/postgres"
	"github.com/Naxdouglas/contract-renewal-sys/internal/ticket"
	ticketpostgres "github.com/Naxdouglas/contract-renewal-sys/internal/ticket/postgres"
	"github.com/Naxdouglas/contract-renewal-sys/internal/transport/rest"
	"github.com/Naxdouglas/contract-renewal-sys/internal/user"
	userpostgres "github.com/Naxdouglas/contract-renewal-sys/internal/user/postgres"
	"github.com/Naxdouglas/contract-renewal-sys/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// GORM shares the pgx connection pool; repositories go through GORM,
	// health checks and migrations use the raw pool.
	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	router := chi.NewRouter()

	eventBus := events.NewEventBus(log)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authpostgres.NewRepository(gormDB), tokenGen, config.Security.BCryptCost)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userpostgres.NewUserRepository(gormDB), authService, log)
	userHandler := user.NewHandler(userService)

	officerService := officer.NewService(officerpostgres.NewOfficerRepository(gormDB), userService, log)
	officerHandler := officer.NewHandler(officerService)

	renewalService := renewal.NewService(renewalpostgres.NewRenewalRepository(gormDB), officerService, eventBus, log)
	renewalHandler := renewal.NewHandler(renewalService)

	ticketService := ticket.NewService(ticketpostgres.NewTicketRepository(gormDB), log)
	ticketHandler := ticket.NewHandler(ticketService)

	notificationService := notification.NewService(notificationpostgres.NewNotificationRepository(gormDB), log)
	notificationHandler := notification.NewHandler(notificationService)
	notification.NewEventHandler(notificationService, log).RegisterEventHandlers(eventBus)

	documentService := document.NewService(
		config.Documents.StorageDir,
		config.Documents.MaxUploadSize,
		officerService,
		log,
	)
	documentHandler := document.NewHandler(documentService)

	dashboardService := dashboard.NewService(officerService, renewalService, ticketService, notificationService, log)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	rest.RegisterAllRoutes(router, db.DB, rest.Handlers{
		Auth:         authHandler,
		User:         userHandler,
		Officer:      officerHandler,
		Renewal:      renewalHandler,
		Ticket:       ticketHandler,
		Notification: notificationHandler,
		Document:     documentHandler,
		Dashboard:    dashboardHandler,
	}, config.Server.AllowedOrigins, log)

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		Router: router,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
