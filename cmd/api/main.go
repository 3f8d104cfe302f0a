// Package main is the entry point for the rental service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "github.com/wanderlust-rentals/rental-service/docs"
	"github.com/wanderlust-rentals/rental-service/internal/config"
	"github.com/wanderlust-rentals/rental-service/internal/handlers"
	"github.com/wanderlust-rentals/rental-service/internal/logger"
	"github.com/wanderlust-rentals/rental-service/internal/mail"
	"github.com/wanderlust-rentals/rental-service/internal/metrics"
	"github.com/wanderlust-rentals/rental-service/internal/models"
	"github.com/wanderlust-rentals/rental-service/internal/predictor"
	"github.com/wanderlust-rentals/rental-service/internal/repository"
	"github.com/wanderlust-rentals/rental-service/internal/routes"
	"github.com/wanderlust-rentals/rental-service/internal/service"
	"github.com/wanderlust-rentals/rental-service/pkg/redis"
)

const (
	startupTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

// store bundles the repositories of the configured backend.
type store struct {
	users       repository.UserRepository
	packages    repository.PackageRepository
	vehicles    repository.VehicleRepository
	drivers     repository.DriverRepository
	maintenance repository.MaintenanceRepository
	close       func(ctx context.Context) error
}

// Replaced in tests.
var (
	openStoreFunc = openStore
	connectRedis  = redis.NewClient
)

// closer releases one resource acquired during startup.
type closer struct {
	name string
	fn   func(ctx context.Context) error
}

// closers releases resources in reverse acquisition order.
type closers []closer

func (c *closers) add(name string, fn func(ctx context.Context) error) {
	*c = append(*c, closer{name: name, fn: fn})
}

func (c closers) closeAll(ctx context.Context, log *slog.Logger) {
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i].fn(ctx); err != nil {
			logger.LogError(log, c[i].name+" close failed", err)
		}
	}
}

// @title Wanderlust Rental Service API
// @version 1.0
// @description Accounts, rental packages, fleet, drivers and maintenance predictions for the Wanderlust vehicle rental platform
// @host localhost:8084
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment, cfg.LogFormat, os.Stdout)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		logger.LogError(log, "service stopped", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	var resources closers
	defer func() {
		closeCtx, cancelClose := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelClose()
		resources.closeAll(closeCtx, log)
	}()

	// Initialize store
	st, err := openStoreFunc(startCtx, cfg)
	if err != nil {
		return err
	}
	resources.add("store", st.close)
	log.Info("store connected", "driver", cfg.StoreDriver)

	// Initialize Redis
	redisClient, err := connectRedis(startCtx, cfg)
	if err != nil {
		return err
	}
	resources.add("redis", func(context.Context) error { return redisClient.Close() })

	metricsCollector := metrics.New()

	// Initialize services
	jwtService, err := service.NewJWTService(cfg.JWTSecret, service.AccessTokenTTL)
	if err != nil {
		return err
	}
	mailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.EmailHost,
		Port:     cfg.EmailPort,
		Username: cfg.EmailUsername,
		Password: cfg.EmailPassword,
		From:     cfg.EmailFrom,
		Timeout:  cfg.EmailTimeout,
	})
	limiter := service.NewResetLimiter(redisClient, cfg.ResetRequestLimit, cfg.ResetRequestWindow)
	predictions := predictor.NewClient(cfg.AIServiceURL, cfg.AIServiceTimeout)

	authService := service.NewAuthService(
		st.users,
		service.NewPasswordHasher(),
		jwtService,
		mailer,
		limiter,
		metricsCollector,
		log,
		cfg.FrontendURL,
	)
	userService := service.NewUserService(st.users)

	// Initialize handlers
	h := routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService, log),
		User:        handlers.NewUserHandler(userService, log),
		Package:     handlers.NewPackageHandler(service.NewPackageService(st.packages), log),
		Vehicle:     handlers.NewVehicleHandler(service.NewVehicleService(st.vehicles), log),
		Driver:      handlers.NewDriverHandler(service.NewDriverService(st.drivers), log),
		Maintenance: handlers.NewMaintenanceHandler(service.NewMaintenanceService(st.maintenance, predictions), log),
		Health: handlers.NewHealthHandler(log,
			handlers.HealthCheck{Name: "store", Check: st.users.Ping},
			handlers.HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			}},
		),
	}

	// Setup router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	routes.Setup(router, cfg, h, routes.Guards{Tokens: jwtService, Admins: userService}, metricsCollector, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting rental service", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.LogError(log, "server shutdown failed", err)
	}

	log.Info("rental service stopped")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		return openMongo(ctx, cfg)
	default:
		return openPostgres(cfg)
	}
}

func openPostgres(cfg *config.Config) (*store, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	closeDB := func(context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Package{},
		&models.Vehicle{},
		&models.Driver{},
		&models.MaintenanceRecord{},
	); err != nil {
		_ = closeDB(context.Background())
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &store{
		users:       repository.NewUserRepository(db),
		packages:    repository.NewPackageRepository(db),
		vehicles:    repository.NewVehicleRepository(db),
		drivers:     repository.NewDriverRepository(db),
		maintenance: repository.NewMaintenanceRepository(db),
		close:       closeDB,
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config) (*store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(cfg.MongoDB)
	for _, ensure := range []func(context.Context, *mongo.Database) error{
		repository.EnsureUserIndexes,
		repository.EnsurePackageIndexes,
		repository.EnsureVehicleIndexes,
		repository.EnsureDriverIndexes,
	} {
		if err := ensure(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
	}

	return &store{
		users:       repository.NewMongoUserRepository(db),
		packages:    repository.NewMongoPackageRepository(db),
		vehicles:    repository.NewMongoVehicleRepository(db),
		drivers:     repository.NewMongoDriverRepository(db),
		maintenance: repository.NewMongoMaintenanceRepository(db),
		close:       client.Disconnect,
	}, nil
}
