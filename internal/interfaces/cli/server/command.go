package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	adminApp "storeops/internal/application/admin"
	"storeops/internal/infrastructure/config"
	"storeops/internal/infrastructure/database"
	"storeops/internal/infrastructure/migration"
	"storeops/internal/infrastructure/persistence/models"
	"storeops/internal/infrastructure/ratelimit"
	"storeops/internal/infrastructure/repository"
	httpRouter "storeops/internal/interfaces/http"
	"storeops/internal/shared/logger"

	authInfra "storeops/internal/infrastructure/auth"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the dashboard API server",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Server mode override (debug, release)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "mode", cfg.Server.Mode, "version", Version)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		manager := migration.NewManager(cfg.Server.Mode)
		if err := manager.Migrate(database.Get(), &models.AdminModel{}); err != nil {
			logger.Fatal("migration failed", "error", err)
		}
	}

	log := logger.NewLogger()

	adminRepo := repository.NewAdminRepository(database.Get(), log.Named("repository.admin"))
	adminService := adminApp.NewService(adminRepo, log)
	jwtService := authInfra.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var limiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unreachable, rate limiting disabled", "error", err)
		} else {
			limiter = ratelimit.NewRedisRateLimiter(redisClient)
			defer redisClient.Close()
		}
	}

	router := httpRouter.NewRouter(httpRouter.Dependencies{
		AdminService: adminService,
		AdminRepo:    adminRepo,
		JWTService:   jwtService,
		RateLimiter:  limiter,
		Server:       &cfg.Server,
		RateLimit:    &cfg.RateLimit,
		Logger:       log,
		Version:      Version,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}
