package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobhunt-backend/config"
	v1 "go-jobhunt-backend/internal/delivery/http/v1"
	"go-jobhunt-backend/internal/ledger"
	"go-jobhunt-backend/internal/repository/postgres"
	"go-jobhunt-backend/internal/usecase"
	"go-jobhunt-backend/pkg/auth"
	"go-jobhunt-backend/pkg/database"
	"go-jobhunt-backend/pkg/logger"
	"go-jobhunt-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting jobhunt backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting degrades to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 6. Setup Listing Ledger
	listingLedger, err := ledger.New(cfg.DataDir)
	if err != nil {
		logger.Log.Error("Failed to prepare data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	// 7. Setup UseCases
	validate := validator.New()
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTLDays)
	authUC := usecase.NewAuthUsecase(userRepo, profileRepo, tokens, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	jobUC := usecase.NewJobUsecase(savedJobRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, validate)
	searchUC := usecase.NewSearchUsecase(listingLedger)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		SearchUC:      searchUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
