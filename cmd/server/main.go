package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"toolroom-backend/internal/api/rest"
	"toolroom-backend/internal/config"
	"toolroom-backend/internal/logger"
	"toolroom-backend/internal/repository/postgres"
	"toolroom-backend/internal/security"
	"toolroom-backend/internal/service"
	"toolroom-backend/internal/storage"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Toolroom Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	imageStore, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize image storage", "error", err)
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	authSvc := service.NewAuthService(store.Users(), tokenManager)
	userSvc := service.NewUserService(store.Users())
	categorySvc := service.NewCategoryService(store.Categories())
	toolSvc := service.NewToolService(store.Tools(), store.Categories())
	overdueSvc := service.NewOverdueService(store)
	transactionSvc := service.NewTransactionService(store, overdueSvc)
	dashboardSvc := service.NewDashboardService(store.Tools(), store.Users(), store.Transactions())

	handlers := &rest.Handlers{
		Auth:        rest.NewAuthHandler(authSvc),
		User:        rest.NewUserHandler(userSvc),
		Category:    rest.NewCategoryHandler(categorySvc),
		Tool:        rest.NewToolHandler(toolSvc),
		Transaction: rest.NewTransactionHandler(transactionSvc),
		Dashboard:   rest.NewDashboardHandler(dashboardSvc),
		Image:       rest.NewImageHandler(toolSvc, imageStore, cfg.Storage.MaxFileSize),
	}

	router := rest.NewRouter(handlers, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
