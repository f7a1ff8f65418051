package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
	"carrental-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Photo Storage
	photoStore, err := storage.NewLocalStorage(cfg.Storage.Dir)
	if err != nil {
		logger.Error("Failed to initialize photo storage", "error", err)
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	clientSvc := service.NewClientService(store.UserRepository, store.EmploymentRepository, cfg.Rental.MinIncomeCents)
	agentSvc := service.NewAgentService(store.UserRepository)
	contractSvc := service.NewContractService(store.ContractRepository, store.OrderRepository, store.UserRepository)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, store.OrderRepository)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.VehicleRepository,
		store.UserRepository,
		clientSvc,
		contractSvc,
		emailSvc,
	)
	reportSvc := service.NewReportService(
		store.OrderRepository,
		store.VehicleRepository,
		store.ContractRepository,
		store.UserRepository,
	)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:     httpapi.NewAuthHandler(authSvc),
		Client:   httpapi.NewClientHandler(clientSvc, agentSvc),
		Vehicle:  httpapi.NewVehicleHandler(vehicleSvc, orderSvc),
		Order:    httpapi.NewOrderHandler(orderSvc),
		Contract: httpapi.NewContractHandler(contractSvc, orderSvc),
		Report:   httpapi.NewReportHandler(reportSvc),
		Photo:    httpapi.NewPhotoHandler(vehicleSvc, photoStore),
	}
	router := httpapi.NewRouter(handlers, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
