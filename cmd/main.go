package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront_service/config"
	"storefront_service/internal/clients"
	"storefront_service/internal/delivery"
	"storefront_service/internal/repository"
	"storefront_service/internal/storage"
	"storefront_service/internal/usecase"
	"storefront_service/pkg/db"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	logger.Info("Starting Storefront Service...")

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("FATAL: Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	// --- External Collaborators ---
	uploader, err := storage.NewClient(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket, logger)
	if err != nil {
		logger.Fatalf("FATAL: Failed to create storage client: %v", err)
	}
	identity, err := clients.NewIdentityClient(cfg.IdentityURL, logger)
	if err != nil {
		logger.Fatalf("FATAL: Failed to create identity client: %v", err)
	}
	logger.Info("External clients initialized.")

	// --- Dependency Injection ---
	productRepo := repository.NewPostgresProductRepository(database, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, uploader, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	navHandler := delivery.NewNavHandler(cfg.AdminUserID, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(delivery.RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		if err := database.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	authRequired := delivery.AuthRequired(identity, logger)
	optionalAuth := delivery.OptionalAuth(identity, logger)

	productHandler.RegisterRoutes(router, authRequired)
	navHandler.RegisterRoutes(router, optionalAuth)
	logger.Info("API Routes registered.")

	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
