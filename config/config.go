package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL   string `envconfig:"DATABASE_URL"   required:"true"`
	StorageURL    string `envconfig:"STORAGE_URL"    required:"true"`
	StorageKey    string `envconfig:"STORAGE_KEY"    required:"true"`
	StorageBucket string `envconfig:"STORAGE_BUCKET" default:"main-bucket"`
	IdentityURL   string `envconfig:"IDENTITY_URL"   required:"true"`
	AdminUserID   string `envconfig:"ADMIN_USER_ID"`
	HTTPPort      string `envconfig:"HTTP_PORT"      default:":8080"`
	LogLevel      string `envconfig:"LOG_LEVEL"      default:"info"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: HTTP Port=%s, Bucket=%s, LogLevel=%s",
			config.HTTPPort, config.StorageBucket, config.LogLevel)
		if config.AdminUserID == "" {
			logger.Warn("ADMIN_USER_ID is not set; the admin navigation link will never be shown")
		}
	})
	return &config
}
