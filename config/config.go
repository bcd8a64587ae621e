package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        string
	DBDriver    string
	DBPath      string
	DatabaseURL string
	JWTSecret   string
}

// ConfigInstance is the global configuration instance
var ConfigInstance *Config

// LoadConfig loads configuration from environment variables. The store is an
// embedded SQLite file unless DATABASE_URL points at a MySQL server.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Port:        os.Getenv("PORT"),
		DBPath:      os.Getenv("DB_PATH"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if config.Port == "" {
		config.Port = "3000"
	}

	if config.DBPath == "" {
		config.DBPath = "tahfidz.db"
	}

	config.DBDriver = "sqlite3"
	if config.DatabaseURL != "" {
		config.DBDriver = "mysql"
	}

	if config.JWTSecret == "" {
		config.JWTSecret = "tahfidz-dev-secret"
	}

	return config, nil
}
