package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port     string
	SeedDemo bool
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type StorageConfig struct {
	// StaticRoot is the directory served as the site root; property
	// images live under {StaticRoot}/images/properties.
	StaticRoot string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "3000"),
			SeedDemo: getEnv("SEED_DEMO_DATA", "false") == "true",
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "estatedesk-dev-secret"),
		},
		Storage: StorageConfig{
			StaticRoot: getEnv("STATIC_ROOT", "./public"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
