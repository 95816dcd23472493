package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerConfig   ServerConfig
	PostgresConfig PostgresConfig
}

type ServerConfig struct {
	Port           string
	AllowOrigins   string
	MigrationsPath string
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	config := &Config{
		ServerConfig: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			AllowOrigins:   getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		},
		PostgresConfig: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "notes"),
			Password: getEnv("POSTGRES_PASSWORD", "notes"),
			DBName:   getEnv("POSTGRES_DB", "notes"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
	}

	return config, nil
}

// DSN builds the postgres URL used by both the ORM and the migration runner.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresConfig.User,
		c.PostgresConfig.Password,
		c.PostgresConfig.Host,
		c.PostgresConfig.Port,
		c.PostgresConfig.DBName,
		c.PostgresConfig.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
