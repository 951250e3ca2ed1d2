// Package config resolves runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Error reports configuration problems. All missing or malformed
// values are collected so the operator can fix them in one pass.
type Error struct {
	Issues []string
}

func (e *Error) Error() string {
	return "database configuration missing: " + strings.Join(e.Issues, ", ")
}

// Database holds connection parameters for the request store.
type Database struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// DSN renders the keyword/value connection string pgx expects.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Config is built once at process start and passed into constructors.
type Config struct {
	DB       Database
	LogLevel string
}

// Load resolves configuration from environment variables. Each
// database parameter has a hub-specific primary name and a standard
// libpq fallback. A .env file in the working directory is honored
// when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	host := firstEnv("GS_DB_HOST", "PGHOST")
	portValue := firstEnv("GS_DB_PORT", "PGPORT")
	user := firstEnv("GS_DB_USER", "PGUSER")
	password := firstEnv("GS_DB_PASSWORD", "PGPASSWORD")
	name := firstEnv("GS_DB_NAME", "PGDATABASE")

	var issues []string
	if strings.TrimSpace(host) == "" {
		issues = append(issues, "GS_DB_HOST or PGHOST is required")
	}
	if strings.TrimSpace(portValue) == "" {
		issues = append(issues, "GS_DB_PORT or PGPORT is required")
	}
	if strings.TrimSpace(user) == "" {
		issues = append(issues, "GS_DB_USER or PGUSER is required")
	}
	if strings.TrimSpace(password) == "" {
		issues = append(issues, "GS_DB_PASSWORD or PGPASSWORD is required")
	}
	if strings.TrimSpace(name) == "" {
		issues = append(issues, "GS_DB_NAME or PGDATABASE is required")
	}
	if len(issues) > 0 {
		return nil, &Error{Issues: issues}
	}

	port, err := strconv.Atoi(portValue)
	if err != nil {
		return nil, &Error{Issues: []string{"GS_DB_PORT/PGPORT must be numeric"}}
	}

	return &Config{
		DB: Database{
			Host:     host,
			Port:     port,
			User:     user,
			Password: password,
			Name:     name,
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

func firstEnv(primary, fallback string) string {
	if val := os.Getenv(primary); val != "" {
		return val
	}
	return os.Getenv(fallback)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
