package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port         string
	GinMode      string
	FrontendURLs []string
	Amadeus      AmadeusConfig
	Database     DatabaseConfig
	Favorites    FavoritesConfig
	Redis        RedisConfig
	FlightSearch FlightSearchConfig
}

// AmadeusConfig holds upstream flight API credentials
type AmadeusConfig struct {
	ClientID     string
	ClientSecret string
	Env          string // "test" or "production"
}

// Configured reports whether live searches are possible.
func (a AmadeusConfig) Configured() bool {
	return a.ClientID != "" && a.ClientSecret != ""
}

// BaseURL returns the Amadeus host for Env.
func (a AmadeusConfig) BaseURL() string {
	if a.Env == "" || a.Env == "test" {
		return "https://test.api.amadeus.com"
	}
	return "https://api.amadeus.com"
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Enabled  bool
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// FavoritesConfig selects where the favorites list lives
type FavoritesConfig struct {
	Backend string // "file" or "redis"
	File    string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// FlightSearchConfig is used by the terminal client
type FlightSearchConfig struct {
	URL     string
	Timeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	dbEnabled, err := strconv.ParseBool(getEnv("DB_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_ENABLED: %w", err)
	}
	if os.Getenv("DATABASE_URL") != "" {
		dbEnabled = true
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("FLIGHT_SEARCH_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FLIGHT_SEARCH_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid FLIGHT_SEARCH_TIMEOUT %q (must be positive)", timeout)
	}

	backend := strings.ToLower(getEnv("FAVORITES_BACKEND", "file"))
	if backend != "file" && backend != "redis" {
		return nil, fmt.Errorf("invalid FAVORITES_BACKEND %q (want file or redis)", backend)
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		FrontendURLs: splitList(os.Getenv("FRONTEND_URL")),
		Amadeus: AmadeusConfig{
			ClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
			ClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
			Env:          getEnv("AMADEUS_ENV", "test"),
		},
		Database: DatabaseConfig{
			Enabled:  dbEnabled,
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "tripchat"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Favorites: FavoritesConfig{
			Backend: backend,
			File:    getEnv("FAVORITES_FILE", "data/favorites.json"),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  os.Getenv("REDIS_PASSWORD"),
			DB:        redisDB,
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "tripchat"),
		},
		FlightSearch: FlightSearchConfig{
			URL:     getEnv("FLIGHT_SEARCH_URL", "http://localhost:8080"),
			Timeout: timeout,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
