package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Env             string
	Port            string
	DatabaseURL     string
	DBMaxConns      int32
	RateLimitWindow time.Duration
	RateLimitMax    int64
	AllowedOrigins  []string
}

// IsProduction reports whether the process runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present. The database can be given
// either as a full PG_URL or as the discrete DB_* variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "3000"),
	}

	dbURL := os.Getenv("PG_URL")
	if dbURL == "" {
		var err error
		dbURL, err = buildDatabaseURL()
		if err != nil {
			return nil, err
		}
	}
	cfg.DatabaseURL = dbURL

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil || maxConns < 1 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be a positive integer")
	}
	cfg.DBMaxConns = int32(maxConns)

	window, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "15m"))
	if err != nil || window <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be a positive duration")
	}
	cfg.RateLimitWindow = window

	rateMax, err := strconv.ParseInt(getEnv("RATE_LIMIT_MAX", "100"), 10, 64)
	if err != nil || rateMax < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX must be a positive integer")
	}
	cfg.RateLimitMax = rateMax

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

// buildDatabaseURL composes a pgx connection URL from the discrete DB_*
// variables.
func buildDatabaseURL() (string, error) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return "", fmt.Errorf("either PG_URL or DB_HOST is required")
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		return "", fmt.Errorf("DB_NAME environment variable is required")
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		return "", fmt.Errorf("DB_USER environment variable is required")
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, os.Getenv("DB_PASSWORD")),
		Host:   host + ":" + getEnv("DB_PORT", "5432"),
		Path:   "/" + name,
	}
	q := url.Values{}
	q.Set("sslmode", getEnv("DB_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
