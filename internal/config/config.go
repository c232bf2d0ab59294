package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration values.
type Config struct {
	Secret         string
	DatabaseDriver string
	DatabaseDSN    string
	HTTPPort       string
	LogLevel       string
	LogFormat      string
	LogOutput      string
	AllowedOrigins []string
	RequireAuth    bool
	TokenTTL       time.Duration
	ProductsCSV    string
	AdminLogin     string
	AdminPassword  string
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() Config {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "dev_secret"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	driver := strings.ToLower(os.Getenv("DB_DRIVER"))
	switch driver {
	case "", "sqlite":
		driver = "sqlite"
	case "postgres", "postgresql", "pgx":
		driver = "pgx"
	default:
		log.Printf("unknown DB_DRIVER %q, defaulting to sqlite", driver)
		driver = "sqlite"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		if driver == "sqlite" {
			dsn = "tradebook.db?_pragma=foreign_keys(1)"
		} else {
			host := os.Getenv("HOST")
			if host == "" {
				host = "localhost"
			}
			user := os.Getenv("USER")
			if user == "" {
				user = "postgres"
			}
			dbPort := os.Getenv("PORT")
			if dbPort == "" {
				dbPort = "5432"
			}
			name := os.Getenv("NAME")
			if name == "" {
				name = "tradebook"
			}
			password := os.Getenv("PASSWORD")

			dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, dbPort, name)
		}
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			ttl = parsed
		} else {
			log.Printf("invalid TOKEN_TTL value %q, defaulting to %s", raw, ttl)
		}
	}

	requireAuth, _ := strconv.ParseBool(os.Getenv("REQUIRE_AUTH"))

	return Config{
		Secret:         secret,
		DatabaseDriver: driver,
		DatabaseDSN:    dsn,
		HTTPPort:       port,
		LogLevel:       envOr("LOG_LEVEL", "info"),
		LogFormat:      envOr("LOG_FORMAT", "console"),
		LogOutput:      envOr("LOG_OUTPUT", "stdout"),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		RequireAuth:    requireAuth,
		TokenTTL:       ttl,
		ProductsCSV:    os.Getenv("PRODUCTS_CSV"),
		AdminLogin:     os.Getenv("ADMIN_LOGIN"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
